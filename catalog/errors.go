package catalog

import "errors"

var (
	ErrInvalidCatalog   = errors.New("invalid catalog")
	ErrInvalidMoney     = errors.New("invalid money value")
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrFabricNotFound   = errors.New("fabric not found")
)
