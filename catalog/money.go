package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Money is an amount in minor units (cents) of a single currency.
type Money struct {
	Amount   int64
	Currency currency.Unit
}

// NewMoney builds Money from minor units.
func NewMoney(amount int64, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

// ParseMoney parses "<ISO code> <decimal>", for example "USD 750.00".
// At most two fractional digits are accepted.
func ParseMoney(s string) (Money, error) {
	code, amount, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return Money{}, errors.Join(ErrInvalidMoney, err)
	}

	whole, frac, _ := strings.Cut(strings.TrimSpace(amount), ".")
	if len(frac) > 2 {
		return Money{}, fmt.Errorf("%w: too many decimals in %q", ErrInvalidMoney, s)
	}
	frac += strings.Repeat("0", 2-len(frac))

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}

	return Money{Amount: units*100 + cents, Currency: unit}, nil
}

// UnmarshalYAML decodes the "<ISO code> <decimal>" scalar form.
func (m *Money) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected scalar", ErrInvalidMoney, node.Line)
	}
	parsed, err := ParseMoney(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*m = parsed
	return nil
}

// Add sums two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}

// Mul multiplies by a quantity.
func (m Money) Mul(qty int) Money {
	return Money{Amount: m.Amount * int64(qty), Currency: m.Currency}
}

// Major returns the amount in major units.
func (m Money) Major() float64 {
	return float64(m.Amount) / 100
}

var printer = message.NewPrinter(language.English)

// String formats the amount with the currency symbol, for example "$ 750.00".
func (m Money) String() string {
	return printer.Sprint(currency.Symbol(m.Currency.Amount(m.Major())))
}
