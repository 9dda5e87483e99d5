package catalog

import "strings"

// Summary is an order summary with totals in minor units.
type Summary struct {
	Items    []LineItem
	Subtotal Money
	Shipping Money
	Total    Money
}

// NewSummary adds up the items and shipping. All amounts must share one currency.
func NewSummary(items []LineItem, shipping Money) (Summary, error) {
	subtotal := Money{Currency: shipping.Currency}
	for _, item := range items {
		var err error
		if subtotal, err = subtotal.Add(item.Total()); err != nil {
			return Summary{}, err
		}
	}
	total, err := subtotal.Add(shipping)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Items: items, Subtotal: subtotal, Shipping: shipping, Total: total}, nil
}

// CheckoutSummary summarizes the bag, or the default checkout item when the bag is empty.
func (c *Catalog) CheckoutSummary(bag []LineItem) (Summary, error) {
	if len(bag) == 0 {
		bag = []LineItem{c.Checkout.Item}
	}
	return NewSummary(bag, c.Checkout.Shipping)
}

// StatusVariant maps an order status to its badge variant.
func StatusVariant(status string) string {
	switch strings.ToLower(status) {
	case "shipped":
		return "default"
	case "processing":
		return "secondary"
	case "awaiting production":
		return "outline"
	default:
		return "secondary"
	}
}
