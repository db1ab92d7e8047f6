package response

import "github.com/shopspring/decimal"

// Money is rendered as a string with two decimal places.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func optionalMoney(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := money(*d)
	return &s
}
