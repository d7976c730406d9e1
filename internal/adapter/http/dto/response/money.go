package response

import "github.com/shopspring/decimal"

// money renders SEK amounts with two decimals.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
