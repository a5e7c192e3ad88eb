package output

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var displayHundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal dollar amount for display, rounding to
// cents. Kept here so it can be reused by multiple formatters and unit tested
// in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	cents := amount.Mul(displayHundred).Round(0).IntPart()
	return money.New(cents, money.USD).Display()
}

// FormatPercent formats a fractional value (0.042 -> "4.20%").
func FormatPercent(fraction decimal.Decimal) string {
	return fraction.Mul(displayHundred).StringFixed(2) + "%"
}

// FormatRatePct formats a value already expressed in percent (4.25 -> "4.25%").
func FormatRatePct(ratePct decimal.Decimal) string {
	return ratePct.StringFixed(2) + "%"
}
