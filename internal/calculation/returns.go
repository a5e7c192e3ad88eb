package calculation

import (
	"github.com/finsim/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	two     = decimal.NewFromInt(2)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// BuildReturnSeries derives month-over-month fractional returns from a
// closing-price series. Index 0 is always zero (no prior month), and a
// non-positive prior close yields a zero return for that index rather than a
// degenerate division.
func BuildReturnSeries(series *domain.PriceSeries) []decimal.Decimal {
	returns := make([]decimal.Decimal, series.Len())
	for i := 1; i < series.Len(); i++ {
		prev := series.Point(i - 1).Close
		if prev.LessThanOrEqual(decimal.Zero) {
			continue
		}
		returns[i] = series.Point(i).Close.Div(prev).Sub(one)
	}
	return returns
}
