package calculation

import (
	"testing"

	"github.com/finsim/finsim/internal/domain"
	"github.com/finsim/finsim/pkg/monthutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// constantGrowthSeries builds a monthly price series starting at startMonth
// whose price grows by growth each month, so every derived return after the
// first equals growth exactly.
func constantGrowthSeries(t *testing.T, startMonth string, months int, growth float64) *domain.PriceSeries {
	t.Helper()

	points := make([]domain.MonthlyPricePoint, months)
	price := decimal.NewFromInt(100)
	factor := decimal.NewFromFloat(1 + growth)
	key := startMonth
	for i := 0; i < months; i++ {
		points[i] = domain.MonthlyPricePoint{Month: key, Close: price}
		price = price.Mul(factor)
		next, err := monthutil.Add(key, 1)
		require.NoError(t, err)
		key = next
	}

	series, err := domain.NewPriceSeries(points)
	require.NoError(t, err)
	return series
}

func pricesFromCloses(t *testing.T, startMonth string, closes ...float64) *domain.PriceSeries {
	t.Helper()

	points := make([]domain.MonthlyPricePoint, len(closes))
	key := startMonth
	for i, c := range closes {
		points[i] = domain.MonthlyPricePoint{Month: key, Close: decimal.NewFromFloat(c)}
		next, err := monthutil.Add(key, 1)
		require.NoError(t, err)
		key = next
	}

	series, err := domain.NewPriceSeries(points)
	require.NoError(t, err)
	return series
}
