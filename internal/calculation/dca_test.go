package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDCAFlatMarketAccumulatesContributions(t *testing.T) {
	series := constantGrowthSeries(t, "2000-01", 12, 0)
	sim := NewSimulator(series)

	result, err := sim.RunDCA(DCAParams{
		InitialBalance:      decimal.NewFromInt(1000),
		MonthlyContribution: decimal.NewFromInt(100),
		StartMonth:          "2000-01",
		Years:               1,
	})
	require.NoError(t, err)

	assert.True(t, result.TotalContributed.Equal(decimal.NewFromInt(1200)))
	assert.True(t, result.EndingValue.Equal(decimal.NewFromInt(2200)),
		"flat market: ending %s should be initial plus contributions", result.EndingValue)
	assert.True(t, result.GrowthAmount.IsZero())
	assert.Len(t, result.Series, 12)
}

func TestDCAContributionLandsBeforeGrowth(t *testing.T) {
	series := constantGrowthSeries(t, "2000-01", 2, 0.01)
	sim := NewSimulator(series)

	result, err := sim.RunDCA(DCAParams{
		InitialBalance:      decimal.Zero,
		MonthlyContribution: decimal.NewFromInt(100),
		StartMonth:          "2000-02", // skip the zero-return first index
		Years:               0,
	})
	assert.Error(t, err, "sub-year duration must be rejected")

	// One full year against a 13-month series starting at the second month.
	series = constantGrowthSeries(t, "2000-01", 13, 0.01)
	sim = NewSimulator(series)
	result, err = sim.RunDCA(DCAParams{
		InitialBalance:      decimal.Zero,
		MonthlyContribution: decimal.NewFromInt(100),
		StartMonth:          "2000-02",
		Years:               1,
	})
	require.NoError(t, err)

	// First month: (0+100)*1.01 = 101.
	assert.True(t, result.Series[0].Value.Equal(decimal.NewFromInt(101)),
		"got %s", result.Series[0].Value)
	assert.True(t, result.EndingValue.GreaterThan(result.TotalContributed))
}

func TestDCAPreconditionErrors(t *testing.T) {
	series := constantGrowthSeries(t, "2000-01", 12, 0.01)
	sim := NewSimulator(series)

	_, err := sim.RunDCA(DCAParams{
		MonthlyContribution: decimal.NewFromInt(100),
		StartMonth:          "1999-01",
		Years:               1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = sim.RunDCA(DCAParams{
		MonthlyContribution: decimal.NewFromInt(100),
		StartMonth:          "2000-06",
		Years:               1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient data")
}
