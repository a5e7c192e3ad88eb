package calculation

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInflationSource struct {
	rates map[int]decimal.Decimal
	min   int
	max   int
}

func (f fakeInflationSource) Rate(year int) (decimal.Decimal, error) {
	pct, ok := f.rates[year]
	if !ok {
		return decimal.Zero, fmt.Errorf("no inflation data found for year %d", year)
	}
	return pct, nil
}

func (f fakeInflationSource) YearRange() (int, int) { return f.min, f.max }

func TestMonthlyInflationRate(t *testing.T) {
	tests := []struct {
		name      string
		annualPct float64
		expected  float64
	}{
		{"three percent annual", 3, 0.00246627},
		{"zero inflation", 0, 0},
		{"deflationary floor", -100, 0},
		{"below the floor", -150, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := MonthlyInflationRate(decimal.NewFromFloat(tt.annualPct))
			f, _ := rate.Float64()
			assert.InDelta(t, tt.expected, f, 1e-8)
		})
	}
}

func TestProjectPurchasingPower(t *testing.T) {
	points := ProjectPurchasingPower(decimal.NewFromInt(1000), decimal.NewFromInt(100), 2)

	require.Len(t, points, 2)
	assert.Equal(t, 1, points[0].Year)
	assert.True(t, points[0].RealValue.Equal(decimal.NewFromInt(500)), "got %s", points[0].RealValue)
	assert.Equal(t, 2, points[1].Year)
	assert.True(t, points[1].RealValue.Equal(decimal.NewFromInt(250)), "got %s", points[1].RealValue)
}

func TestProjectPurchasingPowerDegenerateMultiplier(t *testing.T) {
	points := ProjectPurchasingPower(decimal.NewFromInt(1000), decimal.NewFromInt(-100), 3)

	require.Len(t, points, 3)
	for _, p := range points {
		assert.True(t, p.RealValue.Equal(decimal.NewFromInt(1000)),
			"year %d: value must hold at par, got %s", p.Year, p.RealValue)
	}
}

func TestDeflateByHistory(t *testing.T) {
	src := fakeInflationSource{
		rates: map[int]decimal.Decimal{
			1990: decimal.NewFromInt(100),
			1991: decimal.NewFromInt(100),
		},
		min: 1990,
		max: 1991,
	}

	outcome, err := DeflateByHistory(decimal.NewFromInt(1000), 1990, 2, src)
	require.NoError(t, err)

	assert.Equal(t, 1990, outcome.StartYear)
	assert.True(t, outcome.EndingRealValue.Equal(decimal.NewFromInt(250)), "got %s", outcome.EndingRealValue)
	require.Len(t, outcome.Series, 2)
	assert.Equal(t, 1991, outcome.Series[1].Year)
}

func TestDeflateByHistoryNamesMissingYear(t *testing.T) {
	src := fakeInflationSource{
		rates: map[int]decimal.Decimal{1990: decimal.NewFromInt(3)},
		min:   1990,
		max:   1990,
	}

	_, err := DeflateByHistory(decimal.NewFromInt(1000), 1990, 2, src)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1991")
}

func TestDeflateByHistoryRejectsNonPositiveSpan(t *testing.T) {
	_, err := DeflateByHistory(decimal.NewFromInt(1000), 1990, 0, fakeInflationSource{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one year")
}

func TestSweepPurchasingPower(t *testing.T) {
	src := fakeInflationSource{
		rates: map[int]decimal.Decimal{
			1990: decimal.NewFromInt(0),
			1991: decimal.NewFromInt(100),
			1992: decimal.NewFromInt(0),
		},
		min: 1990,
		max: 1992,
	}

	result := SweepPurchasingPower(decimal.NewFromInt(1000), 2, src)

	// Spans: 1990-1991 ends at 500, 1991-1992 also ends at 500.
	require.Len(t, result.Results, 2)
	require.NotNil(t, result.AverageEndingRealValue)
	require.NotNil(t, result.WorstEndingRealValue)
	require.NotNil(t, result.BestEndingRealValue)
	assert.True(t, result.AverageEndingRealValue.Equal(decimal.NewFromInt(500)))
	assert.True(t, result.WorstEndingRealValue.Equal(decimal.NewFromInt(500)))
	assert.True(t, result.BestEndingRealValue.Equal(decimal.NewFromInt(500)))
}

func TestSweepPurchasingPowerSkipsGappedStartYears(t *testing.T) {
	src := fakeInflationSource{
		rates: map[int]decimal.Decimal{
			1990: decimal.NewFromInt(0),
			1992: decimal.NewFromInt(0), // 1991 missing
			1993: decimal.NewFromInt(0),
		},
		min: 1990,
		max: 1993,
	}

	result := SweepPurchasingPower(decimal.NewFromInt(1000), 2, src)

	require.Len(t, result.Results, 1)
	assert.Equal(t, 1992, result.Results[0].StartYear)
}

func TestSweepPurchasingPowerEmptyRange(t *testing.T) {
	src := fakeInflationSource{min: 1990, max: 1990}

	result := SweepPurchasingPower(decimal.NewFromInt(1000), 5, src)

	assert.Empty(t, result.Results)
	assert.Nil(t, result.AverageEndingRealValue)
	assert.Nil(t, result.WorstEndingRealValue)
	assert.Nil(t, result.BestEndingRealValue)
}
