package calculation

import (
	"fmt"
	"math"

	"github.com/finsim/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultAnnualInflationPct is assumed when a scenario leaves the annual
// inflation rate blank.
var DefaultAnnualInflationPct = decimal.NewFromFloat(3.0)

// MonthlyInflationRate converts an annual inflation percentage into the
// equivalent monthly compounding rate: (1+annual)^(1/12) - 1. A non-positive
// compounding multiplier degenerates to a zero rate instead of propagating
// NaN into the balance trajectory.
func MonthlyInflationRate(annualPct decimal.Decimal) decimal.Decimal {
	multiplier := one.Add(annualPct.Div(hundred))
	if multiplier.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	f, _ := multiplier.Float64()
	return decimal.NewFromFloat(math.Pow(f, 1.0/12.0) - 1)
}

// InflationSource supplies historical annual inflation percentages keyed by
// calendar year.
type InflationSource interface {
	Rate(year int) (decimal.Decimal, error)
	YearRange() (min, max int)
}

// ProjectPurchasingPower reports the real value of a fixed nominal amount at
// the end of each year under a constant annual inflation assumption.
func ProjectPurchasingPower(amount, annualPct decimal.Decimal, years int) []domain.PurchasingPowerPoint {
	multiplier := one.Add(annualPct.Div(hundred))
	if multiplier.LessThanOrEqual(decimal.Zero) {
		multiplier = one
	}

	points := make([]domain.PurchasingPowerPoint, 0, years)
	real := amount
	for y := 1; y <= years; y++ {
		real = real.Div(multiplier)
		points = append(points, domain.PurchasingPowerPoint{Year: y, RealValue: real})
	}
	return points
}

// DeflateByHistory deflates a nominal amount by actual annual inflation rates
// over [startYear, startYear+years). It fails with the specific missing year
// when the dataset has a gap; rates are never guessed or extrapolated.
func DeflateByHistory(amount decimal.Decimal, startYear, years int, src InflationSource) (*domain.InflationOutcome, error) {
	if years <= 0 {
		return nil, fmt.Errorf("projection span must be at least one year, got %d", years)
	}

	real := amount
	series := make([]domain.PurchasingPowerPoint, 0, years)
	for y := 0; y < years; y++ {
		year := startYear + y
		pct, err := src.Rate(year)
		if err != nil {
			return nil, fmt.Errorf("deflating year %d: %w", year, err)
		}
		multiplier := one.Add(pct.Div(hundred))
		if multiplier.LessThanOrEqual(decimal.Zero) {
			multiplier = one
		}
		real = real.Div(multiplier)
		series = append(series, domain.PurchasingPowerPoint{Year: year, RealValue: real})
	}

	return &domain.InflationOutcome{
		StartYear:       startYear,
		EndingRealValue: real,
		Series:          series,
	}, nil
}

// SweepPurchasingPower runs DeflateByHistory from every historical start year
// with a full span of inflation data. Start years whose span crosses a data
// gap are skipped rather than extrapolated.
func SweepPurchasingPower(amount decimal.Decimal, years int, src InflationSource) *domain.InflationSweepResult {
	minYear, maxYear := src.YearRange()

	result := &domain.InflationSweepResult{}
	sum := decimal.Zero
	for start := minYear; start+years-1 <= maxYear; start++ {
		outcome, err := DeflateByHistory(amount, start, years, src)
		if err != nil {
			continue
		}
		result.Results = append(result.Results, *outcome)
		sum = sum.Add(outcome.EndingRealValue)

		ending := outcome.EndingRealValue
		if result.WorstEndingRealValue == nil || ending.LessThan(*result.WorstEndingRealValue) {
			v := ending
			result.WorstEndingRealValue = &v
		}
		if result.BestEndingRealValue == nil || ending.GreaterThan(*result.BestEndingRealValue) {
			v := ending
			result.BestEndingRealValue = &v
		}
	}

	if n := len(result.Results); n > 0 {
		avg := sum.Div(decimal.NewFromInt(int64(n)))
		result.AverageEndingRealValue = &avg
	}
	return result
}
