package calculation

import (
	"fmt"
	"sort"
	"time"

	"github.com/finsim/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// SweepParams configures a historical success sweep. The same policy and
// horizon are re-run from every eligible start year.
type SweepParams struct {
	Policy         domain.WithdrawalPolicy
	Frequency      domain.WithdrawalFrequency
	InitialBalance decimal.Decimal
	Years          int
}

// RunHistoricalSweep re-runs the retirement simulation from every January in
// the price series whose full horizon fits within the available data. Runs
// are fully independent: each gets fresh guardrails state and a fresh
// inflation factor.
func (s *Simulator) RunHistoricalSweep(params SweepParams) (*domain.SweepResult, error) {
	if params.Years <= 0 {
		return nil, fmt.Errorf("duration must be at least one year, got %d", params.Years)
	}

	months := params.Years * 12
	var (
		outcomes   []domain.YearOutcome
		endings    []decimal.Decimal
		sumEndings = decimal.Zero
		successes  int
		highestHit *decimal.Decimal
		lowestHit  *decimal.Decimal
	)

	for i := 0; i < s.Prices.Len(); i++ {
		year, month := s.Prices.YearMonth(i)
		if month != time.January || i+months > s.Prices.Len() {
			continue
		}

		run, err := s.RunRetirement(RetirementParams{
			Policy:         params.Policy,
			Frequency:      params.Frequency,
			InitialBalance: params.InitialBalance,
			StartMonth:     s.Prices.Point(i).Month,
			Years:          params.Years,
		})
		if err != nil {
			return nil, fmt.Errorf("sweep run starting %d: %w", year, err)
		}

		outcomes = append(outcomes, domain.YearOutcome{
			StartYear:       year,
			Passed:          run.Success,
			StartingBalance: params.InitialBalance,
			HighestBalance:  run.HighestBalance,
			LowestBalance:   run.LowestBalance,
			EndingBalance:   run.EndingValue,
		})
		if run.Success {
			successes++
		}
		endings = append(endings, run.EndingValue)
		sumEndings = sumEndings.Add(run.EndingValue)

		if highestHit == nil || run.HighestBalance.GreaterThan(*highestHit) {
			v := run.HighestBalance
			highestHit = &v
		}
		if lowestHit == nil || run.LowestBalance.LessThan(*lowestHit) {
			v := run.LowestBalance
			lowestHit = &v
		}
	}

	summary := domain.SweepSummary{
		TotalRuns: len(outcomes),
		Successes: successes,
	}
	if total := len(outcomes); total > 0 {
		summary.SuccessRate = decimal.NewFromInt(int64(successes)).Div(decimal.NewFromInt(int64(total)))
		avg := sumEndings.Div(decimal.NewFromInt(int64(total)))
		summary.AverageEndingBalance = &avg
		med := median(endings)
		summary.MedianEndingBalance = &med
		summary.HighestBalanceHit = highestHit
		summary.LowestBalanceHit = lowestHit
	}

	s.Logger.Infof("sweep complete: %d runs, %d passed", summary.TotalRuns, summary.Successes)

	return &domain.SweepResult{Summary: summary, Results: outcomes}, nil
}

// median returns the standard median: the middle value, or the mean of the
// two middle values for even counts. Callers guarantee non-empty input.
func median(values []decimal.Decimal) decimal.Decimal {
	sorted := append([]decimal.Decimal(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).Div(two)
}
