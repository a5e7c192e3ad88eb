package calculation

import (
	"github.com/finsim/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// DCAParams configures a dollar-cost-averaging accumulation run.
type DCAParams struct {
	InitialBalance      decimal.Decimal
	MonthlyContribution decimal.Decimal
	StartMonth          string
	Years               int
}

// RunDCA simulates periodic fixed contributions compounding over the return
// series. Each month the contribution lands first, then the month's market
// return applies to the whole balance.
func (s *Simulator) RunDCA(params DCAParams) (*domain.DCAResult, error) {
	startIdx, months, err := s.checkSpan(params.StartMonth, params.Years)
	if err != nil {
		return nil, err
	}

	returns := BuildReturnSeries(s.Prices)

	balance := params.InitialBalance
	contributed := decimal.Zero
	series := make([]domain.DCASnapshot, 0, months)

	for i := startIdx; i < startIdx+months; i++ {
		balance = balance.Add(params.MonthlyContribution).Mul(one.Add(returns[i]))
		contributed = contributed.Add(params.MonthlyContribution)
		series = append(series, domain.DCASnapshot{
			Month:        s.Prices.Point(i).Month,
			Value:        balance,
			Contribution: params.MonthlyContribution,
		})
	}

	return &domain.DCAResult{
		StartingBalance:  params.InitialBalance,
		TotalContributed: contributed,
		EndingValue:      balance,
		GrowthAmount:     balance.Sub(params.InitialBalance).Sub(contributed),
		Series:           series,
	}, nil
}
