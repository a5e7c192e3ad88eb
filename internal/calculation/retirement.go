package calculation

import (
	"fmt"
	"time"

	"github.com/finsim/finsim/internal/domain"
	"github.com/shopspring/decimal"
)

// Simulator runs drawdown and accumulation paths over a shared monthly price
// series. The series is read-only; per-run state lives on the stack of each
// run, so a Simulator may serve concurrent callers.
type Simulator struct {
	Prices *domain.PriceSeries
	Logger Logger
}

// NewSimulator creates a simulator over a validated price series.
func NewSimulator(prices *domain.PriceSeries) *Simulator {
	return &Simulator{Prices: prices, Logger: NopLogger{}}
}

// SetLogger sets the logger. A nil logger restores the no-op default.
func (s *Simulator) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	s.Logger = l
}

// RetirementParams configures one retirement path run.
type RetirementParams struct {
	Policy         domain.WithdrawalPolicy
	Frequency      domain.WithdrawalFrequency
	InitialBalance decimal.Decimal
	StartMonth     string
	Years          int
}

// checkSpan validates the start month and horizon against the available data
// before any simulation begins.
func (s *Simulator) checkSpan(startMonth string, years int) (startIdx, months int, err error) {
	if years <= 0 {
		return 0, 0, fmt.Errorf("duration must be at least one year, got %d", years)
	}
	startIdx, ok := s.Prices.IndexOf(startMonth)
	if !ok {
		return 0, 0, fmt.Errorf("start month %s not found in price series (%s to %s)",
			startMonth, s.Prices.FirstMonth(), s.Prices.LastMonth())
	}
	months = years * 12
	if startIdx+months > s.Prices.Len() {
		return 0, 0, fmt.Errorf("insufficient data: %d months needed from %s, only %d available",
			months, startMonth, s.Prices.Len()-startIdx)
	}
	return startIdx, months, nil
}

// RunRetirement simulates one multi-year withdrawal path month by month.
// Ruin (balance reaching zero) is a valid terminal outcome reported via
// Success=false, not an error; the snapshot series truncates at that month.
func (s *Simulator) RunRetirement(params RetirementParams) (*domain.SimulationResult, error) {
	startIdx, months, err := s.checkSpan(params.StartMonth, params.Years)
	if err != nil {
		return nil, err
	}

	// Policy-dependent run state, initialized fresh per run.
	var (
		state            GuardrailsState
		baseWithdrawal   decimal.Decimal
		monthlyInflation decimal.Decimal
		inflationFactor  = one
	)
	switch p := params.Policy.(type) {
	case domain.PercentOfInitial:
	case domain.InflationAdjustedFixed:
		baseWithdrawal = perPeriodAmount(params.InitialBalance, p.RatePct, params.Frequency)
		monthlyInflation = MonthlyInflationRate(p.AnnualInflationPct)
	case domain.Guardrails:
		state = NewGuardrailsState(p)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownPolicy, params.Policy)
	}

	returns := BuildReturnSeries(s.Prices)

	balance := params.InitialBalance
	totalWithdrawn := decimal.Zero
	highest := balance
	lowest := balance
	peak := balance
	maxDrawdown := decimal.Zero
	yearStartBalance := balance
	prevYear := 0
	success := true
	ruinMonth := ""
	series := make([]domain.MonthlySnapshot, 0, months)

	s.Logger.Debugf("retirement run: policy=%s start=%s years=%d balance=%s",
		params.Policy.PolicyName(), params.StartMonth, params.Years, params.InitialBalance)

	for i := startIdx; i < startIdx+months; i++ {
		year, month := s.Prices.YearMonth(i)

		// Fiscal-year boundary: capture the pre-return balance for YTD math.
		if i == startIdx || year != prevYear {
			yearStartBalance = balance
		}
		prevYear = year

		balance = balance.Mul(one.Add(returns[i]))

		ytdReturn := decimal.Zero
		if yearStartBalance.GreaterThan(decimal.Zero) {
			ytdReturn = balance.Div(yearStartBalance).Sub(one)
		}

		isWithdrawalMonth := params.Frequency == domain.FrequencyMonthly || month == time.January

		withdrawal, nextState, err := EvaluateWithdrawal(params.Policy, state, PolicyContext{
			InitialBalance:     params.InitialBalance,
			BalanceAfterReturn: balance,
			YTDReturn:          ytdReturn,
			Frequency:          params.Frequency,
			IsWithdrawalMonth:  isWithdrawalMonth,
			BaseWithdrawal:     baseWithdrawal,
			InflationFactor:    inflationFactor,
		})
		if err != nil {
			return nil, err
		}
		state = nextState

		if withdrawal.LessThan(decimal.Zero) {
			withdrawal = decimal.Zero
		}
		if withdrawal.GreaterThan(balance) {
			withdrawal = balance
		}
		balance = balance.Sub(withdrawal)
		totalWithdrawn = totalWithdrawn.Add(withdrawal)

		ruined := balance.LessThanOrEqual(decimal.Zero)
		if ruined {
			balance = decimal.Zero
		}

		if balance.GreaterThan(highest) {
			highest = balance
		}
		if balance.LessThan(lowest) {
			lowest = balance
		}
		if balance.GreaterThan(peak) {
			peak = balance
		}
		if peak.GreaterThan(decimal.Zero) {
			drawdown := peak.Sub(balance).Div(peak)
			if drawdown.GreaterThan(maxDrawdown) {
				maxDrawdown = drawdown
			}
		}

		snapshot := domain.MonthlySnapshot{
			Month:      s.Prices.Point(i).Month,
			Value:      balance,
			Withdrawal: withdrawal,
		}
		switch params.Policy.(type) {
		case domain.Guardrails:
			rate := state.CurrentRatePct
			snapshot.GuardrailsRatePct = &rate
		case domain.InflationAdjustedFixed:
			factor := inflationFactor
			snapshot.InflationFactor = &factor
		}
		series = append(series, snapshot)

		if ruined {
			success = false
			ruinMonth = snapshot.Month
			s.Logger.Debugf("ruin at %s after withdrawing %s", ruinMonth, totalWithdrawn)
			break
		}

		// Inflation compounds at the end of the month so next month's spending
		// reflects this month's inflation, not a look-ahead.
		if _, ok := params.Policy.(domain.InflationAdjustedFixed); ok {
			inflationFactor = inflationFactor.Mul(one.Add(monthlyInflation))
		}
	}

	return &domain.SimulationResult{
		Success:        success,
		Policy:         params.Policy.PolicyName(),
		StartMonth:     params.StartMonth,
		TotalWithdrawn: totalWithdrawn,
		EndingValue:    balance,
		MaxDrawdown:    maxDrawdown,
		HighestBalance: highest,
		LowestBalance:  lowest,
		RuinMonth:      ruinMonth,
		Series:         series,
	}, nil
}
