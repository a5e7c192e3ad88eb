package domain

import "github.com/shopspring/decimal"

// WithdrawalFrequency selects how often a withdrawal policy pays out.
type WithdrawalFrequency string

const (
	// FrequencyMonthly pays a withdrawal every simulated month.
	FrequencyMonthly WithdrawalFrequency = "monthly"
	// FrequencyAnnual pays once per calendar year, in January.
	FrequencyAnnual WithdrawalFrequency = "annual"
)

// WithdrawalPolicy is the closed set of spending policies a retirement
// simulation can run under. Each variant carries exactly the parameters it
// needs; the evaluator type-switches over the concrete types and rejects
// anything else as a configuration error.
type WithdrawalPolicy interface {
	// PolicyName returns a short identifier for reporting and dispatch.
	PolicyName() string
}

// PercentOfInitial withdraws a fixed fraction of the starting balance every
// period. The amount never changes regardless of market performance, giving
// a fixed spending plan with no inflation adjustment.
type PercentOfInitial struct {
	RatePct decimal.Decimal `json:"rate_pct"`
}

func (PercentOfInitial) PolicyName() string { return "percent_of_initial" }

// InflationAdjustedFixed withdraws a base amount computed once from the
// starting balance and grown by compounding inflation. Spending does not
// shrink even if the account declines.
type InflationAdjustedFixed struct {
	RatePct            decimal.Decimal `json:"rate_pct"`
	AnnualInflationPct decimal.Decimal `json:"annual_inflation_pct"`
}

func (InflationAdjustedFixed) PolicyName() string { return "inflation_adjusted" }

// Guardrails withdraws a percentage of the current balance with a rate that
// self-adjusts inside [MinRatePct, MaxRatePct] based on fiscal-year-to-date
// performance. FloorAmount, when positive, is a minimum dollar withdrawal
// per period.
type Guardrails struct {
	InitialRatePct decimal.Decimal `json:"initial_rate_pct"`
	MinRatePct     decimal.Decimal `json:"min_rate_pct"`
	MaxRatePct     decimal.Decimal `json:"max_rate_pct"`
	FloorAmount    decimal.Decimal `json:"floor_amount"`
}

func (Guardrails) PolicyName() string { return "guardrails" }
