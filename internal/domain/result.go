package domain

import "github.com/shopspring/decimal"

// MonthlySnapshot is one simulated month of a retirement run. Value is the
// post-withdrawal balance. GuardrailsRatePct and InflationFactor are set only
// under the policy that produces them.
type MonthlySnapshot struct {
	Month             string           `json:"month"`
	Value             decimal.Decimal  `json:"value"`
	Withdrawal        decimal.Decimal  `json:"withdrawal"`
	GuardrailsRatePct *decimal.Decimal `json:"guardrails_rate_pct,omitempty"`
	InflationFactor   *decimal.Decimal `json:"inflation_factor,omitempty"`
}

// SimulationResult is the complete outcome of one retirement path run.
// Created fresh per run and immutable once returned. A failed run (ruin)
// truncates Series at the month the balance hit zero.
type SimulationResult struct {
	Success        bool              `json:"success"`
	Policy         string            `json:"policy"`
	StartMonth     string            `json:"start_month"`
	TotalWithdrawn decimal.Decimal   `json:"total_withdrawn"`
	EndingValue    decimal.Decimal   `json:"ending_value"`
	MaxDrawdown    decimal.Decimal   `json:"max_drawdown"`
	HighestBalance decimal.Decimal   `json:"highest_balance"`
	LowestBalance  decimal.Decimal   `json:"lowest_balance"`
	RuinMonth      string            `json:"ruin_month,omitempty"`
	Series         []MonthlySnapshot `json:"series"`
}

// YearOutcome records one historical start year of a sweep.
type YearOutcome struct {
	StartYear       int             `json:"start_year"`
	Passed          bool            `json:"passed"`
	StartingBalance decimal.Decimal `json:"starting_balance"`
	HighestBalance  decimal.Decimal `json:"highest_balance"`
	LowestBalance   decimal.Decimal `json:"lowest_balance"`
	EndingBalance   decimal.Decimal `json:"ending_balance"`
}

// SweepSummary aggregates a historical success sweep. The balance aggregates
// are nil when no start years qualified, so callers never see a divide-by-zero
// artifact.
type SweepSummary struct {
	TotalRuns            int              `json:"total_runs"`
	Successes            int              `json:"successes"`
	SuccessRate          decimal.Decimal  `json:"success_rate"`
	AverageEndingBalance *decimal.Decimal `json:"average_ending_balance,omitempty"`
	MedianEndingBalance  *decimal.Decimal `json:"median_ending_balance,omitempty"`
	HighestBalanceHit    *decimal.Decimal `json:"highest_balance_hit,omitempty"`
	LowestBalanceHit     *decimal.Decimal `json:"lowest_balance_hit,omitempty"`
}

// SweepResult is the full output of a historical success sweep.
type SweepResult struct {
	Summary SweepSummary  `json:"summary"`
	Results []YearOutcome `json:"results"`
}

// DCASnapshot is one month of an accumulation run. Value is the balance after
// the month's contribution and market return.
type DCASnapshot struct {
	Month        string          `json:"month"`
	Value        decimal.Decimal `json:"value"`
	Contribution decimal.Decimal `json:"contribution"`
}

// DCAResult is the outcome of a dollar-cost-averaging accumulation run.
type DCAResult struct {
	StartingBalance  decimal.Decimal `json:"starting_balance"`
	TotalContributed decimal.Decimal `json:"total_contributed"`
	EndingValue      decimal.Decimal `json:"ending_value"`
	GrowthAmount     decimal.Decimal `json:"growth_amount"`
	Series           []DCASnapshot   `json:"series"`
}

// PurchasingPowerPoint is the inflation-deflated real value of a fixed
// nominal amount at the end of one year.
type PurchasingPowerPoint struct {
	Year      int             `json:"year"`
	RealValue decimal.Decimal `json:"real_value"`
}

// InflationOutcome is the result of deflating a nominal amount across a span
// of historical annual inflation rates.
type InflationOutcome struct {
	StartYear       int                    `json:"start_year"`
	EndingRealValue decimal.Decimal        `json:"ending_real_value"`
	Series          []PurchasingPowerPoint `json:"series"`
}

// InflationSweepResult aggregates purchasing-power outcomes across every
// historical start year with a full span of inflation data.
type InflationSweepResult struct {
	Results                []InflationOutcome `json:"results"`
	AverageEndingRealValue *decimal.Decimal   `json:"average_ending_real_value,omitempty"`
	WorstEndingRealValue   *decimal.Decimal   `json:"worst_ending_real_value,omitempty"`
	BestEndingRealValue    *decimal.Decimal   `json:"best_ending_real_value,omitempty"`
}
