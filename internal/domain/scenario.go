package domain

import "github.com/shopspring/decimal"

// ScenarioConfig is the YAML scenario file surface. Sections are optional so
// one file can describe any subset of runs.
type ScenarioConfig struct {
	PriceDataFile     string               `yaml:"price_data_file"`
	InflationDataFile string               `yaml:"inflation_data_file,omitempty"`
	Retirement        *RetirementScenario  `yaml:"retirement,omitempty"`
	Sweep             *SweepScenario       `yaml:"sweep,omitempty"`
	DCA               *DCAScenario         `yaml:"dca,omitempty"`
	Inflation         *InflationScenario   `yaml:"inflation,omitempty"`
}

// PolicyConfig is the loosely-typed policy section of a scenario file. The
// config parser converts it into the strongly-typed WithdrawalPolicy variant,
// applying documented defaults and rejecting cross-field mistakes.
type PolicyConfig struct {
	Kind               string           `yaml:"kind"`
	RatePct            decimal.Decimal  `yaml:"rate_pct"`
	AnnualInflationPct *decimal.Decimal `yaml:"annual_inflation_pct,omitempty"`
	MinRatePct         decimal.Decimal  `yaml:"min_rate_pct,omitempty"`
	MaxRatePct         decimal.Decimal  `yaml:"max_rate_pct,omitempty"`
	FloorAmount        decimal.Decimal  `yaml:"floor_amount,omitempty"`
}

// RetirementScenario configures a single retirement path run.
type RetirementScenario struct {
	InitialBalance decimal.Decimal `yaml:"initial_balance"`
	StartMonth     string          `yaml:"start_month"`
	Years          int             `yaml:"years"`
	Frequency      string          `yaml:"frequency,omitempty"`
	Policy         PolicyConfig    `yaml:"policy"`
}

// SweepScenario configures a historical success sweep.
type SweepScenario struct {
	InitialBalance decimal.Decimal `yaml:"initial_balance"`
	Years          int             `yaml:"years"`
	Frequency      string          `yaml:"frequency,omitempty"`
	Policy         PolicyConfig    `yaml:"policy"`
}

// DCAScenario configures an accumulation run.
type DCAScenario struct {
	InitialBalance      decimal.Decimal `yaml:"initial_balance"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution"`
	StartMonth          string          `yaml:"start_month"`
	Years               int             `yaml:"years"`
}

// InflationScenario configures a purchasing-power projection.
type InflationScenario struct {
	Amount             decimal.Decimal  `yaml:"amount"`
	Years              int              `yaml:"years"`
	AnnualInflationPct *decimal.Decimal `yaml:"annual_inflation_pct,omitempty"`
	StartYear          int              `yaml:"start_year,omitempty"`
	Historical         bool             `yaml:"historical,omitempty"`
}
