package config

import (
	"fmt"
	"os"

	"github.com/finsim/finsim/internal/calculation"
	"github.com/finsim/finsim/internal/domain"
	"github.com/finsim/finsim/pkg/monthutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.ScenarioConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.ScenarioConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates a loaded scenario configuration. All
// configuration errors are detected here, before any simulation starts.
func (ip *InputParser) ValidateConfiguration(config *domain.ScenarioConfig) error {
	if config.Retirement == nil && config.Sweep == nil && config.DCA == nil && config.Inflation == nil {
		return fmt.Errorf("no scenario sections provided")
	}

	if config.Retirement != nil {
		if err := ip.validateRetirement(config.Retirement); err != nil {
			return fmt.Errorf("retirement scenario validation failed: %w", err)
		}
	}
	if config.Sweep != nil {
		if err := ip.validateSweep(config.Sweep); err != nil {
			return fmt.Errorf("sweep scenario validation failed: %w", err)
		}
	}
	if config.DCA != nil {
		if err := ip.validateDCA(config.DCA); err != nil {
			return fmt.Errorf("dca scenario validation failed: %w", err)
		}
	}
	if config.Inflation != nil {
		if err := ip.validateInflation(config.Inflation); err != nil {
			return fmt.Errorf("inflation scenario validation failed: %w", err)
		}
	}

	return nil
}

func (ip *InputParser) validateRetirement(sc *domain.RetirementScenario) error {
	if sc.InitialBalance.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("initial balance must be positive")
	}
	if sc.Years < 1 {
		return fmt.Errorf("years must be at least 1")
	}
	if !monthutil.Valid(sc.StartMonth) {
		return fmt.Errorf("start month %q is not a valid YYYY-MM key", sc.StartMonth)
	}
	if _, err := ParseFrequency(sc.Frequency); err != nil {
		return err
	}
	if _, err := BuildPolicy(sc.Policy); err != nil {
		return err
	}
	return nil
}

func (ip *InputParser) validateSweep(sc *domain.SweepScenario) error {
	if sc.InitialBalance.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("initial balance must be positive")
	}
	if sc.Years < 1 {
		return fmt.Errorf("years must be at least 1")
	}
	if _, err := ParseFrequency(sc.Frequency); err != nil {
		return err
	}
	if _, err := BuildPolicy(sc.Policy); err != nil {
		return err
	}
	return nil
}

func (ip *InputParser) validateDCA(sc *domain.DCAScenario) error {
	if sc.InitialBalance.LessThan(decimal.Zero) {
		return fmt.Errorf("initial balance cannot be negative")
	}
	if sc.MonthlyContribution.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("monthly contribution must be positive")
	}
	if sc.Years < 1 {
		return fmt.Errorf("years must be at least 1")
	}
	if !monthutil.Valid(sc.StartMonth) {
		return fmt.Errorf("start month %q is not a valid YYYY-MM key", sc.StartMonth)
	}
	return nil
}

func (ip *InputParser) validateInflation(sc *domain.InflationScenario) error {
	if sc.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be positive")
	}
	if sc.Years < 1 {
		return fmt.Errorf("years must be at least 1")
	}
	if sc.Historical && sc.StartYear == 0 {
		return fmt.Errorf("historical projection requires a start year")
	}
	return nil
}

// ParseFrequency converts a scenario frequency string into the typed value.
// An empty string defaults to monthly.
func ParseFrequency(value string) (domain.WithdrawalFrequency, error) {
	switch value {
	case "", string(domain.FrequencyMonthly):
		return domain.FrequencyMonthly, nil
	case string(domain.FrequencyAnnual):
		return domain.FrequencyAnnual, nil
	default:
		return "", fmt.Errorf("frequency must be %q or %q, got %q",
			domain.FrequencyMonthly, domain.FrequencyAnnual, value)
	}
}

// BuildPolicy converts the loosely-typed policy section into the typed
// withdrawal policy variant, applying documented defaults: the annual
// inflation assumption defaults to 3.0% and the guardrails dollar floor
// defaults to 0 when blank.
func BuildPolicy(pc domain.PolicyConfig) (domain.WithdrawalPolicy, error) {
	switch pc.Kind {
	case "percent_of_initial":
		if pc.RatePct.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("withdrawal rate must be positive")
		}
		return domain.PercentOfInitial{RatePct: pc.RatePct}, nil

	case "inflation_adjusted":
		if pc.RatePct.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("withdrawal rate must be positive")
		}
		inflation := calculation.DefaultAnnualInflationPct
		if pc.AnnualInflationPct != nil {
			inflation = *pc.AnnualInflationPct
		}
		return domain.InflationAdjustedFixed{
			RatePct:            pc.RatePct,
			AnnualInflationPct: inflation,
		}, nil

	case "guardrails":
		if pc.RatePct.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("withdrawal rate must be positive")
		}
		if pc.MinRatePct.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("guardrails minimum rate cannot be negative")
		}
		if pc.MinRatePct.GreaterThan(pc.MaxRatePct) {
			return nil, fmt.Errorf("guardrails minimum rate %s exceeds maximum rate %s",
				pc.MinRatePct, pc.MaxRatePct)
		}
		if pc.FloorAmount.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("guardrails floor amount cannot be negative")
		}
		return domain.Guardrails{
			InitialRatePct: pc.RatePct,
			MinRatePct:     pc.MinRatePct,
			MaxRatePct:     pc.MaxRatePct,
			FloorAmount:    pc.FloorAmount,
		}, nil

	case "":
		return nil, fmt.Errorf("policy kind is required")
	default:
		return nil, fmt.Errorf("unrecognized policy kind %q", pc.Kind)
	}
}
