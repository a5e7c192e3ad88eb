package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/finsim/finsim/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFileValidScenario(t *testing.T) {
	path := writeScenarioFile(t, `
price_data_file: prices.csv
retirement:
  initial_balance: 1000000
  start_month: "1990-01"
  years: 30
  frequency: monthly
  policy:
    kind: guardrails
    rate_pct: 5.0
    min_rate_pct: 3.0
    max_rate_pct: 6.0
    floor_amount: 1000
sweep:
  initial_balance: 500000
  years: 20
  policy:
    kind: percent_of_initial
    rate_pct: 4.0
`)

	cfg, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "prices.csv", cfg.PriceDataFile)
	require.NotNil(t, cfg.Retirement)
	assert.Equal(t, "1990-01", cfg.Retirement.StartMonth)
	assert.Equal(t, 30, cfg.Retirement.Years)
	require.NotNil(t, cfg.Sweep)
	assert.Nil(t, cfg.DCA)

	policy, err := BuildPolicy(cfg.Retirement.Policy)
	require.NoError(t, err)
	guardrails, ok := policy.(domain.Guardrails)
	require.True(t, ok)
	assert.True(t, guardrails.FloorAmount.Equal(decimal.NewFromInt(1000)))
}

func TestLoadFromFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"no scenario sections",
			`price_data_file: prices.csv`,
			"no scenario sections provided",
		},
		{
			"non-positive balance",
			`
retirement:
  initial_balance: 0
  start_month: "1990-01"
  years: 10
  policy: {kind: percent_of_initial, rate_pct: 4.0}
`,
			"initial balance must be positive",
		},
		{
			"bad start month",
			`
retirement:
  initial_balance: 1000
  start_month: "January 1990"
  years: 10
  policy: {kind: percent_of_initial, rate_pct: 4.0}
`,
			"not a valid YYYY-MM key",
		},
		{
			"bad frequency",
			`
retirement:
  initial_balance: 1000
  start_month: "1990-01"
  years: 10
  frequency: weekly
  policy: {kind: percent_of_initial, rate_pct: 4.0}
`,
			"frequency must be",
		},
		{
			"dca needs a contribution",
			`
dca:
  initial_balance: 1000
  monthly_contribution: 0
  start_month: "1990-01"
  years: 10
`,
			"monthly contribution must be positive",
		},
		{
			"historical inflation needs a start year",
			`
inflation:
  amount: 1000
  years: 10
  historical: true
`,
			"requires a start year",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenarioFile(t, tt.content)
			_, err := NewInputParser().LoadFromFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFileMissingFile(t *testing.T) {
	_, err := NewInputParser().LoadFromFile("nonexistent.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected domain.WithdrawalFrequency
		wantErr  bool
	}{
		{"empty defaults to monthly", "", domain.FrequencyMonthly, false},
		{"monthly", "monthly", domain.FrequencyMonthly, false},
		{"annual", "annual", domain.FrequencyAnnual, false},
		{"unknown value", "quarterly", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			freq, err := ParseFrequency(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, freq)
		})
	}
}

func TestBuildPolicy(t *testing.T) {
	four := decimal.NewFromInt(4)

	t.Run("percent of initial", func(t *testing.T) {
		policy, err := BuildPolicy(domain.PolicyConfig{Kind: "percent_of_initial", RatePct: four})
		require.NoError(t, err)
		p, ok := policy.(domain.PercentOfInitial)
		require.True(t, ok)
		assert.True(t, p.RatePct.Equal(four))
	})

	t.Run("inflation adjusted defaults inflation", func(t *testing.T) {
		policy, err := BuildPolicy(domain.PolicyConfig{Kind: "inflation_adjusted", RatePct: four})
		require.NoError(t, err)
		p, ok := policy.(domain.InflationAdjustedFixed)
		require.True(t, ok)
		assert.True(t, p.AnnualInflationPct.Equal(decimal.NewFromFloat(3.0)))
	})

	t.Run("inflation adjusted explicit inflation", func(t *testing.T) {
		two := decimal.NewFromInt(2)
		policy, err := BuildPolicy(domain.PolicyConfig{
			Kind:               "inflation_adjusted",
			RatePct:            four,
			AnnualInflationPct: &two,
		})
		require.NoError(t, err)
		p := policy.(domain.InflationAdjustedFixed)
		assert.True(t, p.AnnualInflationPct.Equal(two))
	})

	t.Run("guardrails min above max", func(t *testing.T) {
		_, err := BuildPolicy(domain.PolicyConfig{
			Kind:       "guardrails",
			RatePct:    four,
			MinRatePct: decimal.NewFromInt(6),
			MaxRatePct: decimal.NewFromInt(3),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds maximum rate")
	})

	t.Run("negative floor", func(t *testing.T) {
		_, err := BuildPolicy(domain.PolicyConfig{
			Kind:        "guardrails",
			RatePct:     four,
			MinRatePct:  decimal.NewFromInt(3),
			MaxRatePct:  decimal.NewFromInt(6),
			FloorAmount: decimal.NewFromInt(-1),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "floor amount cannot be negative")
	})

	t.Run("missing kind", func(t *testing.T) {
		_, err := BuildPolicy(domain.PolicyConfig{RatePct: four})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "policy kind is required")
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := BuildPolicy(domain.PolicyConfig{Kind: "martingale", RatePct: four})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unrecognized policy kind")
	})

	t.Run("non-positive rate", func(t *testing.T) {
		_, err := BuildPolicy(domain.PolicyConfig{Kind: "percent_of_initial"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate must be positive")
	})
}
