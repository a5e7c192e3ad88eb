// Package cli wires the simulation engine to a cobra command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/finsim/finsim/internal/calculation"
	"github.com/finsim/finsim/internal/config"
	"github.com/finsim/finsim/internal/domain"
	"github.com/finsim/finsim/internal/marketdata"
	"github.com/finsim/finsim/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "finsim",
	Short: "Model personal-finance scenarios against historical market data",
	Long: `finsim runs long-horizon personal-finance simulations against historical
monthly market data: DCA accumulation, retirement drawdown under several
withdrawal policies, a per-start-year historical success sweep, and
inflation-adjusted purchasing-power projections.`,
	SilenceUsage: true,
}

var (
	dataFile   string
	formatName string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "",
		"monthly price CSV file (defaults to $FINSIM_DATA)")
	rootCmd.PersistentFlags().StringVar(&formatName, "format", "console",
		"output format: console or csv")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// resolvePriceFile picks the price data file from the flag, a scenario file
// value, or the environment, in that order.
func resolvePriceFile(fromScenario string) (string, error) {
	if dataFile != "" {
		return dataFile, nil
	}
	if fromScenario != "" {
		return fromScenario, nil
	}
	if env := os.Getenv("FINSIM_DATA"); env != "" {
		return env, nil
	}
	return "", fmt.Errorf("no price data file: pass --data, set price_data_file in the scenario, or set FINSIM_DATA")
}

func loadSimulator(fromScenario string) (*calculation.Simulator, error) {
	path, err := resolvePriceFile(fromScenario)
	if err != nil {
		return nil, err
	}
	prices, err := marketdata.LoadPriceCSV(path)
	if err != nil {
		return nil, err
	}
	return calculation.NewSimulator(prices), nil
}

func resolveFormatter() (output.Formatter, error) {
	f := output.GetFormatterByName(formatName)
	if f == nil {
		return nil, fmt.Errorf("unknown output format %q", formatName)
	}
	return f, nil
}

// policyFlags collects the withdrawal-policy flag surface shared by the
// retire and sweep commands.
type policyFlags struct {
	kind      string
	rate      float64
	inflation float64
	minRate   float64
	maxRate   float64
	floor     float64
}

func addPolicyFlags(cmd *cobra.Command, pf *policyFlags) {
	cmd.Flags().StringVar(&pf.kind, "policy", "percent_of_initial",
		"withdrawal policy: percent_of_initial, inflation_adjusted, guardrails")
	cmd.Flags().Float64Var(&pf.rate, "rate", 4.0, "annual withdrawal rate in percent")
	cmd.Flags().Float64Var(&pf.inflation, "inflation", 3.0,
		"annual inflation assumption in percent (inflation_adjusted policy)")
	cmd.Flags().Float64Var(&pf.minRate, "min-rate", 3.0, "guardrails minimum rate in percent")
	cmd.Flags().Float64Var(&pf.maxRate, "max-rate", 6.0, "guardrails maximum rate in percent")
	cmd.Flags().Float64Var(&pf.floor, "floor", 0, "guardrails minimum dollar withdrawal per period")
}

// build converts the flag values into a typed policy, leaving the inflation
// assumption unset unless the flag was given so the documented default applies.
func (pf *policyFlags) build(cmd *cobra.Command) (domain.WithdrawalPolicy, error) {
	pc := domain.PolicyConfig{
		Kind:        pf.kind,
		RatePct:     decimal.NewFromFloat(pf.rate),
		MinRatePct:  decimal.NewFromFloat(pf.minRate),
		MaxRatePct:  decimal.NewFromFloat(pf.maxRate),
		FloorAmount: decimal.NewFromFloat(pf.floor),
	}
	if cmd.Flags().Changed("inflation") {
		v := decimal.NewFromFloat(pf.inflation)
		pc.AnnualInflationPct = &v
	}
	return config.BuildPolicy(pc)
}

func printBytes(cmd *cobra.Command, data []byte) error {
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
