package cli

import (
	"fmt"

	"github.com/finsim/finsim/internal/calculation"
	"github.com/finsim/finsim/internal/config"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var sweepFlags struct {
	policy    policyFlags
	balance   float64
	years     int
	frequency string
	scenario  string
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Re-run the retirement simulation from every historical January",
	RunE:  runSweep,
}

func init() {
	addPolicyFlags(sweepCmd, &sweepFlags.policy)
	sweepCmd.Flags().Float64Var(&sweepFlags.balance, "balance", 1000000, "initial portfolio balance")
	sweepCmd.Flags().IntVar(&sweepFlags.years, "years", 30, "simulation horizon in years")
	sweepCmd.Flags().StringVar(&sweepFlags.frequency, "frequency", "monthly", "withdrawal frequency: monthly or annual")
	sweepCmd.Flags().StringVar(&sweepFlags.scenario, "scenario", "", "YAML scenario file (overrides flags)")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, _ []string) error {
	params := calculation.SweepParams{}
	scenarioDataFile := ""

	if sweepFlags.scenario != "" {
		cfg, err := config.NewInputParser().LoadFromFile(sweepFlags.scenario)
		if err != nil {
			return err
		}
		if cfg.Sweep == nil {
			return fmt.Errorf("scenario file %s has no sweep section", sweepFlags.scenario)
		}
		scenarioDataFile = cfg.PriceDataFile
		policy, err := config.BuildPolicy(cfg.Sweep.Policy)
		if err != nil {
			return err
		}
		frequency, err := config.ParseFrequency(cfg.Sweep.Frequency)
		if err != nil {
			return err
		}
		params = calculation.SweepParams{
			Policy:         policy,
			Frequency:      frequency,
			InitialBalance: cfg.Sweep.InitialBalance,
			Years:          cfg.Sweep.Years,
		}
	} else {
		policy, err := sweepFlags.policy.build(cmd)
		if err != nil {
			return err
		}
		frequency, err := config.ParseFrequency(sweepFlags.frequency)
		if err != nil {
			return err
		}
		params = calculation.SweepParams{
			Policy:         policy,
			Frequency:      frequency,
			InitialBalance: decimal.NewFromFloat(sweepFlags.balance),
			Years:          sweepFlags.years,
		}
	}

	sim, err := loadSimulator(scenarioDataFile)
	if err != nil {
		return err
	}

	result, err := sim.RunHistoricalSweep(params)
	if err != nil {
		return err
	}

	formatter, err := resolveFormatter()
	if err != nil {
		return err
	}
	data, err := formatter.FormatSweep(result)
	if err != nil {
		return err
	}
	return printBytes(cmd, data)
}
