package cli

import (
	"fmt"

	"github.com/finsim/finsim/internal/calculation"
	"github.com/finsim/finsim/internal/config"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var retireFlags struct {
	policy    policyFlags
	balance   float64
	start     string
	years     int
	frequency string
	scenario  string
}

var retireCmd = &cobra.Command{
	Use:   "retire",
	Short: "Simulate one retirement withdrawal path from a historical start month",
	RunE:  runRetire,
}

func init() {
	addPolicyFlags(retireCmd, &retireFlags.policy)
	retireCmd.Flags().Float64Var(&retireFlags.balance, "balance", 1000000, "initial portfolio balance")
	retireCmd.Flags().StringVar(&retireFlags.start, "start", "", "start month (YYYY-MM)")
	retireCmd.Flags().IntVar(&retireFlags.years, "years", 30, "simulation horizon in years")
	retireCmd.Flags().StringVar(&retireFlags.frequency, "frequency", "monthly", "withdrawal frequency: monthly or annual")
	retireCmd.Flags().StringVar(&retireFlags.scenario, "scenario", "", "YAML scenario file (overrides flags)")
	rootCmd.AddCommand(retireCmd)
}

func runRetire(cmd *cobra.Command, _ []string) error {
	params := calculation.RetirementParams{}
	scenarioDataFile := ""

	if retireFlags.scenario != "" {
		cfg, err := config.NewInputParser().LoadFromFile(retireFlags.scenario)
		if err != nil {
			return err
		}
		if cfg.Retirement == nil {
			return fmt.Errorf("scenario file %s has no retirement section", retireFlags.scenario)
		}
		scenarioDataFile = cfg.PriceDataFile
		policy, err := config.BuildPolicy(cfg.Retirement.Policy)
		if err != nil {
			return err
		}
		frequency, err := config.ParseFrequency(cfg.Retirement.Frequency)
		if err != nil {
			return err
		}
		params = calculation.RetirementParams{
			Policy:         policy,
			Frequency:      frequency,
			InitialBalance: cfg.Retirement.InitialBalance,
			StartMonth:     cfg.Retirement.StartMonth,
			Years:          cfg.Retirement.Years,
		}
	} else {
		policy, err := retireFlags.policy.build(cmd)
		if err != nil {
			return err
		}
		frequency, err := config.ParseFrequency(retireFlags.frequency)
		if err != nil {
			return err
		}
		params = calculation.RetirementParams{
			Policy:         policy,
			Frequency:      frequency,
			InitialBalance: decimal.NewFromFloat(retireFlags.balance),
			StartMonth:     retireFlags.start,
			Years:          retireFlags.years,
		}
	}

	sim, err := loadSimulator(scenarioDataFile)
	if err != nil {
		return err
	}
	if params.StartMonth == "" {
		params.StartMonth = sim.Prices.FirstMonth()
	}

	result, err := sim.RunRetirement(params)
	if err != nil {
		return err
	}

	formatter, err := resolveFormatter()
	if err != nil {
		return err
	}
	data, err := formatter.FormatRetirement(result)
	if err != nil {
		return err
	}
	return printBytes(cmd, data)
}
