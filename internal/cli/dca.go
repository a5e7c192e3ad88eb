package cli

import (
	"fmt"

	"github.com/finsim/finsim/internal/calculation"
	"github.com/finsim/finsim/internal/config"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var dcaFlags struct {
	balance      float64
	contribution float64
	start        string
	years        int
	scenario     string
}

var dcaCmd = &cobra.Command{
	Use:   "dca",
	Short: "Simulate dollar-cost-averaging accumulation over historical returns",
	RunE:  runDCA,
}

func init() {
	dcaCmd.Flags().Float64Var(&dcaFlags.balance, "balance", 0, "starting balance")
	dcaCmd.Flags().Float64Var(&dcaFlags.contribution, "contribution", 500, "monthly contribution")
	dcaCmd.Flags().StringVar(&dcaFlags.start, "start", "", "start month (YYYY-MM)")
	dcaCmd.Flags().IntVar(&dcaFlags.years, "years", 20, "accumulation horizon in years")
	dcaCmd.Flags().StringVar(&dcaFlags.scenario, "scenario", "", "YAML scenario file (overrides flags)")
	rootCmd.AddCommand(dcaCmd)
}

func runDCA(cmd *cobra.Command, _ []string) error {
	params := calculation.DCAParams{}
	scenarioDataFile := ""

	if dcaFlags.scenario != "" {
		cfg, err := config.NewInputParser().LoadFromFile(dcaFlags.scenario)
		if err != nil {
			return err
		}
		if cfg.DCA == nil {
			return fmt.Errorf("scenario file %s has no dca section", dcaFlags.scenario)
		}
		scenarioDataFile = cfg.PriceDataFile
		params = calculation.DCAParams{
			InitialBalance:      cfg.DCA.InitialBalance,
			MonthlyContribution: cfg.DCA.MonthlyContribution,
			StartMonth:          cfg.DCA.StartMonth,
			Years:               cfg.DCA.Years,
		}
	} else {
		params = calculation.DCAParams{
			InitialBalance:      decimal.NewFromFloat(dcaFlags.balance),
			MonthlyContribution: decimal.NewFromFloat(dcaFlags.contribution),
			StartMonth:          dcaFlags.start,
			Years:               dcaFlags.years,
		}
	}

	sim, err := loadSimulator(scenarioDataFile)
	if err != nil {
		return err
	}
	if params.StartMonth == "" {
		params.StartMonth = sim.Prices.FirstMonth()
	}

	result, err := sim.RunDCA(params)
	if err != nil {
		return err
	}

	formatter, err := resolveFormatter()
	if err != nil {
		return err
	}
	data, err := formatter.FormatDCA(result)
	if err != nil {
		return err
	}
	return printBytes(cmd, data)
}
