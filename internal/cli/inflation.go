package cli

import (
	"fmt"
	"os"

	"github.com/finsim/finsim/internal/calculation"
	"github.com/finsim/finsim/internal/config"
	"github.com/finsim/finsim/internal/marketdata"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var inflationFlags struct {
	amount        float64
	years         int
	annualPct     float64
	historical    bool
	sweep         bool
	startYear     int
	inflationData string
	scenario      string
}

var inflationCmd = &cobra.Command{
	Use:   "inflation",
	Short: "Project the purchasing power of a fixed amount over time",
	RunE:  runInflation,
}

func init() {
	inflationCmd.Flags().Float64Var(&inflationFlags.amount, "amount", 1000, "nominal dollar amount")
	inflationCmd.Flags().IntVar(&inflationFlags.years, "years", 30, "projection horizon in years")
	inflationCmd.Flags().Float64Var(&inflationFlags.annualPct, "inflation", 3.0, "assumed annual inflation in percent")
	inflationCmd.Flags().BoolVar(&inflationFlags.historical, "historical", false, "deflate by actual historical annual rates")
	inflationCmd.Flags().BoolVar(&inflationFlags.sweep, "sweep", false,
		"with --historical, deflate from every start year with a full span of data")
	inflationCmd.Flags().IntVar(&inflationFlags.startYear, "start-year", 0, "start year for historical deflation")
	inflationCmd.Flags().StringVar(&inflationFlags.inflationData, "inflation-data", "",
		"annual inflation CSV file (defaults to $FINSIM_INFLATION_DATA)")
	inflationCmd.Flags().StringVar(&inflationFlags.scenario, "scenario", "", "YAML scenario file (overrides flags)")
	rootCmd.AddCommand(inflationCmd)
}

// resolveInflationFile picks the inflation data file from the flag, a scenario
// file value, or the environment, in that order.
func resolveInflationFile(fromScenario string) (string, error) {
	if inflationFlags.inflationData != "" {
		return inflationFlags.inflationData, nil
	}
	if fromScenario != "" {
		return fromScenario, nil
	}
	if env := os.Getenv("FINSIM_INFLATION_DATA"); env != "" {
		return env, nil
	}
	return "", fmt.Errorf("no inflation data file: pass --inflation-data, set inflation_data_file in the scenario, or set FINSIM_INFLATION_DATA")
}

func runInflation(cmd *cobra.Command, _ []string) error {
	amount := decimal.NewFromFloat(inflationFlags.amount)
	annualPct := decimal.NewFromFloat(inflationFlags.annualPct)
	years := inflationFlags.years
	historical := inflationFlags.historical
	startYear := inflationFlags.startYear
	scenarioDataFile := ""

	if inflationFlags.scenario != "" {
		cfg, err := config.NewInputParser().LoadFromFile(inflationFlags.scenario)
		if err != nil {
			return err
		}
		if cfg.Inflation == nil {
			return fmt.Errorf("scenario file %s has no inflation section", inflationFlags.scenario)
		}
		scenarioDataFile = cfg.InflationDataFile
		amount = cfg.Inflation.Amount
		years = cfg.Inflation.Years
		historical = cfg.Inflation.Historical
		startYear = cfg.Inflation.StartYear
		annualPct = calculation.DefaultAnnualInflationPct
		if cfg.Inflation.AnnualInflationPct != nil {
			annualPct = *cfg.Inflation.AnnualInflationPct
		}
	}

	formatter, err := resolveFormatter()
	if err != nil {
		return err
	}

	if !historical {
		points := calculation.ProjectPurchasingPower(amount, annualPct, years)
		data, err := formatter.FormatInflation(points)
		if err != nil {
			return err
		}
		return printBytes(cmd, data)
	}

	if !inflationFlags.sweep && startYear == 0 {
		return fmt.Errorf("historical deflation requires a start year (or --sweep)")
	}
	path, err := resolveInflationFile(scenarioDataFile)
	if err != nil {
		return err
	}
	set, err := marketdata.LoadInflationCSV(path)
	if err != nil {
		return err
	}

	if inflationFlags.sweep {
		result := calculation.SweepPurchasingPower(amount, years, set)
		data, err := formatter.FormatInflationSweep(result)
		if err != nil {
			return err
		}
		return printBytes(cmd, data)
	}

	outcome, err := calculation.DeflateByHistory(amount, startYear, years, set)
	if err != nil {
		return err
	}
	data, err := formatter.FormatInflation(outcome.Series)
	if err != nil {
		return err
	}
	return printBytes(cmd, data)
}
