package output

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/finsim/finsim/internal/domain"
	"github.com/olekukonko/tablewriter"
)

// ConsoleFormatter renders results as human-readable text with summary lines
// and a table. Monthly series are sampled to one row per January to keep
// long horizons readable.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) FormatRetirement(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}

	verdict := "SUCCESS"
	if !result.Success {
		verdict = fmt.Sprintf("RUIN (%s)", result.RuinMonth)
	}
	fmt.Fprintf(buf, "Retirement simulation - policy %s, start %s\n", result.Policy, result.StartMonth)
	fmt.Fprintf(buf, "Outcome:         %s\n", verdict)
	fmt.Fprintf(buf, "Ending value:    %s\n", FormatCurrency(result.EndingValue))
	fmt.Fprintf(buf, "Total withdrawn: %s\n", FormatCurrency(result.TotalWithdrawn))
	fmt.Fprintf(buf, "Max drawdown:    %s\n", FormatPercent(result.MaxDrawdown))
	fmt.Fprintf(buf, "Balance range:   %s to %s\n\n",
		FormatCurrency(result.LowestBalance), FormatCurrency(result.HighestBalance))

	table := tablewriter.NewWriter(buf)
	table.Header("Month", "Balance", "Withdrawal", "Detail")
	for i, snap := range result.Series {
		lastRow := i == len(result.Series)-1
		if !strings.HasSuffix(snap.Month, "-01") && !lastRow {
			continue
		}
		detail := ""
		if snap.GuardrailsRatePct != nil {
			detail = "rate " + FormatRatePct(*snap.GuardrailsRatePct)
		}
		if snap.InflationFactor != nil {
			detail = "inflation x" + snap.InflationFactor.StringFixed(4)
		}
		table.Append(snap.Month, FormatCurrency(snap.Value), FormatCurrency(snap.Withdrawal), detail)
	}
	table.Render()

	return buf.Bytes(), nil
}

func (ConsoleFormatter) FormatSweep(result *domain.SweepResult) ([]byte, error) {
	buf := &bytes.Buffer{}

	s := result.Summary
	fmt.Fprintf(buf, "Historical sweep - %d runs, %d passed\n", s.TotalRuns, s.Successes)
	fmt.Fprintf(buf, "Success rate: %s\n", FormatPercent(s.SuccessRate))
	if s.TotalRuns == 0 {
		fmt.Fprintln(buf, "No start years had enough trailing data for the requested duration.")
		return buf.Bytes(), nil
	}
	fmt.Fprintf(buf, "Average ending balance: %s\n", FormatCurrency(*s.AverageEndingBalance))
	fmt.Fprintf(buf, "Median ending balance:  %s\n", FormatCurrency(*s.MedianEndingBalance))
	fmt.Fprintf(buf, "Balance extremes across all runs: %s to %s\n\n",
		FormatCurrency(*s.LowestBalanceHit), FormatCurrency(*s.HighestBalanceHit))

	table := tablewriter.NewWriter(buf)
	table.Header("Start Year", "Passed", "Highest", "Lowest", "Ending")
	for _, r := range result.Results {
		passed := "yes"
		if !r.Passed {
			passed = "no"
		}
		table.Append(strconv.Itoa(r.StartYear), passed,
			FormatCurrency(r.HighestBalance), FormatCurrency(r.LowestBalance),
			FormatCurrency(r.EndingBalance))
	}
	table.Render()

	return buf.Bytes(), nil
}

func (ConsoleFormatter) FormatDCA(result *domain.DCAResult) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "DCA accumulation - %d months\n", len(result.Series))
	fmt.Fprintf(buf, "Starting balance:  %s\n", FormatCurrency(result.StartingBalance))
	fmt.Fprintf(buf, "Total contributed: %s\n", FormatCurrency(result.TotalContributed))
	fmt.Fprintf(buf, "Market growth:     %s\n", FormatCurrency(result.GrowthAmount))
	fmt.Fprintf(buf, "Ending value:      %s\n\n", FormatCurrency(result.EndingValue))

	table := tablewriter.NewWriter(buf)
	table.Header("Month", "Balance")
	for i, snap := range result.Series {
		if !strings.HasSuffix(snap.Month, "-01") && i != len(result.Series)-1 {
			continue
		}
		table.Append(snap.Month, FormatCurrency(snap.Value))
	}
	table.Render()

	return buf.Bytes(), nil
}

func (ConsoleFormatter) FormatInflationSweep(result *domain.InflationSweepResult) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "Historical purchasing-power sweep - %d start years\n", len(result.Results))
	if len(result.Results) == 0 {
		fmt.Fprintln(buf, "No start years had a full span of inflation data.")
		return buf.Bytes(), nil
	}
	fmt.Fprintf(buf, "Average ending real value: %s\n", FormatCurrency(*result.AverageEndingRealValue))
	fmt.Fprintf(buf, "Worst ending real value:   %s\n", FormatCurrency(*result.WorstEndingRealValue))
	fmt.Fprintf(buf, "Best ending real value:    %s\n\n", FormatCurrency(*result.BestEndingRealValue))

	table := tablewriter.NewWriter(buf)
	table.Header("Start Year", "Ending Real Value")
	for _, outcome := range result.Results {
		table.Append(strconv.Itoa(outcome.StartYear), FormatCurrency(outcome.EndingRealValue))
	}
	table.Render()

	return buf.Bytes(), nil
}

func (ConsoleFormatter) FormatInflation(points []domain.PurchasingPowerPoint) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "Purchasing power projection - %d years\n\n", len(points))
	table := tablewriter.NewWriter(buf)
	table.Header("Year", "Real Value")
	for _, p := range points {
		table.Append(strconv.Itoa(p.Year), FormatCurrency(p.RealValue))
	}
	table.Render()

	return buf.Bytes(), nil
}
