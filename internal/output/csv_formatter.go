package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/finsim/finsim/internal/domain"
)

// CSVFormatter exports results as CSV, one row per simulated period. Values
// are raw decimals with two fixed places so spreadsheets parse them cleanly.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) FormatRetirement(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Month", "Balance", "Withdrawal", "GuardrailsRatePct", "InflationFactor"}); err != nil {
		return nil, err
	}
	for _, snap := range result.Series {
		rate, factor := "", ""
		if snap.GuardrailsRatePct != nil {
			rate = snap.GuardrailsRatePct.StringFixed(2)
		}
		if snap.InflationFactor != nil {
			factor = snap.InflationFactor.StringFixed(6)
		}
		row := []string{snap.Month, snap.Value.StringFixed(2), snap.Withdrawal.StringFixed(2), rate, factor}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (CSVFormatter) FormatSweep(result *domain.SweepResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"StartYear", "Passed", "StartingBalance", "HighestBalance", "LowestBalance", "EndingBalance"}); err != nil {
		return nil, err
	}
	for _, r := range result.Results {
		row := []string{
			strconv.Itoa(r.StartYear),
			strconv.FormatBool(r.Passed),
			r.StartingBalance.StringFixed(2),
			r.HighestBalance.StringFixed(2),
			r.LowestBalance.StringFixed(2),
			r.EndingBalance.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (CSVFormatter) FormatDCA(result *domain.DCAResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Month", "Balance", "Contribution"}); err != nil {
		return nil, err
	}
	for _, snap := range result.Series {
		row := []string{snap.Month, snap.Value.StringFixed(2), snap.Contribution.StringFixed(2)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (CSVFormatter) FormatInflationSweep(result *domain.InflationSweepResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"StartYear", "EndingRealValue"}); err != nil {
		return nil, err
	}
	for _, outcome := range result.Results {
		if err := w.Write([]string{strconv.Itoa(outcome.StartYear), outcome.EndingRealValue.StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (CSVFormatter) FormatInflation(points []domain.PurchasingPowerPoint) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Year", "RealValue"}); err != nil {
		return nil, err
	}
	for _, p := range points {
		if err := w.Write([]string{strconv.Itoa(p.Year), p.RealValue.StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
