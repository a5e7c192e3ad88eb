// Package marketdata loads monthly market price and annual inflation
// datasets from CSV files into the validated series the simulation engine
// consumes.
package marketdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/finsim/finsim/internal/domain"
	"github.com/finsim/finsim/pkg/monthutil"
	"github.com/shopspring/decimal"
)

// LoadPriceCSV reads a monthly closing-price series from a CSV file.
func LoadPriceCSV(path string) (*domain.PriceSeries, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open price file %s: %w", path, err)
	}
	defer file.Close()

	series, err := ReadPriceCSV(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return series, nil
}

// ReadPriceCSV parses a monthly price series from CSV. Column positions are
// detected from the header: the month column by name ("month", "date", "ym")
// or by YYYY-MM shape in the first data row, the close column by name
// ("adj close" outranks "close", "price", "value") with a fallback to the
// last numeric column. Malformed rows are skipped. Rows are sorted by month;
// duplicate months are rejected.
func ReadPriceCSV(r io.Reader) (*domain.PriceSeries, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("invalid CSV format: expected at least 2 columns, got %d", len(header))
	}

	monthCol, closeCol, openCol := detectPriceColumns(header)

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read data row: %w", err)
		}
		rows = append(rows, record)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data rows found")
	}

	// Fall back to shape detection against the first data row when the
	// header names gave nothing.
	if monthCol < 0 {
		monthCol = detectMonthColumnByShape(rows[0])
	}
	if monthCol < 0 {
		return nil, fmt.Errorf("could not detect month column in header %v", header)
	}
	if closeCol < 0 {
		closeCol = detectLastNumericColumn(rows[0], monthCol)
	}
	if closeCol < 0 {
		return nil, fmt.Errorf("could not detect close column in header %v", header)
	}

	var points []domain.MonthlyPricePoint
	for _, record := range rows {
		if len(record) <= monthCol || len(record) <= closeCol {
			continue // Skip malformed rows
		}
		month, err := monthutil.Normalize(strings.TrimSpace(record[monthCol]))
		if err != nil {
			continue // Skip rows with invalid month
		}
		closeValue, err := decimal.NewFromString(strings.TrimSpace(record[closeCol]))
		if err != nil {
			continue // Skip rows with invalid close
		}
		point := domain.MonthlyPricePoint{Month: month, Close: closeValue}
		if openCol >= 0 && len(record) > openCol {
			if openValue, err := decimal.NewFromString(strings.TrimSpace(record[openCol])); err == nil {
				point.Open = openValue
			}
		}
		points = append(points, point)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no valid price points found")
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })
	for i := 1; i < len(points); i++ {
		if points[i].Month == points[i-1].Month {
			return nil, fmt.Errorf("duplicate month %s in price data", points[i].Month)
		}
	}

	return domain.NewPriceSeries(points)
}

// detectPriceColumns resolves column indexes from header names. Returns -1
// for anything it cannot identify. Close candidates are ranked: an adjusted
// close beats a raw close/price/value wherever it appears in the header, so
// Yahoo-style exports pick up the split-and-dividend-adjusted column.
func detectPriceColumns(header []string) (monthCol, closeCol, openCol int) {
	monthCol, closeCol, openCol = -1, -1, -1
	closeRank := 0
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "month", "date", "ym", "yearmonth", "year_month":
			if monthCol < 0 {
				monthCol = i
			}
		case "adj close", "adj_close", "adjclose":
			if closeRank < 2 {
				closeCol, closeRank = i, 2
			}
		case "close", "price", "value":
			if closeRank < 1 {
				closeCol, closeRank = i, 1
			}
		case "open":
			if openCol < 0 {
				openCol = i
			}
		}
	}
	return monthCol, closeCol, openCol
}

// detectMonthColumnByShape finds the first column of a data row that parses
// as a month key or full date.
func detectMonthColumnByShape(row []string) int {
	for i, field := range row {
		if _, err := monthutil.Normalize(strings.TrimSpace(field)); err == nil {
			return i
		}
	}
	return -1
}

// detectLastNumericColumn finds the right-most column of a data row that
// parses as a decimal, skipping the month column.
func detectLastNumericColumn(row []string, monthCol int) int {
	for i := len(row) - 1; i >= 0; i-- {
		if i == monthCol {
			continue
		}
		if _, err := decimal.NewFromString(strings.TrimSpace(row[i])); err == nil {
			return i
		}
	}
	return -1
}
