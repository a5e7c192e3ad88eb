package marketdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// InflationSet holds annual inflation percentages keyed by calendar year.
// It implements calculation.InflationSource.
type InflationSet struct {
	rates   map[int]decimal.Decimal
	minYear int
	maxYear int
}

// LoadInflationCSV reads an annual inflation dataset (year,value rows with a
// header) from a CSV file.
func LoadInflationCSV(path string) (*InflationSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inflation file %s: %w", path, err)
	}
	defer file.Close()

	set, err := ReadInflationCSV(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return set, nil
}

// ReadInflationCSV parses year,value rows. Malformed rows are skipped, but an
// entirely empty dataset is an error.
func ReadInflationCSV(r io.Reader) (*InflationSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	set := &InflationSet{rates: make(map[int]decimal.Decimal)}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read data row: %w", err)
		}
		if len(record) < 2 {
			continue // Skip malformed rows
		}
		year, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			continue // Skip rows with invalid year
		}
		value, err := decimal.NewFromString(strings.TrimSpace(record[1]))
		if err != nil {
			continue // Skip rows with invalid value
		}
		set.add(year, value)
	}

	if len(set.rates) == 0 {
		return nil, fmt.Errorf("no valid inflation data points found")
	}
	return set, nil
}

// NewInflationSet builds a set from an in-memory map, mainly for tests and
// programmatic callers.
func NewInflationSet(rates map[int]decimal.Decimal) (*InflationSet, error) {
	if len(rates) == 0 {
		return nil, fmt.Errorf("no inflation data points provided")
	}
	set := &InflationSet{rates: make(map[int]decimal.Decimal, len(rates))}
	for year, value := range rates {
		set.add(year, value)
	}
	return set, nil
}

func (s *InflationSet) add(year int, value decimal.Decimal) {
	if len(s.rates) == 0 || year < s.minYear {
		s.minYear = year
	}
	if len(s.rates) == 0 || year > s.maxYear {
		s.maxYear = year
	}
	s.rates[year] = value
}

// Rate returns the inflation percentage for a year, or an error naming the
// missing year. Missing years are never interpolated.
func (s *InflationSet) Rate(year int) (decimal.Decimal, error) {
	rate, ok := s.rates[year]
	if !ok {
		return decimal.Zero, fmt.Errorf("no inflation data found for year %d", year)
	}
	return rate, nil
}

// YearRange returns the earliest and latest years present in the dataset.
func (s *InflationSet) YearRange() (int, int) { return s.minYear, s.maxYear }

// Len returns the number of years in the dataset.
func (s *InflationSet) Len() int { return len(s.rates) }
