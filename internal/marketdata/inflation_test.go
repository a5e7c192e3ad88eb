package marketdata

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInflationCSV(t *testing.T) {
	csvData := `Year,Inflation
1990,5.4
1991,4.2
1992,3.0
`

	set, err := ReadInflationCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 3, set.Len())
	minYear, maxYear := set.YearRange()
	assert.Equal(t, 1990, minYear)
	assert.Equal(t, 1992, maxYear)

	rate, err := set.Rate(1991)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromFloat(4.2)))
}

func TestReadInflationCSVSkipsMalformedRows(t *testing.T) {
	csvData := `Year,Inflation
1990,5.4
banana,1.0
1991,not-a-number
1992,3.0
`

	set, err := ReadInflationCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 2, set.Len())
	_, err = set.Rate(1991)
	assert.Error(t, err)
}

func TestReadInflationCSVEmptyDataset(t *testing.T) {
	_, err := ReadInflationCSV(strings.NewReader("Year,Inflation\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid inflation data points")
}

func TestInflationSetMissingYear(t *testing.T) {
	set, err := NewInflationSet(map[int]decimal.Decimal{
		1990: decimal.NewFromFloat(5.4),
	})
	require.NoError(t, err)

	_, err = set.Rate(1985)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no inflation data found for year 1985")
}

func TestNewInflationSetRejectsEmptyMap(t *testing.T) {
	_, err := NewInflationSet(nil)

	assert.Error(t, err)
}

func TestLoadInflationCSVMissingFile(t *testing.T) {
	_, err := LoadInflationCSV("nonexistent_inflation.csv")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open inflation file")
}
