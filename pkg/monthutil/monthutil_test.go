package monthutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	year, month, err := Parse("1990-07")
	require.NoError(t, err)
	assert.Equal(t, 1990, year)
	assert.Equal(t, time.July, month)

	_, _, err = Parse("1990-13")
	assert.Error(t, err)

	_, _, err = Parse("July 1990")
	assert.Error(t, err)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "1990-07", Key(1990, time.July))
	assert.Equal(t, "2000-01", Key(2000, time.January))
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		n        int
		expected string
	}{
		{"forward within year", "1990-01", 5, "1990-06"},
		{"forward across year", "1990-11", 3, "1991-02"},
		{"backwards", "1990-01", -1, "1989-12"},
		{"zero", "1990-06", 0, "1990-06"},
		{"whole years", "1990-01", 24, "1992-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Add(tt.key, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := Add("not-a-month", 1)
	assert.Error(t, err)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("1990-01"))
	assert.False(t, Valid("1990-1"))
	assert.False(t, Valid("1990-00"))
	assert.False(t, Valid(""))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
		wantErr  bool
	}{
		{"already a month key", "1990-01", "1990-01", false},
		{"full date truncates", "1990-01-15", "1990-01", false},
		{"garbage", "yesterday", "", true},
		{"long garbage", "not-a-date-at-all", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
