// Package monthutil provides helpers for the "YYYY-MM" month keys used to
// index monthly market data.
package monthutil

import (
	"fmt"
	"time"
)

// Layout is the canonical month key format.
const Layout = "2006-01"

// Parse converts a month key into its calendar year and month.
func Parse(key string) (int, time.Month, error) {
	t, err := time.Parse(Layout, key)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t.Year(), t.Month(), nil
}

// Key formats a calendar year and month as a month key.
func Key(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(Layout)
}

// Add returns the month key n months after key. Negative n steps backwards.
func Add(key string, n int) (string, error) {
	t, err := time.Parse(Layout, key)
	if err != nil {
		return "", fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t.AddDate(0, n, 0).Format(Layout), nil
}

// Valid reports whether key is a well-formed month key.
func Valid(key string) bool {
	_, err := time.Parse(Layout, key)
	return err == nil
}

// Normalize accepts a month key or a full "YYYY-MM-DD" date and returns the
// month key, so daily-dated CSV exports can feed monthly series directly.
func Normalize(value string) (string, error) {
	if len(value) > len(Layout) {
		value = value[:len(Layout)]
	}
	if !Valid(value) {
		return "", fmt.Errorf("invalid month value %q", value)
	}
	return value, nil
}
