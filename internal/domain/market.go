package domain

import (
	"fmt"
	"time"

	"github.com/finsim/finsim/pkg/monthutil"
	"github.com/shopspring/decimal"
)

// MonthlyPricePoint is a single month of a closing-price series, keyed by a
// "YYYY-MM" month string.
type MonthlyPricePoint struct {
	Month string          `json:"month" yaml:"month"`
	Open  decimal.Decimal `json:"open,omitempty" yaml:"open,omitempty"`
	Close decimal.Decimal `json:"close" yaml:"close"`
}

// PriceSeries is a validated, ordered monthly closing-price series. It is
// immutable once built and shared read-only by every simulation run.
type PriceSeries struct {
	points []MonthlyPricePoint
	years  []int
	months []time.Month
	index  map[string]int
}

// NewPriceSeries validates and wraps an ordered price series. Months must be
// well-formed and strictly increasing.
func NewPriceSeries(points []MonthlyPricePoint) (*PriceSeries, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("price series is empty")
	}

	s := &PriceSeries{
		points: points,
		years:  make([]int, len(points)),
		months: make([]time.Month, len(points)),
		index:  make(map[string]int, len(points)),
	}

	for i, p := range points {
		year, month, err := monthutil.Parse(p.Month)
		if err != nil {
			return nil, fmt.Errorf("price point %d: %w", i, err)
		}
		if i > 0 && points[i-1].Month >= p.Month {
			return nil, fmt.Errorf("price series months must be strictly increasing: %s follows %s",
				p.Month, points[i-1].Month)
		}
		s.years[i] = year
		s.months[i] = month
		s.index[p.Month] = i
	}

	return s, nil
}

// Len returns the number of monthly points.
func (s *PriceSeries) Len() int { return len(s.points) }

// Point returns the i-th price point.
func (s *PriceSeries) Point(i int) MonthlyPricePoint { return s.points[i] }

// Points returns the underlying points. Callers must treat them as read-only.
func (s *PriceSeries) Points() []MonthlyPricePoint { return s.points }

// YearMonth returns the calendar year and month of the i-th point.
func (s *PriceSeries) YearMonth(i int) (int, time.Month) { return s.years[i], s.months[i] }

// IndexOf returns the index of a month key, if present.
func (s *PriceSeries) IndexOf(month string) (int, bool) {
	i, ok := s.index[month]
	return i, ok
}

// FirstMonth returns the earliest month key in the series.
func (s *PriceSeries) FirstMonth() string { return s.points[0].Month }

// LastMonth returns the latest month key in the series.
func (s *PriceSeries) LastMonth() string { return s.points[len(s.points)-1].Month }
