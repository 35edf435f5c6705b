package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format used for every stored and exchanged date.
const DateLayout = "2006-01-02"

// -----------------------------------------------------------------------------

// MObservation is one dated measurement of a single metric.
type MObservation struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// -----------------------------------------------------------------------------

// MSeries is the ordered set of observations for one metric.
// After preparation Observations are ascending by date.
type MSeries struct {
	Metric       string         `json:"metric"`
	Observations []MObservation `json:"observations"`
}

// Len returns the number of observations.
func (s MSeries) Len() int {
	return len(s.Observations)
}

// Values returns a fresh slice holding the observation values in series order.
func (s MSeries) Values() []float64 {
	values := make([]float64, len(s.Observations))
	for i, o := range s.Observations {
		values[i] = o.Value
	}
	return values
}

// -----------------------------------------------------------------------------

// MJoinedPoint pairs the values of two series that share a date.
type MJoinedPoint struct {
	Date  time.Time `json:"date"`
	Left  float64   `json:"left"`
	Right float64   `json:"right"`
}

// -----------------------------------------------------------------------------

// ParseDate parses a YYYY-MM-DD calendar day into UTC midnight.
func ParseDate(value string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected %s): %w", value, DateLayout, err)
	}
	return d, nil
}

// FormatDate renders a date in DateLayout.
func FormatDate(d time.Time) string {
	return d.UTC().Format(DateLayout)
}
