package models

import "time"

// MControlLimitSet is the I-MR chart result for one series.
type MControlLimitSet struct {
	Center float64 `json:"center"`
	UCL    float64 `json:"ucl"`
	LCL    float64 `json:"lcl"`

	MRCenter float64 `json:"mr_center"`
	MRUCL    float64 `json:"mr_ucl"`
	MRLCL    float64 `json:"mr_lcl"`

	// MovingRanges[i] belongs to observation i+1.
	MovingRanges []float64 `json:"moving_ranges"`

	Points        int  `json:"points"`
	LCLClamped    bool `json:"lcl_clamped"`
	LowConfidence bool `json:"low_confidence"`
}

// -----------------------------------------------------------------------------

// MChartPoint is one plotted observation. MovingRange is nil for the first point.
type MChartPoint struct {
	Date        time.Time `json:"date"`
	Value       float64   `json:"value"`
	MovingRange *float64  `json:"moving_range"`
}

// -----------------------------------------------------------------------------

// Signal rules.
const (
	SignalAboveUCL   = "above_ucl"
	SignalBelowLCL   = "below_lcl"
	SignalMRAboveUCL = "mr_above_ucl"
)

// MSignal marks a point that falls outside its control limits.
type MSignal struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
	Rule  string    `json:"rule"`
	Limit float64   `json:"limit"`
}
