package models

// Report statuses.
const (
	StatusOK               = "ok"
	StatusInsufficientData = "insufficient_data"
)

// -----------------------------------------------------------------------------

// MMetricReport is the I-MR view of a metric handed to renderers.
// Limits is nil when the series is too short to chart.
type MMetricReport struct {
	Metric  string            `json:"metric"`
	Status  string            `json:"status"`
	Points  []MChartPoint     `json:"points"`
	Limits  *MControlLimitSet `json:"limits"`
	Signals []MSignal         `json:"signals"`
}

// -----------------------------------------------------------------------------

// MCapabilityReport wraps a capability result. Capability is nil when
// there are too few points to estimate spread.
type MCapabilityReport struct {
	Metric     string             `json:"metric"`
	Status     string             `json:"status"`
	LSL        float64            `json:"lsl"`
	USL        float64            `json:"usl"`
	Points     int                `json:"points"`
	Capability *MCapabilityResult `json:"capability"`
}

// -----------------------------------------------------------------------------

// MEnergyBalanceReport is the joined intake/burn view.
// WeightCorrelation is the Pearson correlation of net calories and weight
// over dates present in both logs; nil when it cannot be computed.
type MEnergyBalanceReport struct {
	Basal             float64          `json:"basal"`
	Days              []MEnergyBalance `json:"days"`
	WeightCorrelation *float64         `json:"weight_correlation"`
}
