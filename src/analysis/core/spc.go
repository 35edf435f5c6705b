package core

import (
	"math"
	"sort"

	"fitness-spc/src/models"
)

// Individuals and moving-range chart constants for subgroups of two
// (E2 = 3/d2 with d2 = 1.128, D4 = 3.267).
const (
	IMRConstantE2 = 2.66
	IMRConstantD4 = 3.267
)

// Minimum series lengths.
const (
	MinIMRPoints        = 2
	MinCapabilityPoints = 5
)

// -----------------------------------------------------------------------------

// IMROptions configures limit computation for one metric.
type IMROptions struct {
	// ClampLCL floors the individuals lower limit at zero.
	ClampLCL bool
}

// -----------------------------------------------------------------------------

// SortByDate returns a copy of obs ordered ascending by date. The input is
// left untouched.
func SortByDate(obs []models.MObservation) []models.MObservation {
	sorted := make([]models.MObservation, len(obs))
	copy(sorted, obs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// -----------------------------------------------------------------------------

// MovingRanges returns |v[i]-v[i-1]| for i = 1..n-1. Element k of the result
// belongs to position k+1; position 0 has no moving range.
func MovingRanges(values []float64) []float64 {
	if len(values) < 2 {
		return []float64{}
	}
	mr := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		mr[i-1] = math.Abs(values[i] - values[i-1])
	}
	return mr
}

// -----------------------------------------------------------------------------

// ComputeIMR computes individuals and moving-range chart limits.
// Observations are sorted by date first, so any permutation of the same
// observations yields the same limits. Returns nil for fewer than two points.
func ComputeIMR(obs []models.MObservation, opts IMROptions) *models.MControlLimitSet {
	if len(obs) < MinIMRPoints {
		return nil
	}

	sorted := SortByDate(obs)
	values := make([]float64, len(sorted))
	for i, o := range sorted {
		values[i] = o.Value
	}

	mr := MovingRanges(values)
	center := CalculateMean(values)
	mrBar := CalculateMean(mr)

	ucl := center + IMRConstantE2*mrBar
	lcl := center - IMRConstantE2*mrBar
	clamped := false
	if opts.ClampLCL && lcl < 0 {
		lcl = 0
		clamped = true
	}

	return &models.MControlLimitSet{
		Center:        center,
		UCL:           ucl,
		LCL:           lcl,
		MRCenter:      mrBar,
		MRUCL:         IMRConstantD4 * mrBar,
		MRLCL:         0,
		MovingRanges:  mr,
		Points:        len(values),
		LCLClamped:    clamped,
		LowConfidence: len(values) == MinIMRPoints,
	}
}

// -----------------------------------------------------------------------------

// ChartPoints pairs each observation, in date order, with its moving range.
func ChartPoints(obs []models.MObservation) []models.MChartPoint {
	sorted := SortByDate(obs)
	points := make([]models.MChartPoint, len(sorted))
	for i, o := range sorted {
		points[i] = models.MChartPoint{Date: o.Date, Value: o.Value}
		if i > 0 {
			mr := math.Abs(o.Value - sorted[i-1].Value)
			points[i].MovingRange = &mr
		}
	}
	return points
}

// -----------------------------------------------------------------------------

// DetectSignals lists points beyond the individuals limits and moving ranges
// beyond the moving-range upper limit, in date order.
func DetectSignals(obs []models.MObservation, limits *models.MControlLimitSet) []models.MSignal {
	signals := []models.MSignal{}
	if limits == nil {
		return signals
	}

	sorted := SortByDate(obs)
	for i, o := range sorted {
		switch {
		case o.Value > limits.UCL:
			signals = append(signals, models.MSignal{Date: o.Date, Value: o.Value, Rule: models.SignalAboveUCL, Limit: limits.UCL})
		case o.Value < limits.LCL:
			signals = append(signals, models.MSignal{Date: o.Date, Value: o.Value, Rule: models.SignalBelowLCL, Limit: limits.LCL})
		}
		if i == 0 {
			continue
		}
		if mr := math.Abs(o.Value - sorted[i-1].Value); mr > limits.MRUCL {
			signals = append(signals, models.MSignal{Date: o.Date, Value: mr, Rule: models.SignalMRAboveUCL, Limit: limits.MRUCL})
		}
	}
	return signals
}
