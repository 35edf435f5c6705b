package core

import "math"

// -----------------------------------------------------------------------------

// CalculateMean returns the arithmetic mean, summed in slice order.
// An empty slice has mean 0.
func CalculateMean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// -----------------------------------------------------------------------------

// CalculateMeanSampleStd computes mean and sample standard deviation (N-1 denominator).
func CalculateMeanSampleStd(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0, 0
	}

	mean := CalculateMean(data)

	// A single value has no spread estimate
	if len(data) == 1 {
		return mean, 0
	}

	varianceSum := 0.0
	for _, v := range data {
		varianceSum += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(varianceSum / float64(len(data)-1))
}

// -----------------------------------------------------------------------------

// CalculateCorrelation computes Pearson correlation coefficient.
// Returns false when the inputs differ in length, have fewer than two
// points, or either side has zero variance.
func CalculateCorrelation(x, y []float64) (float64, bool) {
	if len(x) != len(y) || len(x) < 2 {
		return 0, false
	}

	meanX := CalculateMean(x)
	meanY := CalculateMean(y)

	sumXY, sumX2, sumY2 := 0.0, 0.0, 0.0
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		sumXY += dx * dy
		sumX2 += dx * dx
		sumY2 += dy * dy
	}

	if sumX2 == 0 || sumY2 == 0 {
		return 0, false
	}

	result := sumXY / math.Sqrt(sumX2*sumY2)
	if math.IsNaN(result) {
		return 0, false
	}
	return result, true
}

// -----------------------------------------------------------------------------

// RoundTo rounds half away from zero to the given number of decimal places.
func RoundTo(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}
