package core

import (
	"math"

	"fitness-spc/src/helpers"
	"fitness-spc/src/models"
)

// -----------------------------------------------------------------------------

// ValidateSpecLimits rejects limits that do not describe a non-empty interval.
func ValidateSpecLimits(lsl, usl float64) error {
	if math.IsNaN(lsl) || math.IsNaN(usl) || math.IsInf(lsl, 0) || math.IsInf(usl, 0) {
		return helpers.NewValidationError(helpers.ErrInvalidSpecLimits, "specification limits must be finite (lsl=%v, usl=%v)", lsl, usl)
	}
	if lsl >= usl {
		return helpers.NewValidationError(helpers.ErrInvalidSpecLimits, "lsl %v must be below usl %v", lsl, usl)
	}
	return nil
}

// -----------------------------------------------------------------------------

// ComputeCapability computes Cp and Cpk for values against [lsl, usl].
//
// Invalid limits are an error. Fewer than MinCapabilityPoints values returns
// nil with no error: there is not enough data to estimate spread. A series
// with zero spread reports Cp = Cpk = 0.
func ComputeCapability(values []float64, lsl, usl float64) (*models.MCapabilityResult, error) {
	if err := ValidateSpecLimits(lsl, usl); err != nil {
		return nil, err
	}
	if len(values) < MinCapabilityPoints {
		return nil, nil
	}

	mean, sigma := CalculateMeanSampleStd(values)
	result := &models.MCapabilityResult{
		Mean:   mean,
		Sigma:  sigma,
		LSL:    lsl,
		USL:    usl,
		Points: len(values),
	}
	if sigma == 0 {
		return result, nil
	}

	cp := (usl - lsl) / (6 * sigma)
	cpu := (usl - mean) / (3 * sigma)
	cpl := (mean - lsl) / (3 * sigma)

	result.Cp = RoundTo(cp, 2)
	result.Cpu = RoundTo(cpu, 2)
	result.Cpl = RoundTo(cpl, 2)
	result.Cpk = RoundTo(math.Min(cpu, cpl), 2)
	return result, nil
}
