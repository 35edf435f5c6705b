package core

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness-spc/src/helpers"
)

func TestComputeCapabilityWorkedExample(t *testing.T) {
	res, err := ComputeCapability([]float64{100, 102, 101, 105, 103}, 95, 110)
	require.NoError(t, err)
	require.NotNil(t, res)

	// sample standard deviation: sqrt(14.8 / 4)
	assert.InDelta(t, math.Sqrt(3.7), res.Sigma, 1e-12)
	assert.InDelta(t, 102.2, res.Mean, 1e-9)
	assert.InDelta(t, 1.30, res.Cp, 1e-9)
	assert.InDelta(t, 1.35, res.Cpu, 1e-9)
	assert.InDelta(t, 1.25, res.Cpl, 1e-9)
	assert.InDelta(t, 1.25, res.Cpk, 1e-9)
	assert.Equal(t, 5, res.Points)
}

func TestComputeCapabilityInsufficientData(t *testing.T) {
	res, err := ComputeCapability([]float64{150, 151, 149, 150}, 140, 160)
	assert.NoError(t, err)
	assert.Nil(t, res)
}

func TestComputeCapabilityZeroVariance(t *testing.T) {
	res, err := ComputeCapability([]float64{150, 150, 150, 150, 150}, 140, 160)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, 0.0, res.Cp)
	assert.Equal(t, 0.0, res.Cpk)
	assert.Equal(t, 0.0, res.Sigma)
	assert.Equal(t, 150.0, res.Mean)
}

func TestComputeCapabilityRejectsBadLimits(t *testing.T) {
	cases := []struct {
		name     string
		lsl, usl float64
	}{
		{"equal", 150, 150},
		{"inverted", 160, 140},
		{"nan", math.NaN(), 160},
		{"inf", 140, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Limits are checked before the length rule.
			res, err := ComputeCapability([]float64{1}, tc.lsl, tc.usl)
			assert.Nil(t, res)
			require.Error(t, err)
			assert.True(t, errors.Is(err, helpers.ErrInvalidSpecLimits))
			assert.True(t, helpers.IsValidation(err))
		})
	}
}

func TestComputeCapabilityOffCenterProcess(t *testing.T) {
	values := []float64{158, 159, 157, 158, 160, 159}
	res, err := ComputeCapability(values, 140, 160)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Less(t, res.Cpk, res.Cp)
	assert.Equal(t, res.Cpu, res.Cpk)
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 1.35, RoundTo(1.345000001, 2))
	assert.Equal(t, -1.24, RoundTo(-1.2449, 2))
	assert.Equal(t, 2.0, RoundTo(1.999, 2))
}
