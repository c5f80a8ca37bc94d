package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantizeVector_RoundTripWithinStep(t *testing.T) {
	vector := []float64{-0.82, -0.1, 0, 0.33, 1.7, 0.33}

	restored := DequantizeVector[float64](QuantizeVector(vector))
	require.Len(t, restored, len(vector))

	min, max := rangeFloat(vector)
	step := (max - min) / 255
	for i := range vector {
		assert.InDelta(t, vector[i], restored[i], step+1e-6)
	}
}

func TestQuantizeVector_ConstantVector(t *testing.T) {
	restored := DequantizeVector[float64](QuantizeVector([]float64{0.7, 0.7, 0.7}))
	require.Len(t, restored, 3)
	for _, value := range restored {
		assert.InDelta(t, 0.7, value, 1e-6)
	}
}

func TestQuantizeVector_SingleElement(t *testing.T) {
	restored := DequantizeVector[float64](QuantizeVector([]float64{0.42}))
	require.Len(t, restored, 1)
	assert.InDelta(t, 0.42, restored[0], 1e-6)
}
