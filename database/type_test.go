package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorFieldRoundTrip(t *testing.T) {
	original := VectorField{-1.5, 0, 0.25, 2.0}

	stored, err := original.Value()
	require.NoError(t, err)
	raw, ok := stored.([]byte)
	require.True(t, ok)

	var restored VectorField
	require.NoError(t, restored.Scan(raw))
	require.Len(t, restored, len(original))

	// One byte per dimension bounds the round-trip error by the value range
	// split into 255 steps.
	step := (2.0 - (-1.5)) / 255.0
	for i, want := range original {
		assert.InDelta(t, want, restored[i], step+1e-6)
	}
}

func TestVectorFieldScanRejectsNonBytes(t *testing.T) {
	var field VectorField
	err := field.Scan("not bytes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal")
}

func TestVectorFieldScanRejectsCorruptData(t *testing.T) {
	var field VectorField
	err := field.Scan([]byte{0x01, 0x02, 0x03})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decompress")
}

func TestStringSliceRoundTrip(t *testing.T) {
	original := StringSlice{"Openness", "Honesty-Humility"}

	stored, err := original.Value()
	require.NoError(t, err)
	raw, ok := stored.([]byte)
	require.True(t, ok)

	var restored StringSlice
	require.NoError(t, restored.Scan(raw))
	assert.Equal(t, original, restored)
}

func TestStringSliceRoundTripEmpty(t *testing.T) {
	stored, err := StringSlice{}.Value()
	require.NoError(t, err)

	var restored StringSlice
	require.NoError(t, restored.Scan(stored.([]byte)))
	assert.Empty(t, restored)
}

func TestRunBeforeCreateStampsUTC(t *testing.T) {
	run := &Run{}
	require.NoError(t, run.BeforeCreate(nil))
	assert.Equal(t, time.UTC, run.CreatedAt.Location())
	assert.WithinDuration(t, time.Now().UTC(), run.CreatedAt, time.Minute)
}
