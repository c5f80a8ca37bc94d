package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_OneMeanPerLabel(t *testing.T) {
	items := []LabeledVector{
		{Label: "A", Vector: []float64{1, 0}},
		{Label: "A", Vector: []float64{1, 0}},
		{Label: "B", Vector: []float64{0, 1}},
	}

	vectors, err := Aggregate(items)
	require.NoError(t, err)

	require.Len(t, vectors, 2)
	assert.Equal(t, []float64{1, 0}, vectors["A"])
	assert.Equal(t, []float64{0, 1}, vectors["B"])
}

func TestAggregate_MeanIsPerDimension(t *testing.T) {
	items := []LabeledVector{
		{Label: "Extraversion", Vector: []float64{2, 4, 6}},
		{Label: "Extraversion", Vector: []float64{4, 8, 10}},
	}

	vectors, err := Aggregate(items)
	require.NoError(t, err)

	require.Len(t, vectors["Extraversion"], 3)
	assert.Equal(t, []float64{3, 6, 8}, vectors["Extraversion"])
}

func TestAggregate_OrderIndependent(t *testing.T) {
	forward := []LabeledVector{
		{Label: "A", Vector: []float64{0.25, -1.5}},
		{Label: "B", Vector: []float64{3, 0.125}},
		{Label: "A", Vector: []float64{0.75, 2.5}},
	}
	reversed := []LabeledVector{forward[2], forward[1], forward[0]}

	first, err := Aggregate(forward)
	require.NoError(t, err)
	second, err := Aggregate(reversed)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregate_DimensionMismatch(t *testing.T) {
	items := []LabeledVector{
		{Label: "A", Vector: []float64{1, 0}},
		{Label: "B", Vector: []float64{1, 0, 0}},
	}

	_, err := Aggregate(items)
	var mismatch *DimensionMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "B", mismatch.Label)
	assert.Equal(t, 2, mismatch.Want)
	assert.Equal(t, 3, mismatch.Got)
}

func TestAggregate_Empty(t *testing.T) {
	vectors, err := Aggregate(nil)
	require.NoError(t, err)
	assert.Empty(t, vectors)
}
