package compute

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSimilarityMatrix_OrthogonalConstructs(t *testing.T) {
	vectors := map[string][]float64{
		"A": {1, 0},
		"B": {0, 1},
	}

	matrix, err := BuildSimilarityMatrix(vectors)
	require.NoError(t, err)

	require.Equal(t, []string{"A", "B"}, matrix.Labels)
	assert.Equal(t, []float64{1, 0, 0, 1}, matrix.Data)
}

func TestBuildSimilarityMatrix_ExactSymmetry(t *testing.T) {
	vectors := map[string][]float64{
		"Agreeableness":     {0.3, -1.7, 2.9, 0.004},
		"Conscientiousness": {1.1, 0.2, -0.8, 1.3},
		"Extraversion":      {-0.6, 0.9, 0.35, -2.2},
		"Neuroticism":       {0.01, 2.4, -1.9, 0.7},
		"Openness":          {1.6, -0.3, 0.8, -0.5},
	}

	matrix, err := BuildSimilarityMatrix(vectors)
	require.NoError(t, err)
	require.Equal(t, 5, matrix.Dim())

	for i := 0; i < matrix.Dim(); i++ {
		assert.InDelta(t, 1.0, matrix.At(i, i), 1e-6)
		for j := 0; j < matrix.Dim(); j++ {
			// Bit-exact, not merely within tolerance.
			assert.Equal(t, matrix.At(i, j), matrix.At(j, i))
			assert.LessOrEqual(t, math.Abs(matrix.At(i, j)), 1.0+1e-9)
		}
	}
}

func TestBuildSimilarityMatrix_SortedAxes(t *testing.T) {
	vectors := map[string][]float64{
		"Openness":     {1, 2},
		"Extraversion": {2, 1},
		"Neuroticism":  {-1, 1},
	}

	first, err := BuildSimilarityMatrix(vectors)
	require.NoError(t, err)
	second, err := BuildSimilarityMatrix(vectors)
	require.NoError(t, err)

	assert.Equal(t, []string{"Extraversion", "Neuroticism", "Openness"}, first.Labels)
	assert.Equal(t, first.Labels, second.Labels)
	assert.Equal(t, first.Data, second.Data)
}

func TestBuildSimilarityMatrix_OppositeVectors(t *testing.T) {
	vectors := map[string][]float64{
		"A": {1, 1},
		"B": {-1, -1},
	}

	matrix, err := BuildSimilarityMatrix(vectors)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, matrix.At(0, 1), 1e-6)
}

func TestBuildSimilarityMatrix_DegenerateVector(t *testing.T) {
	vectors := map[string][]float64{
		"A": {1, 0},
		"B": {0, 0},
	}

	_, err := BuildSimilarityMatrix(vectors)
	var degenerate *DegenerateVectorError
	require.ErrorAs(t, err, &degenerate)
	assert.Equal(t, "B", degenerate.Label)
}

func TestBuildSimilarityMatrix_WidthMismatch(t *testing.T) {
	vectors := map[string][]float64{
		"A": {1, 0},
		"B": {1},
	}

	_, err := BuildSimilarityMatrix(vectors)
	var mismatch *DimensionMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "B", mismatch.Label)
}

func TestBuildSimilarityMatrix_Empty(t *testing.T) {
	matrix, err := BuildSimilarityMatrix(map[string][]float64{})
	require.NoError(t, err)
	assert.Zero(t, matrix.Dim())
	assert.Empty(t, matrix.Data)
}

func TestBuildSimilarityMatrix_SingleConstruct(t *testing.T) {
	matrix, err := BuildSimilarityMatrix(map[string][]float64{"A": {3, 4}})
	require.NoError(t, err)
	require.Equal(t, 1, matrix.Dim())
	assert.InDelta(t, 1.0, matrix.At(0, 0), 1e-6)
}
