package compute

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpperTriangle_TraversalOrder(t *testing.T) {
	m := NewMatrix([]string{"A", "B", "C"})
	for i := range m.Data {
		m.Data[i] = float64(i)
	}

	// Row-major over (i, j) with i < j: (0,1), (0,2), (1,2).
	assert.Equal(t, []float64{1, 2, 5}, UpperTriangle(m))
}

func TestUpperTriangle_Length(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 5, 12} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			labels := make([]string, n)
			for i := range labels {
				labels[i] = fmt.Sprintf("L%02d", i)
			}
			assert.Len(t, UpperTriangle(NewMatrix(labels)), n*(n-1)/2)
		})
	}
}

func TestUpperTriangle_IdentityFlattensToZeros(t *testing.T) {
	for _, n := range []int{2, 3, 6} {
		labels := make([]string, n)
		for i := range labels {
			labels[i] = fmt.Sprintf("L%02d", i)
		}
		identity := NewMatrix(labels)
		for i := 0; i < n; i++ {
			identity.Set(i, i, 1)
		}

		for _, value := range UpperTriangle(identity) {
			assert.Zero(t, value)
		}
	}
}

func TestUpperTriangles_ParallelSequences(t *testing.T) {
	a := NewMatrix([]string{"A", "B", "C"})
	b := NewMatrix([]string{"A", "B", "C"})
	a.Set(0, 1, 0.1)
	a.Set(0, 2, 0.2)
	a.Set(1, 2, 0.3)
	b.Set(0, 1, -0.1)
	b.Set(0, 2, -0.2)
	b.Set(1, 2, -0.3)

	av, bv, err := UpperTriangles(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, av)
	assert.Equal(t, []float64{-0.1, -0.2, -0.3}, bv)
}

func TestUpperTriangles_SizeMismatch(t *testing.T) {
	a := NewMatrix([]string{"A", "B"})
	b := NewMatrix([]string{"A", "B", "C"})

	_, _, err := UpperTriangles(a, b)
	var mismatch *ShapeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 2, mismatch.DimA)
	assert.Equal(t, 3, mismatch.DimB)
}

func TestUpperTriangles_LabelOrderMismatch(t *testing.T) {
	a := NewMatrix([]string{"A", "B"})
	b := NewMatrix([]string{"B", "A"})

	_, _, err := UpperTriangles(a, b)
	var mismatch *ShapeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "A", mismatch.Label)
}
