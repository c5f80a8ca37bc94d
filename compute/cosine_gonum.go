//go:build gonum
// +build gonum

package compute

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// cosineGram computes the cosine similarity between every pair of rows of
// data (row-major, rows x dim), returning a rows x rows matrix as
// C = A * Aᵗ over the normalized rows. Rows are normalized in place.
func cosineGram(data []float64, rows, dim int) []float64 {
	impl := blas64.Implementation()

	// Normalize rows of A in-place
	normalizeMatrixRows(data, rows, dim)

	// Compute C = A * Aᵗ using raw Dgemm
	gram := make([]float64, rows*rows)
	impl.Dgemm(
		blas.NoTrans, blas.Trans,
		rows, // rows of A
		rows, // cols of Aᵗ (rows of A)
		dim,  // shared dimension
		1.0, data, dim,
		data, dim,
		0.0, gram, rows,
	)
	return gram
}

// normalizeMatrixRows normalizes each row vector by dividing each element by its L2 norm.
func normalizeMatrixRows(data []float64, rows, cols int) {
	impl := blas64.Implementation()
	for i := 0; i < rows; i++ {
		offset := i * cols
		row := data[offset : offset+cols]

		norm := impl.Dnrm2(cols, row, 1)
		if norm != 0 {
			impl.Dscal(cols, 1/norm, row, 1)
		}
	}
}
