//go:build !gonum && !gorgonia
// +build !gonum,!gorgonia

package compute

import "math"

// cosineGram computes the cosine similarity between every pair of rows of
// data (row-major, rows x dim), returning a rows x rows matrix. Rows are
// normalized in place. Entries below the diagonal are left unfilled; the
// caller mirrors the upper triangle.
func cosineGram(data []float64, rows, dim int) []float64 {
	// Normalize each row in-place
	for i := 0; i < rows; i++ {
		start := i * dim
		end := start + dim
		normalizeVector(data[start:end])
	}

	gram := make([]float64, rows*rows)
	for i := 0; i < rows; i++ {
		rowI := data[i*dim : (i+1)*dim]
		for j := i; j < rows; j++ {
			rowJ := data[j*dim : (j+1)*dim]

			// Dot product between rows i and j
			var dot float64
			for k := 0; k < dim; k++ {
				dot += rowI[k] * rowJ[k]
			}

			gram[i*rows+j] = dot
		}
	}
	return gram
}

// normalizeVector normalizes a vector by dividing each element by its L2 norm.
func normalizeVector(vec []float64) {
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm != 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
}
