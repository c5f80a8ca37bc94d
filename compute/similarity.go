package compute

import "sort"

// BuildSimilarityMatrix computes the pairwise cosine similarity
// cos(u,v) = (u·v)/(||u||*||v||) across all construct vectors, including
// self-pairs. Axis labels are ordered lexicographically. Each unordered pair
// is computed once and the identical value written to both cells, so the
// result is exactly symmetric, not merely symmetric within tolerance.
func BuildSimilarityMatrix(vectors map[string][]float64) (matrix *Matrix, err error) {
	labels := make([]string, 0, len(vectors))
	for label := range vectors {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	matrix = NewMatrix(labels)
	n := len(labels)
	if n == 0 {
		return matrix, nil
	}

	dim := len(vectors[labels[0]])
	for _, label := range labels {
		if len(vectors[label]) != dim {
			return nil, &DimensionMismatchError{Label: label, Want: dim, Got: len(vectors[label])}
		}
	}

	// Zero-norm vectors are rejected up front so no kernel ever divides by
	// zero or emits NaN.
	data := make([]float64, 0, n*dim)
	for _, label := range labels {
		vector := vectors[label]
		var norm float64
		for _, value := range vector {
			norm += value * value
		}
		if norm == 0 {
			return nil, &DegenerateVectorError{Label: label}
		}
		data = append(data, vector...)
	}

	gram := cosineGram(data, n, dim)
	for i := 0; i < n; i++ {
		matrix.Set(i, i, gram[i*n+i])
		for j := i + 1; j < n; j++ {
			value := gram[i*n+j]
			matrix.Set(i, j, value)
			matrix.Set(j, i, value)
		}
	}
	return matrix, nil
}
