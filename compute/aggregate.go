package compute

// LabeledVector pairs one construct label with one item embedding.
type LabeledVector struct {
	Label  string
	Vector []float64
}

// Aggregate partitions item embeddings by construct label and returns the
// per-dimension arithmetic mean of each partition. Every embedding must have
// the same width. The mean is order-independent, so the result is identical
// regardless of input order.
func Aggregate(items []LabeledVector) (vectors map[string][]float64, err error) {
	vectors = make(map[string][]float64)
	if len(items) == 0 {
		return vectors, nil
	}
	dim := len(items[0].Vector)
	counts := make(map[string]int)
	for _, item := range items {
		if len(item.Vector) != dim {
			return nil, &DimensionMismatchError{Label: item.Label, Want: dim, Got: len(item.Vector)}
		}
		sum, ok := vectors[item.Label]
		if !ok {
			sum = make([]float64, dim)
			vectors[item.Label] = sum
		}
		for i, value := range item.Vector {
			sum[i] += value
		}
		counts[item.Label]++
	}
	for label, sum := range vectors {
		count := float64(counts[label])
		for i := range sum {
			sum[i] /= count
		}
	}
	return vectors, nil
}
