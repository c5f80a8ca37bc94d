package compute

// UpperTriangle returns the strictly-upper-triangular entries of m in
// row-major order: (0,1), (0,2), ..., (n-2,n-1). The diagonal is excluded,
// so the result holds n*(n-1)/2 values, zero for n <= 1.
func UpperTriangle(m *Matrix) []float64 {
	n := m.Dim()
	flat := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			flat = append(flat, m.At(i, j))
		}
	}
	return flat
}

// UpperTriangles flattens two aligned matrices in the identical traversal
// order, so position k in both outputs refers to the same (i, j) label pair.
// The matrices must agree in size and label order.
func UpperTriangles(a, b *Matrix) (av, bv []float64, err error) {
	if a.Dim() != b.Dim() {
		return nil, nil, &ShapeMismatchError{DimA: a.Dim(), DimB: b.Dim()}
	}
	for i, label := range a.Labels {
		if b.Labels[i] != label {
			return nil, nil, &ShapeMismatchError{DimA: a.Dim(), DimB: b.Dim(), Label: label}
		}
	}
	return UpperTriangle(a), UpperTriangle(b), nil
}
