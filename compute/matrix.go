package compute

// Matrix is a square matrix indexed by construct label on both axes, stored
// row-major. Row i and column i always refer to Labels[i].
type Matrix struct {
	Labels []string
	Data   []float64
}

// NewMatrix returns a zeroed square matrix over the given axis labels.
func NewMatrix(labels []string) *Matrix {
	return &Matrix{
		Labels: labels,
		Data:   make([]float64, len(labels)*len(labels)),
	}
}

// Dim returns the number of rows (and columns).
func (m *Matrix) Dim() int {
	return len(m.Labels)
}

// At returns the value at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.Data[i*len(m.Labels)+j]
}

// Set writes the value at row i, column j.
func (m *Matrix) Set(i, j int, value float64) {
	m.Data[i*len(m.Labels)+j] = value
}
