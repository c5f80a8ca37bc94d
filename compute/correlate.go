package compute

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Correlation is the result of comparing two aligned value series.
type Correlation struct {
	// Raw is the Pearson correlation of the series as given.
	Raw float64
	// Absolute is the Pearson correlation of their element-wise absolute
	// values. It is a first-class result, not derivable from Raw.
	Absolute float64
}

// Correlate computes the Pearson correlation between a and b, and between
// |a| and |b|. Both series must hold at least two paired values, and neither
// series, nor its absolute-value transform, may be constant.
func Correlate(a, b []float64) (result Correlation, err error) {
	if len(a) != len(b) || len(a) < 2 {
		return Correlation{}, &InsufficientDataError{LenA: len(a), LenB: len(b)}
	}

	absA := make([]float64, len(a))
	absB := make([]float64, len(b))
	for i := range a {
		absA[i] = math.Abs(a[i])
		absB[i] = math.Abs(b[i])
	}

	for _, series := range []struct {
		name   string
		values []float64
	}{
		{name: "a", values: a},
		{name: "b", values: b},
		{name: "|a|", values: absA},
		{name: "|b|", values: absB},
	} {
		if isConstant(series.values) {
			return Correlation{}, &ZeroVarianceError{Series: series.name}
		}
	}

	return Correlation{
		Raw:      stat.Correlation(a, b, nil),
		Absolute: stat.Correlation(absA, absB, nil),
	}, nil
}

func isConstant(values []float64) bool {
	for _, value := range values[1:] {
		if value != values[0] {
			return false
		}
	}
	return true
}
