package compute

import "fmt"

// DimensionMismatchError reports a vector whose width differs from the rest
// of its batch. Every error in this package is fatal to the run: the pipeline
// aborts rather than produce a partial or silently corrupted result.
type DimensionMismatchError struct {
	Label string
	Want  int
	Got   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("construct %q: embedding has %d dimensions, want %d", e.Label, e.Got, e.Want)
}

// DegenerateVectorError reports a construct vector with zero norm, for which
// cosine similarity is undefined.
type DegenerateVectorError struct {
	Label string
}

func (e *DegenerateVectorError) Error() string {
	return fmt.Sprintf("construct %q: vector has zero norm, cosine similarity is undefined", e.Label)
}

// DuplicatePairError reports an unordered construct pair that appears more
// than once in the reference triples with conflicting values.
type DuplicatePairError struct {
	LabelA string
	LabelB string
	First  float64
	Second float64
}

func (e *DuplicatePairError) Error() string {
	return fmt.Sprintf("reference pair (%q, %q): conflicting values %v and %v", e.LabelA, e.LabelB, e.First, e.Second)
}

// MissingPairError reports an unordered construct pair that both matrices
// share on their axes but for which no reference value was supplied. The cell
// would otherwise be undefined.
type MissingPairError struct {
	LabelA string
	LabelB string
}

func (e *MissingPairError) Error() string {
	return fmt.Sprintf("reference pair (%q, %q): no correlation supplied", e.LabelA, e.LabelB)
}

// ShapeMismatchError reports two matrices that differ in size or label order
// where identical shape is required.
type ShapeMismatchError struct {
	DimA  int
	DimB  int
	Label string
}

func (e *ShapeMismatchError) Error() string {
	if e.DimA != e.DimB {
		return fmt.Sprintf("matrix sizes differ: %dx%d and %dx%d", e.DimA, e.DimA, e.DimB, e.DimB)
	}
	return fmt.Sprintf("matrix label order differs at %q", e.Label)
}

// InsufficientDataError reports value series too short, or of unequal length,
// for a correlation to be defined.
type InsufficientDataError struct {
	LenA int
	LenB int
}

func (e *InsufficientDataError) Error() string {
	if e.LenA != e.LenB {
		return fmt.Sprintf("correlation requires equal-length series, got %d and %d", e.LenA, e.LenB)
	}
	return fmt.Sprintf("correlation requires at least 2 paired values, got %d", e.LenA)
}

// ZeroVarianceError reports a constant value series, for which Pearson
// correlation is undefined. Series names the offending input: "a" or "b" for
// the series as given, "|a|" or "|b|" for its absolute-value transform.
type ZeroVarianceError struct {
	Series string
}

func (e *ZeroVarianceError) Error() string {
	return fmt.Sprintf("series %s is constant, correlation is undefined", e.Series)
}
