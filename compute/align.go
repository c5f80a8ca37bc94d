package compute

import "sort"

// Triple is one long-format reference entry: an unordered construct pair and
// its observed correlation.
type Triple struct {
	ConstructA string
	ConstructB string
	Value      float64
}

type unorderedPair struct {
	a, b string
}

func newUnorderedPair(a, b string) unorderedPair {
	if a > b {
		return unorderedPair{a: b, b: a}
	}
	return unorderedPair{a: a, b: b}
}

// AlignReference builds a square reference matrix from long-format triples
// and restricts both it and the similarity matrix to the sorted intersection
// of their label sets, reordered identically on both axes. Labels present on
// one side only are dropped, not an error; they are returned sorted so the
// caller can surface them. Alignment is idempotent: repeated calls on the
// same inputs produce identical axis orders.
//
// The reference diagonal is set to 1 by convention (self-correlation), unless
// the triples supply an explicit self-pair value. Downstream extraction
// discards the diagonal either way.
func AlignReference(sim *Matrix, triples []Triple) (simAligned, refAligned *Matrix, dropped []string, err error) {
	values := make(map[unorderedPair]float64, len(triples))
	refLabels := make(map[string]struct{}, len(triples))
	for _, triple := range triples {
		key := newUnorderedPair(triple.ConstructA, triple.ConstructB)
		if existing, ok := values[key]; ok && existing != triple.Value {
			return nil, nil, nil, &DuplicatePairError{LabelA: key.a, LabelB: key.b, First: existing, Second: triple.Value}
		}
		values[key] = triple.Value
		refLabels[triple.ConstructA] = struct{}{}
		refLabels[triple.ConstructB] = struct{}{}
	}

	simIndex := make(map[string]int, len(sim.Labels))
	for i, label := range sim.Labels {
		simIndex[label] = i
	}

	shared := make([]string, 0, len(sim.Labels))
	for _, label := range sim.Labels {
		if _, ok := refLabels[label]; ok {
			shared = append(shared, label)
		} else {
			dropped = append(dropped, label)
		}
	}
	sort.Strings(shared)
	for label := range refLabels {
		if _, ok := simIndex[label]; !ok {
			dropped = append(dropped, label)
		}
	}
	sort.Strings(dropped)

	simAligned = NewMatrix(shared)
	refAligned = NewMatrix(shared)
	for i, labelA := range shared {
		simAligned.Set(i, i, sim.At(simIndex[labelA], simIndex[labelA]))
		diagonal := 1.0
		if value, ok := values[unorderedPair{a: labelA, b: labelA}]; ok {
			diagonal = value
		}
		refAligned.Set(i, i, diagonal)

		for j := i + 1; j < len(shared); j++ {
			labelB := shared[j]
			similarity := sim.At(simIndex[labelA], simIndex[labelB])
			simAligned.Set(i, j, similarity)
			simAligned.Set(j, i, similarity)

			// shared is sorted, so (labelA, labelB) is already unordered-normal.
			reference, ok := values[unorderedPair{a: labelA, b: labelB}]
			if !ok {
				return nil, nil, nil, &MissingPairError{LabelA: labelA, LabelB: labelB}
			}
			refAligned.Set(i, j, reference)
			refAligned.Set(j, i, reference)
		}
	}
	return simAligned, refAligned, dropped, nil
}
