package dataset

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"

	"github.com/expki/go-constructsim/compute"
)

// ReferenceColumns selects which input columns hold each field of a reference
// triple. Empty fields fall back to the default header names.
type ReferenceColumns struct {
	ConstructA  string
	ConstructB  string
	Correlation string
}

const (
	DefaultConstructAColumn  = "construct_1"
	DefaultConstructBColumn  = "construct_2"
	DefaultCorrelationColumn = "correlation"
)

// LoadReference reads observed inter-construct correlations from a CSV or TSV
// file as long-format triples, one unordered construct pair per row. Every
// correlation must parse as a finite number.
func LoadReference(path string, columns ReferenceColumns) (triples []compute.Triple, err error) {
	rows, header, err := readTable(path)
	if err != nil {
		return nil, err
	}
	aIdx, err := resolveColumn(header, columns.ConstructA, DefaultConstructAColumn)
	if err != nil {
		return nil, err
	}
	bIdx, err := resolveColumn(header, columns.ConstructB, DefaultConstructBColumn)
	if err != nil {
		return nil, err
	}
	valueIdx, err := resolveColumn(header, columns.Correlation, DefaultCorrelationColumn)
	if err != nil {
		return nil, err
	}

	triples = make([]compute.Triple, 0, len(rows))
	for i, row := range rows {
		triple := compute.Triple{
			ConstructA: cleanCell(row[aIdx]),
			ConstructB: cleanCell(row[bIdx]),
		}
		if triple.ConstructA == "" || triple.ConstructB == "" {
			return nil, fmt.Errorf("row %d: empty construct", i+2)
		}
		raw := cleanCell(row[valueIdx])
		triple.Value, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: correlation %q is not a number", i+2, raw)
		}
		if math.IsNaN(triple.Value) || math.IsInf(triple.Value, 0) {
			return nil, fmt.Errorf("row %d: correlation %q is not finite", i+2, raw)
		}
		triples = append(triples, triple)
	}
	if len(triples) == 0 {
		return nil, fmt.Errorf("no reference rows in %s", filepath.Base(path))
	}
	return triples, nil
}
