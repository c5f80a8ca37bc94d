package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// readTable parses a CSV file (TSV when the extension is .tsv) into a cleaned
// header row and its data rows. Every row must carry the same number of
// fields as the header.
func readTable(path string) (rows [][]string, header []string, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Join(errors.New("open input file"), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		reader.Comma = '\t'
	}
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Join(fmt.Errorf("read %s", filepath.Base(path)), err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s is empty", filepath.Base(path))
	}

	header = make([]string, len(records[0]))
	for i, cell := range records[0] {
		header[i] = cleanCell(cell)
	}
	return records[1:], header, nil
}

// resolveColumn finds the index of a named column. An empty selector falls
// back to the default name. Selectors match the header case-insensitively, or
// give a 1-based position as "#N" for files whose headers do not carry the
// expected name.
func resolveColumn(header []string, selector, fallback string) (int, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		selector = fallback
	}
	for i, name := range header {
		if strings.EqualFold(name, selector) {
			return i, nil
		}
	}
	if strings.HasPrefix(selector, "#") {
		idx, err := strconv.Atoi(strings.TrimPrefix(selector, "#"))
		if err != nil || idx <= 0 {
			return -1, fmt.Errorf("invalid column index %q", selector)
		}
		if idx > len(header) {
			return -1, fmt.Errorf("column index %q is out of range", selector)
		}
		return idx - 1, nil
	}
	return -1, fmt.Errorf("column %q not found, file has columns %s", selector, strings.Join(header, ", "))
}

func cleanCell(value string) string {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "\ufeff")
	return value
}
