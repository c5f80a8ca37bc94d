// Package dataset loads the two tabular inputs of a run: personality-test
// items and externally observed reference correlations. Both are validated
// eagerly so a malformed file fails at load, not deep inside the pipeline.
package dataset

import (
	"fmt"
	"path/filepath"
)

// Item is one personality-test item: the construct it measures and its text.
type Item struct {
	Construct string
	Text      string
}

// ItemColumns selects which input columns hold each item field. Empty fields
// fall back to the default header names.
type ItemColumns struct {
	Construct string
	Text      string
}

const (
	DefaultConstructColumn = "construct"
	DefaultTextColumn      = "text"
)

// LoadItems reads items from a CSV or TSV file. The file must carry a header
// row naming every required column; unknown columns are ignored. Rows with a
// blank construct or text are rejected with the row number.
func LoadItems(path string, columns ItemColumns) (items []Item, err error) {
	rows, header, err := readTable(path)
	if err != nil {
		return nil, err
	}
	constructIdx, err := resolveColumn(header, columns.Construct, DefaultConstructColumn)
	if err != nil {
		return nil, err
	}
	textIdx, err := resolveColumn(header, columns.Text, DefaultTextColumn)
	if err != nil {
		return nil, err
	}

	items = make([]Item, 0, len(rows))
	for i, row := range rows {
		item := Item{
			Construct: cleanCell(row[constructIdx]),
			Text:      cleanCell(row[textIdx]),
		}
		if item.Construct == "" {
			return nil, fmt.Errorf("row %d: empty construct", i+2)
		}
		if item.Text == "" {
			return nil, fmt.Errorf("row %d: empty text", i+2)
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no item rows in %s", filepath.Base(path))
	}
	return items, nil
}

// Texts returns the item texts in input order.
func Texts(items []Item) []string {
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Text
	}
	return texts
}
