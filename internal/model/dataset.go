// Package model defines the tabular dataset that flows through the preparation pipeline.
package model

import (
	"fmt"

	"github.com/Veraticus/reviewprep/internal/common"
)

// Dataset is an ordered collection of rows with named string columns.
// Datasets are treated as immutable: every transformation returns a new value.
type Dataset struct {
	index   map[string]int
	columns []string
	rows    [][]string
}

// NewDataset creates a dataset from a header and rows. Short rows are padded
// with empty cells; rows longer than the header are rejected.
func NewDataset(columns []string, rows [][]string) (*Dataset, error) {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", common.ErrInvalidConfig, name)
		}
		index[name] = i
	}

	out := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) > len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", common.ErrRaggedRow, i, len(row), len(columns))
		}
		cells := make([]string, len(columns))
		copy(cells, row)
		out[i] = cells
	}

	return &Dataset{
		columns: append([]string(nil), columns...),
		index:   index,
		rows:    out,
	}, nil
}

// Columns returns a copy of the column names in order.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// HasColumn reports whether the dataset has the named column.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// ColumnIndex returns the position of a column or ErrMissingColumn.
func (d *Dataset) ColumnIndex(name string) (int, error) {
	idx, ok := d.index[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q (available: %v)", common.ErrMissingColumn, name, d.columns)
	}
	return idx, nil
}

// Column returns a copy of every value of the named column.
func (d *Dataset) Column(name string) ([]string, error) {
	idx, err := d.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	values := make([]string, len(d.rows))
	for i, row := range d.rows {
		values[i] = row[idx]
	}
	return values, nil
}

// Value returns a single cell. It panics on an out-of-range row like a slice index would.
func (d *Dataset) Value(row, col int) string {
	return d.rows[row][col]
}

// Row returns a copy of the row at position i.
func (d *Dataset) Row(i int) []string {
	return append([]string(nil), d.rows[i]...)
}

// Subset returns a new dataset holding the rows at the given positions, in that order.
func (d *Dataset) Subset(indices []int) *Dataset {
	rows := make([][]string, len(indices))
	for i, idx := range indices {
		rows[i] = append([]string(nil), d.rows[idx]...)
	}
	return &Dataset{
		columns: append([]string(nil), d.columns...),
		index:   d.index,
		rows:    rows,
	}
}

// WithColumn returns a new dataset where the named column holds values.
// An existing column is replaced in place; a new one is appended.
func (d *Dataset) WithColumn(name string, values []string) (*Dataset, error) {
	if len(values) != len(d.rows) {
		return nil, fmt.Errorf("%w: column %q has %d values, dataset has %d rows",
			common.ErrRaggedRow, name, len(values), len(d.rows))
	}

	columns := append([]string(nil), d.columns...)
	idx, exists := d.index[name]
	if !exists {
		idx = len(columns)
		columns = append(columns, name)
	}

	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}

	rows := make([][]string, len(d.rows))
	for i, row := range d.rows {
		cells := make([]string, len(columns))
		copy(cells, row)
		cells[idx] = values[i]
		rows[i] = cells
	}

	return &Dataset{columns: columns, index: index, rows: rows}, nil
}

// LabelCounts counts rows per distinct value of the named column.
func (d *Dataset) LabelCounts(name string) (map[string]int, error) {
	idx, err := d.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, row := range d.rows {
		counts[row[idx]]++
	}
	return counts, nil
}
