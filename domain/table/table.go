// Package table holds the in-memory representation of a tabular
// dataset split: ordered named columns of string cells with a shared
// row count. Tables are read-only inputs to the validation engine;
// the only write is an unmodified pass-through to the valid output
// location.
package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"driftgate/domain/core"
)

// Column is one named column and its cells in row order
type Column struct {
	Name  string
	Cells []string
}

// Table represents dense tabular data as read from a train or test file
type Table struct {
	columns []Column
	rows    int
}

// New builds a Table from a header row and row-major records. Every
// record must have exactly as many fields as the header.
func New(header []string, records [][]string) (*Table, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("table has no header row")
	}

	seen := make(map[string]struct{}, len(header))
	columns := make([]Column, len(header))
	for i, name := range header {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("table header repeats column %q", name)
		}
		seen[name] = struct{}{}
		columns[i] = Column{Name: name, Cells: make([]string, 0, len(records))}
	}

	for r, record := range records {
		if len(record) != len(header) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", r+1, len(record), len(header))
		}
		for i, cell := range record {
			columns[i].Cells = append(columns[i].Cells, cell)
		}
	}

	return &Table{columns: columns, rows: len(records)}, nil
}

// ColumnCount returns the number of columns
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// RowCount returns the shared row count
func (t *Table) RowCount() int {
	return t.rows
}

// ColumnNames returns column names in table order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	return names
}

// HasColumn reports whether a named column exists
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.columns {
		if col.Name == name {
			return true
		}
	}
	return false
}

// Column returns the named column
func (t *Table) Column(name string) (Column, bool) {
	for _, col := range t.columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// NumericColumn extracts a column's cells as a float64 sample. Empty
// cells become NaN (a missing value); any other unparsable cell is an
// error naming the offending value. Interpretation of NaN is left to
// the statistical routine consuming the sample.
func (t *Table) NumericColumn(name string) ([]float64, error) {
	col, ok := t.Column(name)
	if !ok {
		return nil, fmt.Errorf("column %q not present in table", name)
	}

	values := make([]float64, len(col.Cells))
	for i, cell := range col.Cells {
		trimmed := strings.TrimSpace(cell)
		if trimmed == "" {
			values[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: cell %q is not numeric", name, i+1, cell)
		}
		values[i] = v
	}
	return values, nil
}

// Header returns the header row for write-through
func (t *Table) Header() []string {
	return t.ColumnNames()
}

// Records returns row-major records for write-through, in the exact
// cell content the table was read with.
func (t *Table) Records() [][]string {
	records := make([][]string, t.rows)
	for r := 0; r < t.rows; r++ {
		record := make([]string, len(t.columns))
		for i, col := range t.columns {
			record[i] = col.Cells[r]
		}
		records[r] = record
	}
	return records
}

// Fingerprint hashes the table content (header plus cells, in order)
// for replayability diagnostics.
func (t *Table) Fingerprint() core.Hash {
	var b strings.Builder
	for _, col := range t.columns {
		b.WriteString(col.Name)
		b.WriteByte(0x1f)
	}
	b.WriteByte(0x1e)
	for _, record := range t.Records() {
		for _, cell := range record {
			b.WriteString(cell)
			b.WriteByte(0x1f)
		}
		b.WriteByte(0x1e)
	}
	return core.NewHash([]byte(b.String()))
}
