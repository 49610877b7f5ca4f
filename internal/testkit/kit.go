// Package testkit provides deterministic fixtures for validation
// tests: in-memory tables, seeded samples, and schema documents.
package testkit

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"driftgate/domain/schema"
	"driftgate/domain/table"
)

// TableOf builds a table from named columns of raw cells. All columns
// must share a length.
func TableOf(columns ...table.Column) (*table.Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("testkit table needs at least one column")
	}

	header := make([]string, len(columns))
	rows := len(columns[0].Cells)
	for i, col := range columns {
		if len(col.Cells) != rows {
			return nil, fmt.Errorf("column %q has %d cells, expected %d", col.Name, len(col.Cells), rows)
		}
		header[i] = col.Name
	}

	records := make([][]string, rows)
	for r := 0; r < rows; r++ {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = col.Cells[r]
		}
		records[r] = record
	}

	return table.New(header, records)
}

// FloatColumn formats float values as a table column
func FloatColumn(name string, values ...float64) table.Column {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return table.Column{Name: name, Cells: cells}
}

// NormalSample draws n values from N(mean, stddev) with a fixed seed,
// so repeated test runs see identical data.
func NormalSample(seed int64, n int, mean, stddev float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	sample := make([]float64, n)
	for i := range sample {
		sample[i] = mean + stddev*rng.NormFloat64()
	}
	return sample
}

// SchemaFor builds a schema declaring every column of the table as float64
func SchemaFor(t *table.Table) (*schema.Schema, error) {
	names := t.ColumnNames()
	specs := make([]schema.ColumnSpec, len(names))
	for i, name := range names {
		specs[i] = schema.ColumnSpec{Name: name, Type: "float64"}
	}
	return schema.New(specs)
}

// WriteSchemaDoc writes a minimal schema document declaring the given
// columns as float64, for orchestrator round trips.
func WriteSchemaDoc(path string, columnNames []string) error {
	doc := "columns:\n"
	for _, name := range columnNames {
		doc += "  " + name + ": float64\n"
	}
	return os.WriteFile(path, []byte(doc), 0o644)
}

// WriteCSVDoc writes raw CSV lines to a file, for reader tests
func WriteCSVDoc(path string, lines ...string) error {
	content := ""
	for _, line := range lines {
		content += line + "\n"
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
