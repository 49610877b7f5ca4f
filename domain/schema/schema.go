// Package schema defines the declared column schema a dataset pair must
// conform to before drift detection runs.
package schema

import (
	"fmt"
)

// ColumnSpec declares one expected column: its name and a type tag
// (e.g. "int64", "float64") as authored in the schema document.
type ColumnSpec struct {
	Name string
	Type string
}

// Schema is the ordered, immutable set of declared columns for one
// schema version. It is loaded once per validation run and never
// mutated afterwards.
type Schema struct {
	columns   []ColumnSpec
	types     map[string]string
	numerical []string
}

// New builds a Schema from ordered column specs. An empty spec list or
// a duplicated column name is rejected here so malformed schemas never
// reach structural validation.
func New(columns []ColumnSpec) (*Schema, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("schema declares no columns")
	}

	types := make(map[string]string, len(columns))
	for _, col := range columns {
		if col.Name == "" {
			return nil, fmt.Errorf("schema declares a column with an empty name")
		}
		if _, dup := types[col.Name]; dup {
			return nil, fmt.Errorf("schema declares column %q more than once", col.Name)
		}
		types[col.Name] = col.Type
	}

	return &Schema{
		columns: append([]ColumnSpec(nil), columns...),
		types:   types,
	}, nil
}

// SetNumericalColumns records the schema document's optional list of
// numerical column names, used for profiling diagnostics.
func (s *Schema) SetNumericalColumns(names []string) {
	s.numerical = append([]string(nil), names...)
}

// ColumnCount returns the number of declared columns
func (s *Schema) ColumnCount() int {
	return len(s.columns)
}

// Columns returns the declared columns in document order
func (s *Schema) Columns() []ColumnSpec {
	return append([]ColumnSpec(nil), s.columns...)
}

// ColumnNames returns the declared column names in document order
func (s *Schema) ColumnNames() []string {
	names := make([]string, len(s.columns))
	for i, col := range s.columns {
		names[i] = col.Name
	}
	return names
}

// Has reports whether a column name is declared
func (s *Schema) Has(name string) bool {
	_, ok := s.types[name]
	return ok
}

// TypeOf returns the declared type tag for a column name
func (s *Schema) TypeOf(name string) (string, bool) {
	t, ok := s.types[name]
	return t, ok
}

// NumericalColumns returns the declared numerical column names, if the
// schema document listed any.
func (s *Schema) NumericalColumns() []string {
	return append([]string(nil), s.numerical...)
}
