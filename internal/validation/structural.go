package validation

import (
	"driftgate/domain/schema"
	"driftgate/domain/table"
)

// CountColumnsMatch reports whether the table's column count equals the
// schema's. It checks neither names nor types: it is intentionally
// permissive and catches gross truncation or duplication only.
func CountColumnsMatch(s *schema.Schema, t *table.Table) bool {
	return t.ColumnCount() == s.ColumnCount()
}

// RequiredColumnsPresent reports whether every schema-declared column
// name is present in the table, in any order. Extra undeclared table
// columns do not fail the check. On failure the exact set of missing
// names is returned for diagnostics.
func RequiredColumnsPresent(s *schema.Schema, t *table.Table) (bool, []string) {
	var missing []string
	for _, name := range s.ColumnNames() {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return len(missing) == 0, missing
}
