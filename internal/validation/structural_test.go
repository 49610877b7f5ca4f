package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driftgate/domain/schema"
	"driftgate/domain/table"
	"driftgate/internal/testkit"
)

func schemaOf(t *testing.T, names ...string) *schema.Schema {
	t.Helper()
	specs := make([]schema.ColumnSpec, len(names))
	for i, name := range names {
		specs[i] = schema.ColumnSpec{Name: name, Type: "float64"}
	}
	s, err := schema.New(specs)
	require.NoError(t, err)
	return s
}

func tableOf(t *testing.T, names ...string) *table.Table {
	t.Helper()
	columns := make([]table.Column, len(names))
	for i, name := range names {
		columns[i] = testkit.FloatColumn(name, 1, 2, 3)
	}
	tbl, err := testkit.TableOf(columns...)
	require.NoError(t, err)
	return tbl
}

func TestCountColumnsMatch(t *testing.T) {
	declared := schemaOf(t, "a", "b", "c")

	assert.True(t, CountColumnsMatch(declared, tableOf(t, "a", "b", "c")))

	// Count is all that matters: names are not checked here
	assert.True(t, CountColumnsMatch(declared, tableOf(t, "x", "y", "z")))

	assert.False(t, CountColumnsMatch(declared, tableOf(t, "a")))
	assert.False(t, CountColumnsMatch(declared, tableOf(t, "a", "b")))
	assert.False(t, CountColumnsMatch(declared, tableOf(t, "a", "b", "c", "d")))
}

func TestRequiredColumnsPresent(t *testing.T) {
	declared := schemaOf(t, "a", "b", "c")

	ok, missing := RequiredColumnsPresent(declared, tableOf(t, "a", "b", "c"))
	assert.True(t, ok)
	assert.Empty(t, missing)

	// Order is irrelevant
	ok, missing = RequiredColumnsPresent(declared, tableOf(t, "c", "a", "b"))
	assert.True(t, ok)
	assert.Empty(t, missing)

	// Extra undeclared columns do not fail the check
	ok, missing = RequiredColumnsPresent(declared, tableOf(t, "a", "b", "c", "extra"))
	assert.True(t, ok)
	assert.Empty(t, missing)

	// The missing set is the exact set difference
	ok, missing = RequiredColumnsPresent(declared, tableOf(t, "b", "extra"))
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "c"}, missing)

	ok, missing = RequiredColumnsPresent(declared, tableOf(t, "unrelated"))
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, missing)
}
