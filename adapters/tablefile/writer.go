package tablefile

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"driftgate/domain/table"
	"driftgate/internal/errors"
)

// Writer persists a table as a comma-separated file with a header row.
// Writes use create-or-truncate semantics; re-running a validation with
// unchanged inputs overwrites the prior output byte for byte.
type Writer struct{}

// NewWriter creates a table file writer
func NewWriter() *Writer {
	return &Writer{}
}

// Write stores the table at path, creating parent directories as needed
func (w *Writer) Write(t *table.Table, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.OutputWrite("write_table", path, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.OutputWrite("write_table", path, err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write(t.Header()); err != nil {
		return errors.OutputWrite("write_table", path, err)
	}
	for _, record := range t.Records() {
		if err := cw.Write(record); err != nil {
			return errors.OutputWrite("write_table", path, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.OutputWrite("write_table", path, err)
	}
	return nil
}
