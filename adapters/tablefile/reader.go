// Package tablefile reads and writes tabular dataset files. CSV is the
// pipeline's native format; xlsx is accepted on the read side for
// splits exported from spreadsheets.
package tablefile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"driftgate/domain/table"
	"driftgate/internal/errors"
)

// Reader reads a table from a CSV or Excel file, dispatching on the
// file extension.
type Reader struct{}

// NewReader creates a table file reader
func NewReader() *Reader {
	return &Reader{}
}

// Read loads the file at path into a Table. The first row is always
// treated as the header.
func (r *Reader) Read(path string) (*table.Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.TableRead("read_table", path, err)
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readExcelRows(path)
	default:
		rows, err = readCSVRows(path)
	}
	if err != nil {
		return nil, errors.TableRead("read_table", path, err)
	}

	if len(rows) == 0 {
		return nil, errors.TableRead("read_table", path, fmt.Errorf("file has no header row"))
	}

	t, err := table.New(rows[0], rows[1:])
	if err != nil {
		return nil, errors.TableRead("read_table", path, err)
	}
	return t, nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return csv.NewReader(file).ReadAll()
}

func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// excelize trims trailing empty cells; pad rows back to header width
	width := len(rows[0])
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}
	return rows, nil
}
