// Package sheet decodes spreadsheet containers into plain cell matrices.
//
// It is deliberately thin: the import engine knows nothing about workbook
// formats, so this package's whole job is turning xlsx bytes into the
// [][]string shape the engine's header inference consumes. Multi-sheet
// semantics are out of scope beyond picking one sheet to import.
package sheet

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrNoSheets indicates the workbook contains no usable sheet.
var ErrNoSheets = errors.New("workbook contains no sheets with data")

// ToMatrix decodes an xlsx workbook into the cell matrix of its first
// non-empty sheet. Cell values come back as display strings; type coercion
// is the engine's job, not this package's.
func ToMatrix(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		if hasData(rows) {
			return rows, nil
		}
	}
	return nil, ErrNoSheets
}

// hasData reports whether any cell in the matrix is non-empty.
func hasData(rows [][]string) bool {
	for _, row := range rows {
		for _, cell := range row {
			if cell != "" {
				return true
			}
		}
	}
	return false
}
