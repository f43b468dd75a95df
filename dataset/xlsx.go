package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"
)

// ErrEmptySheet indicates a sheet without a header row or without data rows.
var ErrEmptySheet = errors.New("dataset: empty sheet")

// LoadXLSX loads the first sheet of an XLSX workbook from disk.
func LoadXLSX(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadXLSXReader(f, "")
}

// LoadXLSXSheet loads a named sheet of an XLSX workbook from disk.
func LoadXLSXSheet(path, sheet string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadXLSXReader(f, sheet)
}

// LoadXLSXReader loads an XLSX workbook from r. An empty sheet name selects
// the first sheet of the workbook.
func LoadXLSXReader(r io.Reader, sheet string) (*Dataset, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: read workbook: %w", err)
	}
	defer wb.Close()

	if sheet == "" {
		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptySheet
		}
		sheet = sheets[0]
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("dataset: read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}

	headers, records := dropEmpty(rows[0], rows[1:])
	if len(headers) == 0 || len(records) == 0 {
		return nil, ErrEmptySheet
	}

	return New(Table{Headers: headers, Records: records})
}
