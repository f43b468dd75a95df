package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// LoadCSV loads a CSV file using the same column naming convention as the
// XLSX loader. The first record is the header row.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadCSVReader(f)
}

// LoadCSVReader loads CSV data from r.
func LoadCSVReader(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read csv: %w", err)
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
