package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Dataset errors.
var (
	// ErrEmptyTable indicates a table without any usable rows or columns.
	ErrEmptyTable = errors.New("dataset: empty table")
	// ErrUnknownSignal indicates a signal name not present in the dataset.
	ErrUnknownSignal = errors.New("dataset: unknown signal")
	// ErrNoSignals indicates that no column matched the signal naming convention.
	ErrNoSignals = errors.New("dataset: no signals found")
)

// Table holds raw tabular data as strings, one record per row.
//
// Loaders drop fully-empty rows and columns before constructing a Table, so
// every header has at least one non-empty cell somewhere in the table.
type Table struct {
	Headers []string
	Records [][]string
}

// Rows returns the number of data records.
func (t *Table) Rows() int { return len(t.Records) }

// Cell returns the cell at (row, col), or "" when the record is ragged.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Records) || col < 0 || col >= len(t.Records[row]) {
		return ""
	}
	return t.Records[row][col]
}

// SignalRef identifies a discovered signal and its source columns.
// TimeColumn is empty for signals using the row index as time axis.
type SignalRef struct {
	Name        string
	TimeColumn  string
	ValueColumn string
}

// Series is an extracted signal: aligned numeric (time, value) pairs.
type Series struct {
	Name  string
	Time  []float64
	Value []float64
}

// Len returns the number of valid samples.
func (s Series) Len() int { return len(s.Value) }

// Dataset is a loaded table together with its discovered signals.
type Dataset struct {
	table Table
	refs  []SignalRef
}

// New discovers signals in the table and returns a Dataset.
// Returns ErrNoSignals when no column matches the naming convention.
func New(table Table) (*Dataset, error) {
	if len(table.Headers) == 0 || table.Rows() == 0 {
		return nil, ErrEmptyTable
	}

	refs := Discover(&table)
	if len(refs) == 0 {
		return nil, ErrNoSignals
	}

	return &Dataset{table: table, refs: refs}, nil
}

// Signals returns the discovered signal references in discovery order.
func (d *Dataset) Signals() []SignalRef {
	out := make([]SignalRef, len(d.refs))
	copy(out, d.refs)
	return out
}

// Names returns the discovered signal names in discovery order.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.refs))
	for i, r := range d.refs {
		out[i] = r.Name
	}
	return out
}

// Get extracts the signal with the given name.
func (d *Dataset) Get(name string) (Series, error) {
	for _, r := range d.refs {
		if r.Name == name {
			return Extract(&d.table, r)
		}
	}
	return Series{}, fmt.Errorf("%w: %q", ErrUnknownSignal, name)
}

// Discover groups table columns into signals.
//
// Every "Time - X" column is paired with the first other column whose header
// ends in " - X". Remaining "<prefix> - X" columns that were used neither as
// time nor as value column become index-timed signals. Duplicate names keep
// the first discovery.
func Discover(t *Table) []SignalRef {
	used := make(map[int]bool, len(t.Headers))
	seen := make(map[string]bool)

	var refs []SignalRef

	// Pass 1: time columns paired with a value column.
	for i, h := range t.Headers {
		name, ok := isTimeHeader(h)
		if !ok || seen[name] {
			continue
		}

		suffix := headerSeparator + name
		for j, cand := range t.Headers {
			if j == i || !strings.HasSuffix(cand, suffix) {
				continue
			}
			refs = append(refs, SignalRef{Name: name, TimeColumn: h, ValueColumn: cand})
			seen[name] = true
			used[i] = true
			used[j] = true
			break
		}
		// A time column without a value column is not a signal.
	}

	// Pass 2: unpaired value-pattern columns fall back to index time.
	for i, h := range t.Headers {
		if used[i] {
			continue
		}
		_, name, ok := ParseHeader(h)
		if !ok || seen[name] {
			continue
		}
		if _, isTime := isTimeHeader(h); isTime {
			continue
		}
		refs = append(refs, SignalRef{Name: name, ValueColumn: h})
		seen[name] = true
	}

	return refs
}

// Extract converts the referenced columns into an aligned numeric series.
//
// Rows where the time or value cell does not parse as a finite number are
// excluded. Index-timed signals number the surviving rows from zero.
func Extract(t *Table, ref SignalRef) (Series, error) {
	valueCol := columnIndex(t, ref.ValueColumn)
	if valueCol < 0 {
		return Series{}, fmt.Errorf("dataset: value column %q not in table", ref.ValueColumn)
	}

	timeCol := -1
	if ref.TimeColumn != "" {
		timeCol = columnIndex(t, ref.TimeColumn)
		if timeCol < 0 {
			return Series{}, fmt.Errorf("dataset: time column %q not in table", ref.TimeColumn)
		}
	}

	s := Series{Name: ref.Name}
	for row := 0; row < t.Rows(); row++ {
		v, ok := parseCell(t.Cell(row, valueCol))
		if !ok {
			continue
		}

		if timeCol < 0 {
			s.Time = append(s.Time, float64(len(s.Value)))
			s.Value = append(s.Value, v)
			continue
		}

		tv, ok := parseCell(t.Cell(row, timeCol))
		if !ok {
			continue
		}
		s.Time = append(s.Time, tv)
		s.Value = append(s.Value, v)
	}

	return s, nil
}

func columnIndex(t *Table, header string) int {
	for i, h := range t.Headers {
		if h == header {
			return i
		}
	}
	return -1
}

// parseCell coerces a cell to a finite float64.
func parseCell(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// dropEmpty removes fully-empty rows and columns, mirroring the behavior of
// spreadsheet loaders that trim surrounding blank regions.
func dropEmpty(headers []string, records [][]string) ([]string, [][]string) {
	cols := len(headers)
	for _, rec := range records {
		if len(rec) > cols {
			cols = len(rec)
		}
	}

	colUsed := make([]bool, cols)
	for i, h := range headers {
		if strings.TrimSpace(h) != "" {
			colUsed[i] = true
		}
	}

	var keptRecords [][]string
	for _, rec := range records {
		empty := true
		for i := 0; i < cols; i++ {
			var cell string
			if i < len(rec) {
				cell = rec[i]
			}
			if strings.TrimSpace(cell) != "" {
				empty = false
				colUsed[i] = true
			}
		}
		if !empty {
			keptRecords = append(keptRecords, rec)
		}
	}

	var keptCols []int
	for i, u := range colUsed {
		if u && i < len(headers) {
			keptCols = append(keptCols, i)
		}
	}

	outHeaders := make([]string, len(keptCols))
	for i, c := range keptCols {
		outHeaders[i] = headers[c]
	}

	outRecords := make([][]string, len(keptRecords))
	for r, rec := range keptRecords {
		row := make([]string, len(keptCols))
		for i, c := range keptCols {
			if c < len(rec) {
				row[i] = rec[c]
			}
		}
		outRecords[r] = row
	}

	return outHeaders, outRecords
}
