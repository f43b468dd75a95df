package dataset

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	cells := [][]any{
		{"Time - Temp", "Sensor 1 - Temp", "Notes"},
		{0.0, 20.5, "start"},
		{0.1, 20.7, nil},
		{0.2, 21.0, nil},
		{0.3, 21.4, nil},
	}
	for r, row := range cells {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName: %v", err)
			}
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatalf("SetCellValue: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return buf
}

func TestLoadXLSXReader(t *testing.T) {
	buf := writeTestWorkbook(t)

	ds, err := LoadXLSXReader(buf, "")
	if err != nil {
		t.Fatalf("LoadXLSXReader() error = %v", err)
	}

	names := ds.Names()
	if len(names) != 1 || names[0] != "Temp" {
		t.Fatalf("names = %v, want [Temp]", names)
	}

	s, err := ds.Get("Temp")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if s.Len() != 4 {
		t.Fatalf("len = %d, want 4", s.Len())
	}
	if s.Value[0] != 20.5 {
		t.Fatalf("Value[0] = %v, want 20.5", s.Value[0])
	}
}

func TestLoadXLSXReaderUnknownSheet(t *testing.T) {
	buf := writeTestWorkbook(t)
	if _, err := LoadXLSXReader(buf, "nope"); err == nil {
		t.Fatal("expected error for unknown sheet")
	}
}

func TestLoadXLSXReaderGarbage(t *testing.T) {
	if _, err := LoadXLSXReader(bytes.NewReader([]byte("not a workbook")), ""); err == nil {
		t.Fatal("expected error for unreadable file")
	}
}

func TestLoadXLSXReaderHeaderOnly(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetCellValue("Sheet1", "A1", "Time - Temp"); err != nil {
		t.Fatalf("SetCellValue: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	if _, err := LoadXLSXReader(buf, ""); !errors.Is(err, ErrEmptySheet) {
		t.Fatalf("err = %v, want ErrEmptySheet", err)
	}
}

func TestLoadXLSXFile(t *testing.T) {
	buf := writeTestWorkbook(t)
	path := filepath.Join(t.TempDir(), "signals.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	f.Close()

	ds, err := LoadXLSX(path)
	if err != nil {
		t.Fatalf("LoadXLSX() error = %v", err)
	}
	if len(ds.Names()) != 1 {
		t.Fatalf("names = %v", ds.Names())
	}
}
