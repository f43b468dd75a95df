package dataset

import "testing"

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantPrefix string
		wantName   string
		wantOK     bool
	}{
		{name: "time column", header: "Time - Temperature", wantPrefix: "Time", wantName: "Temperature", wantOK: true},
		{name: "value column", header: "Sensor 4 - Temperature", wantPrefix: "Sensor 4", wantName: "Temperature", wantOK: true},
		{name: "name exact", header: "A - B", wantPrefix: "A", wantName: "B", wantOK: true},
		{name: "empty prefix", header: " - Pressure", wantPrefix: "", wantName: "Pressure", wantOK: true},
		{name: "separator twice", header: "Time - Flow - Inlet", wantPrefix: "Time", wantName: "Flow - Inlet", wantOK: true},
		{name: "no separator", header: "Temperature", wantOK: false},
		{name: "dash without spaces", header: "Time-Temperature", wantOK: false},
		{name: "empty name", header: "Time - ", wantOK: false},
		{name: "blank name", header: "Time -   ", wantOK: false},
		{name: "empty header", header: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, name, ok := ParseHeader(tt.header)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if prefix != tt.wantPrefix {
				t.Fatalf("prefix = %q, want %q", prefix, tt.wantPrefix)
			}
			if name != tt.wantName {
				t.Fatalf("name = %q, want %q", name, tt.wantName)
			}
		})
	}
}

func TestIsTimeHeader(t *testing.T) {
	if name, ok := isTimeHeader("Time - Torque"); !ok || name != "Torque" {
		t.Fatalf("isTimeHeader = %q, %v", name, ok)
	}
	if _, ok := isTimeHeader("Sensor - Torque"); ok {
		t.Fatal("value header accepted as time header")
	}
	if _, ok := isTimeHeader("Time - "); ok {
		t.Fatal("empty name accepted as time header")
	}
}
