package render

import (
	"errors"
	"testing"

	"github.com/AmitVSingh/process-signals-dashboard/internal/testutil"
)

func scatterRows(n1, n2, n3 int) []Row {
	mk := func(label string, n int) Row {
		return Row{
			Label:    label,
			Time:     testutil.UniformTime(n, 0.01),
			Raw:      testutil.Ramp(0, 1, n),
			Smoothed: testutil.Ramp(0.5, 1, n),
		}
	}
	return []Row{mk("A", n1), mk("B", n2), mk("C", n3)}
}

func TestBuildScatter3D(t *testing.T) {
	sc, err := BuildScatter3D(scatterRows(10, 10, 10))
	if err != nil {
		t.Fatalf("BuildScatter3D: %v", err)
	}

	if sc.XLabel != "A" || sc.YLabel != "B" || sc.ZLabel != "C" {
		t.Fatalf("unexpected labels: %q %q %q", sc.XLabel, sc.YLabel, sc.ZLabel)
	}
	if len(sc.X) != 10 || len(sc.Y) != 10 || len(sc.Z) != 10 || len(sc.Color) != 10 {
		t.Fatalf("unexpected lengths: %d %d %d %d", len(sc.X), len(sc.Y), len(sc.Z), len(sc.Color))
	}
	if sc.Total != 10 {
		t.Fatalf("Total = %d, want 10", sc.Total)
	}
	if sc.Mode != "index" {
		t.Fatalf("Mode = %q, want index", sc.Mode)
	}
	// Default coloring follows the sample index.
	if sc.Color[0] != 0 || sc.Color[9] != 9 {
		t.Fatalf("index colors = %v..%v, want 0..9", sc.Color[0], sc.Color[9])
	}
}

func TestBuildScatter3DTrimsToCommonLength(t *testing.T) {
	sc, err := BuildScatter3D(scatterRows(20, 8, 15))
	if err != nil {
		t.Fatalf("BuildScatter3D: %v", err)
	}
	if len(sc.X) != 8 || len(sc.Y) != 8 || len(sc.Z) != 8 {
		t.Fatalf("unexpected lengths: %d %d %d, want 8", len(sc.X), len(sc.Y), len(sc.Z))
	}
	if sc.Total != 8 {
		t.Fatalf("Total = %d, want 8", sc.Total)
	}
}

func TestBuildScatter3DDownsamples(t *testing.T) {
	sc, err := BuildScatter3D(scatterRows(100, 100, 100), WithMaxPoints(10))
	if err != nil {
		t.Fatalf("BuildScatter3D: %v", err)
	}

	if len(sc.X) != 10 {
		t.Fatalf("got %d points, want 10", len(sc.X))
	}
	if sc.Total != 100 {
		t.Fatalf("Total = %d, want 100", sc.Total)
	}
	// The ramp makes values equal their source index: endpoints must survive.
	if sc.X[0] != 0 || sc.X[9] != 99 {
		t.Fatalf("endpoints = %v, %v, want 0, 99", sc.X[0], sc.X[9])
	}
	for i := 1; i < len(sc.X); i++ {
		if sc.X[i] <= sc.X[i-1] {
			t.Fatalf("indices not strictly increasing at %d: %v", i, sc.X)
		}
	}
}

func TestBuildScatter3DNoDownsampleCap(t *testing.T) {
	sc, err := BuildScatter3D(scatterRows(100, 100, 100), WithMaxPoints(0))
	if err != nil {
		t.Fatalf("BuildScatter3D: %v", err)
	}
	if len(sc.X) != 100 {
		t.Fatalf("got %d points, want 100", len(sc.X))
	}
}

func TestBuildScatter3DSmoothed(t *testing.T) {
	sc, err := BuildScatter3D(scatterRows(10, 10, 10), WithSmoothed())
	if err != nil {
		t.Fatalf("BuildScatter3D: %v", err)
	}
	if sc.X[0] != 0.5 {
		t.Fatalf("X[0] = %v, want smoothed series start 0.5", sc.X[0])
	}
}

func TestBuildScatter3DColorModes(t *testing.T) {
	rows := scatterRows(10, 10, 10)

	cases := []struct {
		mode  ColorMode
		want0 float64
	}{
		{ColorBySampleIndex, 0},
		{ColorByTime1, rows[0].Time[0]},
		{ColorByTime2, rows[1].Time[0]},
		{ColorByTime3, rows[2].Time[0]},
		{ColorByValue1, rows[0].Raw[0]},
		{ColorByValue2, rows[1].Raw[0]},
		{ColorByValue3, rows[2].Raw[0]},
	}

	for _, c := range cases {
		sc, err := BuildScatter3D(rows, WithColorMode(c.mode))
		if err != nil {
			t.Fatalf("%v: %v", c.mode, err)
		}
		if len(sc.Color) != 10 {
			t.Fatalf("%v: color length %d, want 10", c.mode, len(sc.Color))
		}
		if sc.Color[0] != c.want0 {
			t.Fatalf("%v: Color[0] = %v, want %v", c.mode, sc.Color[0], c.want0)
		}
		if sc.Mode != c.mode.String() {
			t.Fatalf("%v: Mode = %q", c.mode, sc.Mode)
		}
	}
}

func TestBuildScatter3DTooFewPoints(t *testing.T) {
	_, err := BuildScatter3D(scatterRows(4, 10, 10))
	if !errors.Is(err, ErrTooFewPoints) {
		t.Fatalf("err = %v, want ErrTooFewPoints", err)
	}
}

func TestColorModeByName(t *testing.T) {
	for _, name := range []string{"index", "time1", "time2", "time3", "value1", "value2", "value3"} {
		m, err := ColorModeByName(name)
		if err != nil {
			t.Fatalf("ColorModeByName(%q): %v", name, err)
		}
		if m.String() != name {
			t.Fatalf("round trip %q -> %v", name, m)
		}
	}

	if m, err := ColorModeByName("  Value2 "); err != nil || m != ColorByValue2 {
		t.Fatalf("case-insensitive lookup failed: %v %v", m, err)
	}

	if _, err := ColorModeByName("rainbow"); !errors.Is(err, ErrUnknownColorMode) {
		t.Fatalf("err = %v, want ErrUnknownColorMode", err)
	}
}
