package render

import (
	"errors"
	"fmt"
	"strings"
)

// minScatterPoints is the smallest common length accepted for the 3D view.
const minScatterPoints = 5

// defaultMaxPoints caps the payload size for interactive rendering.
const defaultMaxPoints = 5000

// ErrTooFewPoints indicates selected signals share too few samples for the
// 3D view.
var ErrTooFewPoints = errors.New("render: too few common points for 3d view")

// ErrUnknownColorMode indicates an unrecognized color mode name.
var ErrUnknownColorMode = errors.New("render: unknown color mode")

// ColorMode selects the series used to color the 3D scatter points.
type ColorMode int

const (
	// ColorBySampleIndex colors points by their position in the series.
	ColorBySampleIndex ColorMode = iota
	ColorByTime1
	ColorByTime2
	ColorByTime3
	ColorByValue1
	ColorByValue2
	ColorByValue3
)

var colorModeNames = map[ColorMode]string{
	ColorBySampleIndex: "index",
	ColorByTime1:       "time1",
	ColorByTime2:       "time2",
	ColorByTime3:       "time3",
	ColorByValue1:      "value1",
	ColorByValue2:      "value2",
	ColorByValue3:      "value3",
}

// String returns the canonical name of the color mode.
func (m ColorMode) String() string {
	if name, ok := colorModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ColorMode(%d)", int(m))
}

// ColorModeByName resolves a color mode from its canonical name. Matching is
// case-insensitive.
func ColorModeByName(name string) (ColorMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range colorModeNames {
		if n == name {
			return m, nil
		}
	}
	return ColorBySampleIndex, fmt.Errorf("%w: %q", ErrUnknownColorMode, name)
}

// Scatter3D is the point cloud relating three signals, one axis per signal.
// It serializes directly into the payload consumed by the 3D view.
type Scatter3D struct {
	XLabel string    `json:"xLabel"`
	YLabel string    `json:"yLabel"`
	ZLabel string    `json:"zLabel"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
	Z      []float64 `json:"z"`
	Color  []float64 `json:"color"`
	Mode   string    `json:"colorMode"`

	// Total is the common length before any downsampling.
	Total int `json:"total"`
}

// ScatterOption adjusts how the 3D point cloud is built.
type ScatterOption func(*scatterConfig)

type scatterConfig struct {
	smoothed  bool
	maxPoints int
	mode      ColorMode
}

// WithSmoothed plots the moving-average series instead of the raw values.
func WithSmoothed() ScatterOption {
	return func(c *scatterConfig) { c.smoothed = true }
}

// WithMaxPoints caps the number of emitted points. Non-positive values
// disable downsampling.
func WithMaxPoints(n int) ScatterOption {
	return func(c *scatterConfig) { c.maxPoints = n }
}

// WithColorMode selects the coloring series.
func WithColorMode(m ColorMode) ScatterOption {
	return func(c *scatterConfig) { c.mode = m }
}

// BuildScatter3D relates the three rows as a 3D point cloud. Series are
// trimmed to their common length; longer inputs are downsampled to the
// configured point cap with evenly spaced indices.
func BuildScatter3D(rows []Row, opts ...ScatterOption) (*Scatter3D, error) {
	if len(rows) != RowCount {
		return nil, fmt.Errorf("render: exactly %d rows required: got %d", RowCount, len(rows))
	}

	cfg := scatterConfig{maxPoints: defaultMaxPoints}
	for _, opt := range opts {
		opt(&cfg)
	}

	values := make([][]float64, RowCount)
	for i, r := range rows {
		if cfg.smoothed {
			values[i] = r.Smoothed
		} else {
			values[i] = r.Raw
		}
	}

	n := len(values[0])
	for _, v := range values[1:] {
		if len(v) < n {
			n = len(v)
		}
	}
	if n < minScatterPoints {
		return nil, fmt.Errorf("%w: %d", ErrTooFewPoints, n)
	}

	idx := sampleIndices(n, cfg.maxPoints)

	sc := &Scatter3D{
		XLabel: rows[0].Label,
		YLabel: rows[1].Label,
		ZLabel: rows[2].Label,
		X:      pick(values[0], idx),
		Y:      pick(values[1], idx),
		Z:      pick(values[2], idx),
		Mode:   cfg.mode.String(),
		Total:  n,
	}

	switch cfg.mode {
	case ColorByTime1:
		sc.Color = pick(rows[0].Time, idx)
	case ColorByTime2:
		sc.Color = pick(rows[1].Time, idx)
	case ColorByTime3:
		sc.Color = pick(rows[2].Time, idx)
	case ColorByValue1:
		sc.Color = append([]float64(nil), sc.X...)
	case ColorByValue2:
		sc.Color = append([]float64(nil), sc.Y...)
	case ColorByValue3:
		sc.Color = append([]float64(nil), sc.Z...)
	default:
		sc.Color = make([]float64, len(idx))
		for i, j := range idx {
			sc.Color[i] = float64(j)
		}
	}

	return sc, nil
}

// sampleIndices returns up to max evenly spaced indices in [0, n). The first
// and last samples are always included when downsampling.
func sampleIndices(n, max int) []int {
	if max <= 0 || n <= max {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}

	idx := make([]int, max)
	step := float64(n-1) / float64(max-1)
	for i := range idx {
		idx[i] = int(float64(i)*step + 0.5)
	}
	idx[max-1] = n - 1
	return idx
}

func pick(v []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = v[j]
	}
	return out
}
