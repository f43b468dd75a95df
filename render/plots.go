package render

import (
	"bytes"
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/AmitVSingh/process-signals-dashboard/dsp/spectrum"
	"github.com/AmitVSingh/process-signals-dashboard/stats/hist"
)

// Rendering geometry, matching the original report layout.
const (
	gridWidth   = 14 * vg.Inch
	gridHeight  = 9 * vg.Inch
	polyWidth   = 14 * vg.Inch
	polyHeight  = 4 * vg.Inch
	exportDPI   = 160
	tilePadding = 4 * vg.Millimeter
	defaultBins = 30
	maxHistBins = 200
	minHistBins = 1
)

// ClampBins limits a requested histogram bin count to the supported range,
// substituting the default for non-positive values.
func ClampBins(bins int) int {
	if bins <= 0 {
		return defaultBins
	}
	if bins < minHistBins {
		return minHistBins
	}
	if bins > maxHistBins {
		return maxHistBins
	}
	return bins
}

// Grid3x3PNG renders the 3x3 analysis grid as PNG bytes: one row per signal
// with time series (raw + moving average), histogram, and FFT magnitude.
func Grid3x3PNG(rows []Row, bins int) ([]byte, error) {
	if len(rows) != RowCount {
		return nil, fmt.Errorf("render: exactly %d rows required: got %d", RowCount, len(rows))
	}
	bins = ClampBins(bins)

	plots := make([][]*plot.Plot, RowCount)
	for i, r := range rows {
		tp, err := timePlot(r)
		if err != nil {
			return nil, err
		}
		hp, err := histPlot(r, bins)
		if err != nil {
			return nil, err
		}
		sp, err := spectrumPlot(r)
		if err != nil {
			return nil, err
		}
		plots[i] = []*plot.Plot{tp, hp, sp}
	}

	return tilePNG(plots, RowCount, 3, gridWidth, gridHeight)
}

// FrequencyPolygonPNG renders the 1x3 frequency polygon view: histogram
// counts plotted as a line over bin centers, one panel per signal.
func FrequencyPolygonPNG(rows []Row, bins int) ([]byte, error) {
	if len(rows) != RowCount {
		return nil, fmt.Errorf("render: exactly %d rows required: got %d", RowCount, len(rows))
	}
	bins = ClampBins(bins)

	plots := make([][]*plot.Plot, 1)
	plots[0] = make([]*plot.Plot, RowCount)
	for i, r := range rows {
		p, err := polygonPlot(r, bins)
		if err != nil {
			return nil, err
		}
		plots[0][i] = p
	}

	return tilePNG(plots, 1, RowCount, polyWidth, polyHeight)
}

func timePlot(r Row) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = r.Label + " vs Time"
	p.X.Label.Text = "Time"
	p.Y.Label.Text = r.Label

	raw, err := plotter.NewLine(xyPoints(r.Time, r.Raw))
	if err != nil {
		return nil, fmt.Errorf("render: time series line: %w", err)
	}
	raw.Color = plotutil.Color(0)

	ma, err := plotter.NewLine(xyPoints(r.Time, r.Smoothed))
	if err != nil {
		return nil, fmt.Errorf("render: moving average line: %w", err)
	}
	ma.Color = plotutil.Color(1)

	p.Add(raw, ma)
	p.Legend.Add("raw", raw)
	p.Legend.Add("MA", ma)
	p.Legend.Top = true

	return p, nil
}

func histPlot(r Row, bins int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = r.Label + " Histogram"
	p.X.Label.Text = r.Label
	p.Y.Label.Text = "Count"

	h, err := plotter.NewHist(plotter.Values(r.Raw), bins)
	if err != nil {
		return nil, fmt.Errorf("render: histogram: %w", err)
	}
	h.FillColor = plotutil.Color(0)
	p.Add(h)

	return p, nil
}

func spectrumPlot(r Row) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = r.Label + " FFT Magnitude"
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "Magnitude"

	freq, mag, err := spectrum.FFTMagnitude(r.Time, r.Raw)
	switch {
	case errors.Is(err, spectrum.ErrTooShort), errors.Is(err, spectrum.ErrInvalidSampling):
		// No usable sampling information: leave the panel empty.
		return p, nil
	case err != nil:
		return nil, err
	}

	line, err := plotter.NewLine(xyPoints(freq, mag))
	if err != nil {
		return nil, fmt.Errorf("render: spectrum line: %w", err)
	}
	line.Color = plotutil.Color(2)
	p.Add(line)

	return p, nil
}

func polygonPlot(r Row, bins int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = r.Label + " Frequency Polygon"
	p.X.Label.Text = r.Label
	p.Y.Label.Text = "Count"

	h, err := hist.Compute(r.Raw, bins)
	if err != nil {
		return nil, fmt.Errorf("render: polygon histogram: %w", err)
	}

	centers := h.Centers()
	counts := make([]float64, len(h.Counts))
	for i, c := range h.Counts {
		counts[i] = float64(c)
	}

	line, points, err := plotter.NewLinePoints(xyPoints(centers, counts))
	if err != nil {
		return nil, fmt.Errorf("render: polygon line: %w", err)
	}
	line.Color = plotutil.Color(0)
	points.Color = plotutil.Color(0)
	p.Add(line, points)

	return p, nil
}

// tilePNG lays the plots out on a rows x cols grid and encodes the canvas
// as PNG.
func tilePNG(plots [][]*plot.Plot, rows, cols int, width, height vg.Length) ([]byte, error) {
	img := vgimg.NewWith(
		vgimg.UseWH(width, height),
		vgimg.UseDPI(exportDPI),
	)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: tilePadding,
		PadY: tilePadding,
	}

	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j, p := range plots[i] {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}

	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render: encode png: %w", err)
	}

	return buf.Bytes(), nil
}

func xyPoints(x, y []float64) plotter.XYs {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}

	pts := make(plotter.XYs, n)
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}
