package render

import (
	"errors"
	"fmt"

	"github.com/AmitVSingh/process-signals-dashboard/dataset"
	"github.com/AmitVSingh/process-signals-dashboard/dsp/smooth"
)

// RowCount is the number of signals shown side by side in the report views.
const RowCount = 3

// minRowSamples is the smallest series length accepted for plotting.
const minRowSamples = 4

// ErrTooFewSamples indicates a selected signal with too few valid samples.
var ErrTooFewSamples = errors.New("render: signal has too few valid samples")

// Row is one selected signal prepared for plotting.
type Row struct {
	Label    string
	Time     []float64
	Raw      []float64
	Smoothed []float64
}

// BuildRows extracts the named signals from the dataset and applies the
// moving average with the given window. Exactly RowCount names are required;
// a name may repeat when the dataset has fewer signals.
func BuildRows(ds *dataset.Dataset, names []string, window int) ([]Row, error) {
	if len(names) != RowCount {
		return nil, fmt.Errorf("render: exactly %d signals required: got %d", RowCount, len(names))
	}

	rows := make([]Row, 0, RowCount)
	for _, name := range names {
		s, err := ds.Get(name)
		if err != nil {
			return nil, err
		}
		if s.Len() < minRowSamples {
			return nil, fmt.Errorf("%w: %q has %d", ErrTooFewSamples, name, s.Len())
		}

		smoothed, err := smooth.MovingAverage(s.Value, window)
		if err != nil {
			return nil, err
		}

		rows = append(rows, Row{
			Label:    s.Name,
			Time:     s.Time,
			Raw:      s.Value,
			Smoothed: smoothed,
		})
	}

	return rows, nil
}
