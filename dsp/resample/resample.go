package resample

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Resampling errors.
var (
	// ErrTooShort indicates fewer than two samples.
	ErrTooShort = errors.New("resample: need at least 2 samples")
	// ErrNotMonotonic indicates a decreasing time axis.
	ErrNotMonotonic = errors.New("resample: time axis must be non-decreasing")
	// ErrZeroSpan indicates a time axis without positive extent.
	ErrZeroSpan = errors.New("resample: time axis has no positive span")
)

// Jitter returns the relative spread of sampling intervals: the maximum
// absolute deviation of an interval from the mean interval, divided by the
// mean interval. A uniform grid has jitter 0.
func Jitter(t []float64) (float64, error) {
	if len(t) < 2 {
		return 0, ErrTooShort
	}

	span := t[len(t)-1] - t[0]
	if span <= 0 {
		return 0, ErrZeroSpan
	}

	mean := span / float64(len(t)-1)
	maxDev := 0.0
	for i := 1; i < len(t); i++ {
		d := t[i] - t[i-1]
		if d < 0 {
			return 0, ErrNotMonotonic
		}
		dev := math.Abs(d - mean)
		if dev > maxDev {
			maxDev = dev
		}
	}

	return maxDev / mean, nil
}

// ToUniform resamples (t, y) onto a uniform grid spanning [t[0], t[n-1]]
// with the original sample count, using piecewise-linear interpolation.
// t must be non-decreasing with positive total span.
func ToUniform(t, y []float64) (tu, yu []float64, err error) {
	if len(t) != len(y) {
		return nil, nil, fmt.Errorf("resample: length mismatch: %d != %d", len(t), len(y))
	}
	if len(t) < 2 {
		return nil, nil, ErrTooShort
	}

	n := len(t)
	span := t[n-1] - t[0]
	if span <= 0 {
		return nil, nil, ErrZeroSpan
	}
	for i := 1; i < n; i++ {
		if t[i] < t[i-1] {
			return nil, nil, ErrNotMonotonic
		}
	}

	tu = make([]float64, n)
	yu = make([]float64, n)
	step := span / float64(n-1)

	for i := range tu {
		q := t[0] + step*float64(i)
		tu[i] = q
		yu[i] = interpAt(t, y, q)
	}
	// Guard against floating point drift at the right edge.
	tu[n-1] = t[n-1]
	yu[n-1] = y[n-1]

	return tu, yu, nil
}

// interpAt evaluates the piecewise-linear interpolant of (t, y) at q.
// Repeated time values take the first sample of the run.
func interpAt(t, y []float64, q float64) float64 {
	if q <= t[0] {
		return y[0]
	}
	if q >= t[len(t)-1] {
		return y[len(y)-1]
	}

	j := sort.SearchFloat64s(t, q)
	if t[j] == q {
		return y[j]
	}

	t0, t1 := t[j-1], t[j]
	if t1 == t0 {
		return y[j]
	}

	frac := (q - t0) / (t1 - t0)
	return y[j-1] + frac*(y[j]-y[j-1])
}
