package hist

import (
	"errors"
	"fmt"
	"math"
)

// Histogram errors.
var (
	// ErrEmptyInput indicates an empty value slice.
	ErrEmptyInput = errors.New("hist: empty input")
	// ErrNonFinite indicates NaN or Inf among the values.
	ErrNonFinite = errors.New("hist: non-finite value")
)

// Histogram holds equal-width bin counts. Edges has one more element than
// Counts; bin i covers [Edges[i], Edges[i+1]), with the last bin closed on
// the right.
type Histogram struct {
	Counts []int
	Edges  []float64
}

// Bins returns the number of bins.
func (h Histogram) Bins() int { return len(h.Counts) }

// Centers returns the bin midpoints, the x-axis of a frequency polygon.
func (h Histogram) Centers() []float64 {
	out := make([]float64, len(h.Counts))
	for i := range out {
		out[i] = (h.Edges[i] + h.Edges[i+1]) / 2
	}
	return out
}

// Compute builds a histogram with the given number of equal-width bins over
// [min, max]. A constant input widens the range by +/-0.5 so that all values
// land in a well-defined bin.
func Compute(values []float64, bins int) (Histogram, error) {
	if len(values) == 0 {
		return Histogram{}, ErrEmptyInput
	}
	if bins < 1 {
		return Histogram{}, fmt.Errorf("hist: bins must be >= 1: %d", bins)
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Histogram{}, ErrNonFinite
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	h := Histogram{
		Counts: make([]int, bins),
		Edges:  make([]float64, bins+1),
	}

	width := (hi - lo) / float64(bins)
	for i := range h.Edges {
		h.Edges[i] = lo + width*float64(i)
	}
	h.Edges[bins] = hi

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		h.Counts[idx]++
	}

	return h, nil
}
