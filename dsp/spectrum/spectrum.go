package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sort"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/AmitVSingh/process-signals-dashboard/dsp/resample"
)

// Spectrum errors.
var (
	// ErrTooShort indicates fewer samples than the transform minimum.
	ErrTooShort = errors.New("spectrum: need at least 4 samples")
	// ErrInvalidSampling indicates a time axis without a usable sample interval.
	ErrInvalidSampling = errors.New("spectrum: invalid sample interval")
)

// minSamples is the smallest series length accepted by FFTMagnitude.
const minSamples = 4

type config struct {
	window    Window
	uniform   bool
	jitterTol float64
}

// Option configures FFTMagnitude.
type Option func(*config)

// WithWindow selects the analysis window. Default is rectangular.
func WithWindow(w Window) Option {
	return func(cfg *config) {
		cfg.window = w
	}
}

// WithUniformResampling resamples irregular time grids onto a uniform grid
// before the transform. Grids whose interval jitter stays below tol pass
// through unchanged; tol <= 0 selects the default of 0.01.
func WithUniformResampling(tol float64) Option {
	return func(cfg *config) {
		cfg.uniform = true
		if tol > 0 {
			cfg.jitterTol = tol
		}
	}
}

func defaultConfig() config {
	return config{jitterTol: 0.01}
}

// FFTMagnitude computes the one-sided magnitude spectrum of a sampled series.
//
// The sample interval is estimated as the median of the finite time
// differences, and the mean is subtracted before the transform. The signal is
// zero-padded to the next power of two for the FFT backend; magnitudes are
// normalized by the original sample count (and window gain), so a full-scale
// sine contributes roughly half its amplitude at its bin.
//
// freq[k] = k / (nfft * dt) for k in 0..nfft/2.
func FFTMagnitude(t, y []float64, opts ...Option) (freq, mag []float64, err error) {
	if len(t) != len(y) {
		return nil, nil, fmt.Errorf("spectrum: length mismatch: %d != %d", len(t), len(y))
	}
	if len(y) < minSamples {
		return nil, nil, ErrTooShort
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.uniform {
		if jitter, jerr := resample.Jitter(t); jerr == nil && jitter > cfg.jitterTol {
			if tu, yu, rerr := resample.ToUniform(t, y); rerr == nil {
				t, y = tu, yu
			}
		}
	}

	dt, ok := medianInterval(t)
	if !ok {
		return nil, nil, ErrInvalidSampling
	}

	n := len(y)

	// Detrend by mean removal, then window.
	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(n)

	x := make([]float64, n)
	for i, v := range y {
		x[i] = v - mean
	}

	gain := 1.0
	if cfg.window != WindowRectangular {
		coeffs := generateWindow(cfg.window, n)
		vecmath.MulBlockInPlace(x, coeffs)
		gain = coherentGain(coeffs)
	}

	nfft := nextPow2(n)
	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return nil, nil, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	in := make([]complex128, nfft)
	out := make([]complex128, nfft)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	if err := plan.Forward(out, in); err != nil {
		return nil, nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	bins := nfft/2 + 1
	freq = make([]float64, bins)
	binHz := 1 / (float64(nfft) * dt)
	for k := range freq {
		freq[k] = float64(k) * binHz
	}

	mag = Magnitude(out[:bins])
	scale := 1 / (float64(n) * gain)
	for i := range mag {
		mag[i] *= scale
	}

	return freq, mag, nil
}

// Magnitude returns |X[k]| for each complex spectrum bin using vectorized
// magnitude computation.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re := make([]float64, len(in))
	im := make([]float64, len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(in))
	vecmath.Magnitude(out, re, im)
	return out
}

// PeakFrequency returns the frequency of the strongest non-DC bin.
func PeakFrequency(freq, mag []float64) (float64, error) {
	if len(freq) != len(mag) {
		return 0, fmt.Errorf("spectrum: length mismatch: %d != %d", len(freq), len(mag))
	}
	if len(mag) < 2 {
		return 0, fmt.Errorf("spectrum: need at least 2 bins: %d", len(mag))
	}

	peakBin := 1
	for k := 2; k < len(mag); k++ {
		if mag[k] > mag[peakBin] {
			peakBin = k
		}
	}

	return freq[peakBin], nil
}

// medianInterval estimates the sample interval as the median of the finite
// time differences. ok is false when no usable interval exists.
func medianInterval(t []float64) (float64, bool) {
	diffs := make([]float64, 0, len(t)-1)
	for i := 1; i < len(t); i++ {
		d := t[i] - t[i-1]
		if math.IsNaN(d) || math.IsInf(d, 0) {
			continue
		}
		diffs = append(diffs, d)
	}
	if len(diffs) == 0 {
		return 0, false
	}

	sort.Float64s(diffs)
	mid := len(diffs) / 2

	var dt float64
	if len(diffs)%2 == 1 {
		dt = diffs[mid]
	} else {
		dt = (diffs[mid-1] + diffs[mid]) / 2
	}

	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return 0, false
	}

	return dt, true
}

// nextPow2 returns the smallest power of two >= n.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
