package smooth

import (
	"errors"
	"fmt"
)

// ErrEmptyInput indicates an empty input sequence.
var ErrEmptyInput = errors.New("smooth: empty input")

// MovingAverage returns the centered moving average of x with the given
// window size. The input is padded with edge values, so the output length
// equals the input length. For window sizes <= 1 a copy of x is returned.
//
// The window is centered with padLeft = window/2 and padRight =
// window-1-padLeft, matching a "same"-mode convolution with an averaging
// kernel over an edge-padded signal.
func MovingAverage(x []float64, window int) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, len(x))
	if window <= 1 {
		copy(out, x)
		return out, nil
	}

	n := len(x)
	padLeft := window / 2

	// Running sum over the virtual edge-padded signal. Sample i of the
	// padded signal maps to x[clamp(i-padLeft, 0, n-1)].
	at := func(i int) float64 {
		i -= padLeft
		if i < 0 {
			i = 0
		} else if i >= n {
			i = n - 1
		}
		return x[i]
	}

	sum := 0.0
	for i := 0; i < window; i++ {
		sum += at(i)
	}

	inv := 1 / float64(window)
	out[0] = sum * inv
	for i := 1; i < n; i++ {
		sum += at(i+window-1) - at(i-1)
		out[i] = sum * inv
	}

	return out, nil
}

// Exponential returns the exponentially weighted moving average of x with
// smoothing factor alpha in (0, 1]. alpha = 1 is the identity transform.
func Exponential(x []float64, alpha float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if alpha <= 0 || alpha > 1 {
		return nil, fmt.Errorf("smooth: alpha must be in (0, 1]: %f", alpha)
	}

	out := make([]float64, len(x))
	out[0] = x[0]
	for i := 1; i < len(x); i++ {
		out[i] = alpha*x[i] + (1-alpha)*out[i-1]
	}

	return out, nil
}
