package spectrum

import "math"

// Window identifies an analysis window applied before the transform.
type Window int

const (
	// WindowRectangular applies no tapering.
	WindowRectangular Window = iota
	// WindowHann is a raised-cosine window, the usual default for noisy data.
	WindowHann
	// WindowHamming is a raised-cosine window with non-zero endpoints.
	WindowHamming
	// WindowBlackman is a three-term cosine window with low sidelobes.
	WindowBlackman
)

// String returns the lower-case window name.
func (w Window) String() string {
	switch w {
	case WindowHann:
		return "hann"
	case WindowHamming:
		return "hamming"
	case WindowBlackman:
		return "blackman"
	default:
		return "rectangular"
	}
}

// WindowByName maps a lower-case window name to its type.
func WindowByName(name string) (Window, bool) {
	switch name {
	case "", "rectangular":
		return WindowRectangular, true
	case "hann":
		return WindowHann, true
	case "hamming":
		return WindowHamming, true
	case "blackman":
		return WindowBlackman, true
	default:
		return WindowRectangular, false
	}
}

// generateWindow returns periodic (FFT framing) window coefficients.
func generateWindow(w Window, length int) []float64 {
	out := make([]float64, length)
	if length == 0 {
		return out
	}

	step := 2 * math.Pi / float64(length)
	for i := range out {
		x := step * float64(i)
		switch w {
		case WindowHann:
			out[i] = 0.5 - 0.5*math.Cos(x)
		case WindowHamming:
			out[i] = 0.54 - 0.46*math.Cos(x)
		case WindowBlackman:
			out[i] = 0.42 - 0.5*math.Cos(x) + 0.08*math.Cos(2*x)
		default:
			out[i] = 1
		}
	}

	return out
}

// coherentGain returns the mean of the window coefficients. Magnitudes are
// divided by it so that a sine at a bin center keeps its amplitude across
// window types.
func coherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 1
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs))
}
