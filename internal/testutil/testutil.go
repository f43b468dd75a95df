package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// UniformTime returns a uniform time axis with the given sample interval.
func UniformTime(length int, dt float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i) * dt
	}
	return out
}

// Ramp returns a linear ramp from start with the given step.
func Ramp(start, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}
