package summary

import "math"

// Stats holds descriptive statistics of a signal.
type Stats struct {
	Length   int
	Mean     float64
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
	Range    float64 // Max - Min
	RMS      float64
	Variance float64 // population variance
	StdDev   float64
}

// Calculate computes all statistics in a single pass using Welford's online
// algorithm for the variance.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var (
		mean   float64
		m2     float64
		sumSq  float64
		minVal = signal[0]
		minPos int
		maxVal = signal[0]
		maxPos int
	)

	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		sumSq += x * x

		if x < minVal {
			minVal = x
			minPos = i
		}
		if x > maxVal {
			maxVal = x
			maxPos = i
		}
	}

	nf := float64(n)
	variance := m2 / nf

	return Stats{
		Length:   n,
		Mean:     mean,
		Min:      minVal,
		MinPos:   minPos,
		Max:      maxVal,
		MaxPos:   maxPos,
		Range:    maxVal - minVal,
		RMS:      math.Sqrt(sumSq / nf),
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}
}
