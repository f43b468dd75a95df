// Package spectrum computes one-sided FFT magnitude spectra of signal series.
//
// The package does not implement FFT itself; transforms run on the algo-fft
// backend. [FFTMagnitude] accepts a (time, value) series, estimates the
// sample interval as the median of the time differences, removes the mean,
// and returns frequency bins with linearly scaled magnitudes. Analysis
// windows and resampling of irregular time grids are available as options.
package spectrum
