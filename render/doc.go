// Package render turns extracted signals into report images and payloads.
//
// The dashboard views are derived from three selected signals: a 3x3 grid
// (time series with moving average, histogram, FFT magnitude per signal), a
// 1x3 frequency polygon, and a 3D scatter payload relating the three value
// series. PNG output is presentational; it is not a data format.
package render
