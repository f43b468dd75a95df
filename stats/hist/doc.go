// Package hist computes equal-width histograms of signal values.
//
// Histograms back both the bar-chart view and the frequency polygon, which
// plots bin counts at bin centers as a line.
package hist
