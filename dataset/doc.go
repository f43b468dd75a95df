// Package dataset loads tabular process data and parses it into named signals.
//
// Columns follow the naming convention of the source spreadsheets:
//
//	Time - <name>      time axis for signal <name>
//	<prefix> - <name>  value column for signal <name>
//
// A time column is paired with the first other column carrying the same name
// suffix. Value-pattern columns without a matching time column become signals
// with an index-based time axis. Columns without the " - " separator are not
// signals and are ignored.
//
// Datasets are immutable after loading and are never persisted.
package dataset
