// Package smooth provides display smoothing transforms for signal series.
//
// [MovingAverage] is a centered arithmetic-mean window with edge replication,
// so the output has the same length as the input and does not droop at the
// boundaries. [Exponential] is a standard first-order EWMA.
package smooth
