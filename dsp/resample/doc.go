// Package resample maps irregularly sampled series onto uniform time grids.
//
// Frequency-domain analysis assumes uniform sampling. [Jitter] quantifies how
// far a time axis deviates from a uniform grid, and [ToUniform] produces a
// uniformly sampled copy of a series by piecewise-linear interpolation.
package resample
