// Package summary computes per-signal descriptive statistics in one pass.
package summary
