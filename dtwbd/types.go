// Package dtwbd defines configuration options, sentinel errors, and the
// core data types shared by the boundary-drop DTW solver and the Fast-DTW-BD
// driver.
package dtwbd

import "errors"

// Vector is a single feature vector. All vectors within one sequence must
// share the same length l >= 1.
type Vector = []float64

// Cell is one step of an alignment path: row i in the first sequence paired
// with column j in the second.
type Cell struct {
	I, J int
}

// Window constrains the DTW-BD recurrence to a per-row column interval.
// Lo[i] and Hi[i] describe the half-open range [Lo[i], Hi[i]) of admissible
// columns for row i. A nil *Window means every row is unconstrained, i.e.
// every column in [0, m) is admissible.
type Window struct {
	Lo, Hi []int
}

// contains reports whether column j is inside row i's admissible interval.
// A nil Window admits every (i, j) pair within range.
func (w *Window) contains(i, j, m int) bool {
	if w == nil {
		return j >= 0 && j < m
	}
	if i < 0 || i >= len(w.Lo) {
		return false
	}

	return j >= w.Lo[i] && j < w.Hi[i]
}

// Sentinel errors returned by the dtwbd package.
var (
	// ErrDimensionMismatch indicates a feature vector's length disagrees
	// with the sequence's declared dimension, or that dimension is < 1.
	ErrDimensionMismatch = errors.New("dtwbd: feature vector dimension mismatch")

	// ErrTableTooLarge indicates the dense DP table's cell count n*m
	// exceeds maxTableCells; the check runs before any allocation is
	// attempted, whether or not a window is given.
	ErrTableTooLarge = errors.New("dtwbd: DP table dimensions too large")
)

// maxTableCells caps n*m to keep a dense DP table allocation within a
// bound; on 64-bit platforms it is well below where int overflow could
// occur. It is above the range of a 32-bit int.
const maxTableCells = 1 << 34

// Options configures Fast-DTW-BD (Align) and the exact solver (Solve).
//
// SkipPenalty and Radius are not guarded: a negative value is a programmer
// error and produces unspecified but memory-safe output, not a validation
// error (see Validate).
type Options struct {
	// SkipPenalty is the per-element cost p charged for each unaligned
	// element of either sequence's unmatched prefix/suffix.
	SkipPenalty float64

	// Radius is the half-width of the search band dilated around a
	// coarse-grid path projection. Radius >= max(n, m) makes Fast-DTW-BD
	// equivalent to the exact solver.
	Radius int
}

// DefaultOptions returns zero-cost, zero-radius Options: no skip penalty,
// no radius (degenerates to an unwindowed exact solve for any input small
// enough to hit the base case immediately).
func DefaultOptions() Options {
	return Options{
		SkipPenalty: 0,
		Radius:      0,
	}
}

// Validate exists for symmetry with this module's other configuration
// types. Negative SkipPenalty and negative Radius are left unguarded by
// design — a caller passing either is a programmer error, not a
// reportable condition — so Validate currently always returns nil; it is
// kept so callers and future options compose the same way.
func (o *Options) Validate() error {
	return nil
}
