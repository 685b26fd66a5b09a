// Package dtwbd computes boundary-drop dynamic time warping alignments
// between two sequences of equal-dimensional real feature vectors.
//
// # What & Why
//
// Classical DTW requires the alignment path to start and end at the
// sequences' corners. dtwbd relaxes that: arbitrary-length prefixes and
// suffixes of either sequence may be left unaligned, each unaligned
// element charged a fixed per-element skip penalty. This models matching
// a short query against a long reference (subtitle-to-audio alignment,
// motif search in a longer recording) without padding or truncating
// either side by hand.
//
// Two entry points cover the same recurrence at two speeds:
//
//	Solve(s, t, skipPenalty, window) — exact (or windowed) O(n*m) DP.
//	Align(s, t, opts)                — Fast-DTW-BD: recursive coarsen/
//	                                    project/refine within a band.
//
// # Algorithm & Complexity
//
//	Solve  (exact windowed recurrence)
//	  Time:   O(n*m): the dense table is allocated and sentinel-filled in
//	          full even when a window is given; within a window of radius
//	          r the recurrence itself evaluates only O((2r+1)*n) cells.
//	  Memory: O(n*m) dense table (sentinel-filled outside the window).
//
//	Align  (Fast-DTW-BD driver)
//	  Coarsen both sequences to half length, recurse, project the coarse
//	  path onto the fine grid, dilate by Options.Radius, solve within that
//	  band. Falls through to Solve directly once either sequence drops
//	  below 2*(radius+1)+1 elements.
//	  Time:   distance evaluations are near-linear in max(n, m) for a
//	          fixed radius, but each level's Solve still allocates and
//	          fills a dense table, so the total is O(n*m).
//	  Memory: bounded by the sum, over recursion levels, of the coarse
//	          sequences, the window, and that level's DP table.
//
// # Options
//
//	type Options struct {
//	    SkipPenalty float64 // p >= 0, per-element cost of a skip
//	    Radius      int     // half-width of the Fast-DTW-BD search band
//	}
//
//	func DefaultOptions() Options
//
// SkipPenalty == 0 makes skipping both sequences entirely always optimal
// (the returned path is empty). A sufficiently large SkipPenalty recovers
// the classical corner-to-corner DTW path. Radius >= max(len(s), len(t))
// makes Align equivalent to Solve with no window.
//
// # Errors (strict sentinels)
//
//	ErrDimensionMismatch — a feature vector's length disagrees with its
//	                       sequence's declared dimension, or that
//	                       dimension is below 1.
//	ErrTableTooLarge     — the dense DP table would exceed this module's
//	                       size cap; the Go analogue of the reference
//	                       core's allocation-failure return.
//
// An empty sequence (n == 0 or m == 0) is not an error: both Solve and
// Align return a nil path and the caller infers
// cost = SkipPenalty * (n + m), the all-skip outcome.
//
// # Example
//
//	opts := dtwbd.DefaultOptions()
//	opts.SkipPenalty = 1.0
//	opts.Radius = 8
//	path, cost, err := dtwbd.Align(s, t, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("cost=%.2f len(path)=%d\n", cost, len(path))
package dtwbd
