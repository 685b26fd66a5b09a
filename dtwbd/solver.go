package dtwbd

import "math"

// inf is the DP table's out-of-window / out-of-bounds sentinel: the
// largest representable real. Any arithmetic that pushes a finite
// candidate above it saturates to +Inf under ordinary IEEE-754 float64
// overflow, which is exactly the clamping behavior an out-of-range read
// needs — no extra guard is required around the sums below.
const inf = math.MaxFloat64

const noPrev = -1

// dpCell is one entry of the DP table: a non-negative cost and a
// predecessor. prevI == noPrev marks a skip-in origin (the "path
// originates here" sentinel (-1,-1)); any other value is a valid
// back-pointer.
type dpCell struct {
	cost         float64
	prevI, prevJ int
}

// Solve runs the exact (or windowed, if win != nil) DTW-BD recurrence: it
// fills a dense n*m cost table row-major, tracks the best boundary-drop
// terminus as it sweeps, and backtraces from that terminus.
//
// Degenerate input (n == 0 or m == 0) is not an error: Solve returns
// (nil, 0, nil) and the caller infers cost = skipPenalty*(n+m) implicitly.
// A ragged or zero-dimension sequence returns ErrDimensionMismatch. A table
// that would exceed the module's size cap returns ErrTableTooLarge.
func Solve(s, t []Vector, skipPenalty float64, win *Window) (path []Cell, cost float64, err error) {
	n, m := len(s), len(t)
	if n == 0 || m == 0 {
		return nil, 0, nil
	}

	ls, err := dimOf(s)
	if err != nil {
		return nil, 0, err
	}
	lt, err := dimOf(t)
	if err != nil {
		return nil, 0, err
	}
	if ls != lt {
		return nil, 0, ErrDimensionMismatch
	}

	if int64(n)*int64(m) > maxTableCells {
		return nil, 0, ErrTableTooLarge
	}

	table := make([]dpCell, n*m)
	for idx := range table {
		table[idx] = dpCell{cost: inf, prevI: noPrev, prevJ: noPrev}
	}
	at := func(i, j int) *dpCell { return &table[i*m+j] }

	// cellCost returns a predecessor's recorded cost, or inf if the cell
	// is out of bounds or outside the window — the single chokepoint used
	// instead of repeating the bounds/window check at each of the three
	// recurrence reads below.
	cellCost := func(i, j int) float64 {
		if i < 0 || j < 0 || i >= n || j >= m {
			return inf
		}
		if !win.contains(i, j, m) {
			return inf
		}

		return at(i, j).cost
	}

	bestCost := skipPenalty * float64(n+m) // cost of skipping everything
	bestI, bestJ := -1, -1

	for i := 0; i < n; i++ {
		lo, hi := 0, m
		if win != nil {
			lo, hi = win.Lo[i], win.Hi[i]
		}
		for j := lo; j < hi; j++ {
			d := euclid(s[i], t[j])

			// Tie-break order is part of the contract: evaluate skip-in,
			// diagonal, insert-S, insert-T in that order and keep the first
			// one reached on a tie, hence strict '<' below.
			best := dpCell{cost: skipPenalty*float64(i+j) + d, prevI: noPrev, prevJ: noPrev}
			if c := cellCost(i-1, j-1); c+d < best.cost {
				best = dpCell{cost: c + d, prevI: i - 1, prevJ: j - 1}
			}
			if c := cellCost(i, j-1); c+d < best.cost {
				best = dpCell{cost: c + d, prevI: i, prevJ: j - 1}
			}
			if c := cellCost(i-1, j); c+d < best.cost {
				best = dpCell{cost: c + d, prevI: i - 1, prevJ: j}
			}
			*at(i, j) = best

			terminus := best.cost + skipPenalty*float64((n-1-i)+(m-1-j))
			if terminus < bestCost {
				bestCost = terminus
				bestI, bestJ = i, j
			}
		}
	}

	if bestI < 0 {
		return nil, 0, nil
	}

	return backtrace(table, m, bestI, bestJ), bestCost, nil
}

// backtrace follows prev links from (i, j) until a skip-in sentinel is
// reached, then reverses the accumulated reverse-order path in place.
func backtrace(table []dpCell, m, i, j int) []Cell {
	path := make([]Cell, 0, i+j+1)
	for i != noPrev {
		path = append(path, Cell{I: i, J: j})
		c := table[i*m+j]
		i, j = c.prevI, c.prevJ
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}
