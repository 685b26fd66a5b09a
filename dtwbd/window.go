package dtwbd

// buildWindow projects a coarse-grid path onto the fine grid (n, m) and
// dilates it by radius r, producing a per-row admissible column interval.
//
// Every coarse cell (i, j) un-coarsens to the four fine cells
// {(2i,2j), (2i+1,2j), (2i,2j+1), (2i+1,2j+1)}. For each of the two fine
// columns 2j and 2j+1, and for every row offset x in [-r, r], the fine
// rows 2(i+x) and 2(i+x)+1 (both row parities un-coarsen together, so the
// row parity of the originating fine cell contributes nothing a second
// pass wouldn't already cover) are widened to admit the column range
// [2j+colBit-r, 2j+colBit+r+1). Rows no coarse cell ever touches keep the
// empty interval [m, 0), which the solver's row loop scans zero times.
//
// buildWindow performs no distance evaluation; it is pure index
// arithmetic over the coarse path.
func buildWindow(n, m int, coarsePath []Cell, radius int) *Window {
	w := &Window{Lo: make([]int, n), Hi: make([]int, n)}
	for i := range w.Lo {
		w.Lo[i] = m
		w.Hi[i] = 0
	}

	widen := func(row, lo, hi int) {
		if row < 0 || row >= n {
			return
		}
		if lo < 0 {
			lo = 0
		}
		if hi > m {
			hi = m
		}
		if lo >= hi {
			return
		}
		if lo < w.Lo[row] {
			w.Lo[row] = lo
		}
		if hi > w.Hi[row] {
			w.Hi[row] = hi
		}
	}

	for _, c := range coarsePath {
		for colBit := 0; colBit <= 1; colBit++ {
			fj := 2*c.J + colBit
			for x := -radius; x <= radius; x++ {
				ci := c.I + x
				widen(2*ci, fj-radius, fj+radius+1)
				widen(2*ci+1, fj-radius, fj+radius+1)
			}
		}
	}

	return w
}
