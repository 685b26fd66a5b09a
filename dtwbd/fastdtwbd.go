package dtwbd

// Align computes an approximate boundary-drop DTW alignment between s and t
// using the Fast-DTW-BD multi-resolution scheme: below a length threshold
// it falls through to the exact windowed solver; above it, it coarsens
// both sequences, recurses, projects the recovered coarse path onto the
// fine grid, dilates it into a search band, and solves within that band.
//
// Correctness rests on the approximation that the optimal fine-grid path
// lies within a radius-opts.Radius band around the un-coarsened
// coarse-optimal path; this is not guaranteed to be globally optimal.
// Radius >= max(len(s), len(t)) makes the threshold check below fire
// immediately, so Align degenerates to Solve with no window.
func Align(s, t []Vector, opts Options) (path []Cell, cost float64, err error) {
	// Dimensions are validated once up front: coarsen has no validation of
	// its own (it trusts uniform-dimension input), so a ragged sequence
	// must be rejected before the first recursive coarsen call rather than
	// only at the eventual base-case Solve.
	ls, err := dimOf(s)
	if err != nil {
		return nil, 0, err
	}
	lt, err := dimOf(t)
	if err != nil {
		return nil, 0, err
	}
	if len(s) > 0 && len(t) > 0 && ls != lt {
		return nil, 0, ErrDimensionMismatch
	}

	return align(s, t, opts.SkipPenalty, opts.Radius)
}

// baseThreshold is the minimum sequence length below which the driver
// invokes the exact solver directly rather than recursing further.
func baseThreshold(radius int) int {
	return 2*(radius+1) + 1
}

func align(s, t []Vector, skipPenalty float64, radius int) ([]Cell, float64, error) {
	n, m := len(s), len(t)
	threshold := baseThreshold(radius)
	if n < threshold || m < threshold {
		return Solve(s, t, skipPenalty, nil)
	}

	coarseS := coarsen(s)
	coarseT := coarsen(t)

	coarsePath, _, err := align(coarseS, coarseT, skipPenalty, radius)
	if err != nil {
		return nil, 0, err
	}

	win := buildWindow(n, m, coarsePath, radius)

	return Solve(s, t, skipPenalty, win)
}
