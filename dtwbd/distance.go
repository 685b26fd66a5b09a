package dtwbd

import "gonum.org/v1/gonum/floats"

// euclid returns the Euclidean distance between two equal-length feature
// vectors: sqrt(sum((x[k]-y[k])^2)). Callers guarantee len(x) == len(y).
func euclid(x, y Vector) float64 {
	return floats.Distance(x, y, 2)
}

// dimOf validates that every vector in seq shares the same positive
// dimension and returns it. It returns ErrDimensionMismatch if seq is
// ragged or declares a dimension below 1. An empty sequence has no
// dimension to report and is not an error here; callers handle n == 0
// separately as the degenerate all-skip case.
func dimOf(seq []Vector) (int, error) {
	if len(seq) == 0 {
		return 0, nil
	}
	l := len(seq[0])
	if l < 1 {
		return 0, ErrDimensionMismatch
	}
	for _, v := range seq[1:] {
		if len(v) != l {
			return 0, ErrDimensionMismatch
		}
	}

	return l, nil
}
