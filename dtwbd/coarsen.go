package dtwbd

// coarsen halves a sequence's length by pairwise-averaging adjacent
// vectors: the i-th output vector is the componentwise mean of input
// vectors 2i and 2i+1. The trailing element is dropped when len(seq) is
// odd. The returned sequence is freshly allocated; coarsen never aliases
// seq's backing storage.
func coarsen(seq []Vector) []Vector {
	half := len(seq) / 2
	if half == 0 {
		return nil
	}

	out := make([]Vector, half)
	for i := 0; i < half; i++ {
		a, b := seq[2*i], seq[2*i+1]
		v := make(Vector, len(a))
		for k := range v {
			v[k] = (a[k] + b[k]) / 2
		}
		out[i] = v
	}

	return out
}
