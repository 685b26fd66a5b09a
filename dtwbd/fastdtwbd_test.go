package dtwbd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseThreshold(t *testing.T) {
	assert.Equal(t, 3, baseThreshold(0))
	assert.Equal(t, 5, baseThreshold(1))
	assert.Equal(t, 19, baseThreshold(8))
}

func TestAlignBelowThresholdMatchesExactSolve(t *testing.T) {
	s := []Vector{{0}, {1}, {2}}
	tt := []Vector{{0}, {1}, {2}}
	opts := Options{SkipPenalty: 1.0, Radius: 0}

	// n == m == 3 == baseThreshold(0), so Align falls straight through to
	// the exact solver.
	gotPath, gotCost, err := Align(s, tt, opts)
	require.NoError(t, err)

	wantPath, wantCost, err := Solve(s, tt, opts.SkipPenalty, nil)
	require.NoError(t, err)

	assert.Equal(t, wantPath, gotPath)
	assert.Equal(t, wantCost, gotCost)
}

func TestAlignLargeRadiusMatchesExactSolve(t *testing.T) {
	n := 40
	s := make([]Vector, n)
	tt := make([]Vector, n)
	for i := 0; i < n; i++ {
		s[i] = Vector{float64(i)}
		tt[i] = Vector{float64(i) + 0.5}
	}
	opts := Options{SkipPenalty: 2.0, Radius: n} // radius >= max(n,m)

	gotPath, gotCost, err := Align(s, tt, opts)
	require.NoError(t, err)

	wantPath, wantCost, err := Solve(s, tt, opts.SkipPenalty, nil)
	require.NoError(t, err)

	assert.InDelta(t, wantCost, gotCost, 1e-9)
	assert.Equal(t, wantPath, gotPath)
}

func TestAlignEmptyInput(t *testing.T) {
	path, cost, err := Align(nil, []Vector{{1}}, DefaultOptions())
	assert.NoError(t, err)
	assert.Nil(t, path)
	assert.Equal(t, 0.0, cost)
}

func TestAlignPropagatesDimensionMismatch(t *testing.T) {
	s := make([]Vector, 50)
	tt := make([]Vector, 50)
	for i := range s {
		s[i] = Vector{float64(i)}
		tt[i] = Vector{float64(i)}
	}
	tt[10] = Vector{1, 2} // ragged: disagrees with the rest of tt

	_, _, err := Align(s, tt, Options{SkipPenalty: 1.0, Radius: 2})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

// TestAlignExercisesMultiLevelRecursion picks n, m, radius so the driver
// coarsens several levels deep (50 -> 25 -> 12 -> 6, below threshold 11)
// before unwinding through buildWindow and Solve on the way back up.
func TestAlignExercisesMultiLevelRecursion(t *testing.T) {
	n := 50
	s := make([]Vector, n)
	tt := make([]Vector, n)
	for i := 0; i < n; i++ {
		s[i] = Vector{float64(i), float64(i) * 0.5}
		tt[i] = Vector{float64(i) + 1, float64(i)*0.5 - 1}
	}

	path, cost, err := Align(s, tt, Options{SkipPenalty: 3.0, Radius: 4})
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Greater(t, cost, 0.0)

	for i := 1; i < len(path); i++ {
		di, dj := path[i].I-path[i-1].I, path[i].J-path[i-1].J
		ok := (di == 1 && dj == 1) || (di == 0 && dj == 1) || (di == 1 && dj == 0)
		assert.True(t, ok, "step %d: (%d,%d)", i, di, dj)
	}
}
