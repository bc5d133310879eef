package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spgemmtune/sparse"
)

// TestRandom_Deterministic locks the output for a fixed seed and checks bounds.
func TestRandom_Deterministic(t *testing.T) {
	a, err := sparse.Random(50, 40, 0.1, sparse.WithSeed(7))
	require.NoError(t, err)
	b, err := sparse.Random(50, 40, 0.1, sparse.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, a, b)

	require.InDelta(t, 200, len(a), 80) // 2000 cells at 10%
	seen := map[[2]int64]bool{}
	for _, tr := range a {
		require.True(t, tr.Row >= 0 && tr.Row < 50 && tr.Col >= 0 && tr.Col < 40)
		key := [2]int64{tr.Row, tr.Col}
		require.False(t, seen[key], "duplicate cell %v", key)
		seen[key] = true
	}
}

func TestRandom_Extremes(t *testing.T) {
	none, err := sparse.Random(5, 5, 0)
	require.NoError(t, err)
	require.Empty(t, none)

	full, err := sparse.Random(3, 4, 1)
	require.NoError(t, err)
	require.Len(t, full, 12)
}

func TestRandom_Errors(t *testing.T) {
	_, err := sparse.Random(5, 5, 1.5, sparse.WithSeed(1))
	require.ErrorIs(t, err, sparse.ErrInvalidProbability)

	_, err = sparse.Random(5, 5, 0.5)
	require.ErrorIs(t, err, sparse.ErrNeedRandSource)

	_, err = sparse.Random(-1, 5, 0.5, sparse.WithSeed(1))
	require.ErrorIs(t, err, sparse.ErrBadShape)
}

// TestPermute_RoundTrip applies a permutation and its inverse.
func TestPermute_RoundTrip(t *testing.T) {
	in, err := sparse.Random(20, 20, 0.2, sparse.WithSeed(3))
	require.NoError(t, err)
	perm, err := sparse.RandPerm(20, sparse.WithSeed(4))
	require.NoError(t, err)

	inv := make([]int64, len(perm))
	for i, p := range perm {
		inv[p] = int64(i)
	}
	fwd, err := sparse.Permute(in, perm)
	require.NoError(t, err)
	back, err := sparse.Permute(fwd, inv)
	require.NoError(t, err)
	require.Equal(t, in, back)

	_, err = sparse.Permute(in, []int64{0, 0})
	require.ErrorIs(t, err, sparse.ErrBadPermutation)
}

func TestSampleColumns(t *testing.T) {
	all, err := sparse.SampleColumns(4, 0)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 2, 3}, all)

	s, err := sparse.SampleColumns(100, 10, sparse.WithSeed(9))
	require.NoError(t, err)
	require.Len(t, s, 10)
	require.IsIncreasing(t, s)

	_, err = sparse.SampleColumns(100, 10)
	require.ErrorIs(t, err, sparse.ErrNeedRandSource)
}
