package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spgemmtune/sparse"
)

func mustTile(t *testing.T, tr []sparse.Triple, rows, cols int64) *sparse.Tile {
	t.Helper()
	tile, err := sparse.NewTile(tr, rows, cols, false)
	require.NoError(t, err)
	return tile
}

// TestSymbolicProduct_Small checks flops and output nnz against a hand count.
//
//	A = [1 1]   B = [1 0]   A·B = [2 1]
//	    [0 1]       [1 1]         [1 1]
func TestSymbolicProduct_Small(t *testing.T) {
	a := mustTile(t, []sparse.Triple{{0, 0, 1}, {0, 1, 1}, {1, 1, 1}}, 2, 2)
	b := mustTile(t, []sparse.Triple{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}}, 2, 2)

	s, err := sparse.SymbolicProduct(a, b, nil)
	require.NoError(t, err)
	require.Equal(t, sparse.ProductSample{Flops: 5, OutNnz: 4, ANnz: 3, BNnz: 3}, s)

	s, err = sparse.SymbolicProduct(a, b, []int64{1})
	require.NoError(t, err)
	require.Equal(t, sparse.ProductSample{Flops: 2, OutNnz: 2, ANnz: 2, BNnz: 1}, s)
}

// TestSymbolicProduct_RaggedInner skips B rows beyond A's column count.
func TestSymbolicProduct_RaggedInner(t *testing.T) {
	a := mustTile(t, []sparse.Triple{{0, 0, 1}}, 1, 1)
	b := mustTile(t, []sparse.Triple{{0, 0, 1}, {1, 0, 1}}, 2, 1)

	s, err := sparse.SymbolicProduct(a, b, nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), s.Flops)
	require.Equal(t, int64(1), s.BNnz)
}

func TestSymbolicProduct_Errors(t *testing.T) {
	a := mustTile(t, []sparse.Triple{{0, 0, 1}}, 1, 1)
	_, err := sparse.SymbolicProduct(nil, a, nil)
	require.ErrorIs(t, err, sparse.ErrNilTile)
	_, err = sparse.SymbolicProduct(a, a, []int64{3})
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}
