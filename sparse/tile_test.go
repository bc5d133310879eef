package sparse_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spgemmtune/sparse"
)

// TestNewTile_SortsColumnMajor checks that an unsorted input is reordered.
func TestNewTile_SortsColumnMajor(t *testing.T) {
	in := []sparse.Triple{{Row: 1, Col: 1, Val: 4}, {Row: 0, Col: 1, Val: 3}, {Row: 2, Col: 0, Val: 1}}
	tile, err := sparse.NewTile(in, 3, 2, false)
	require.NoError(t, err)
	require.Equal(t, []sparse.Triple{
		{Row: 2, Col: 0, Val: 1},
		{Row: 0, Col: 1, Val: 3},
		{Row: 1, Col: 1, Val: 4},
	}, tile.Triples())
	require.Equal(t, sparse.Triple{Row: 1, Col: 1, Val: 4}, in[0]) // input untouched
}

// TestNewTile_WrongSortedHint ensures a false hint cannot corrupt order.
func TestNewTile_WrongSortedHint(t *testing.T) {
	in := []sparse.Triple{{Row: 0, Col: 1, Val: 1}, {Row: 0, Col: 0, Val: 2}}
	tile, err := sparse.NewTile(in, 1, 2, true)
	require.NoError(t, err)
	require.Equal(t, int64(0), tile.Triples()[0].Col)
}

func TestNewTile_Errors(t *testing.T) {
	_, err := sparse.NewTile(nil, -1, 2, false)
	require.ErrorIs(t, err, sparse.ErrBadShape)

	_, err = sparse.NewTile([]sparse.Triple{{Row: 2, Col: 0, Val: 1}}, 2, 2, false)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	_, err = sparse.NewTile([]sparse.Triple{{Row: 0, Col: 0, Val: math.NaN()}}, 2, 2, false)
	require.ErrorIs(t, err, sparse.ErrNaNInf)
}

// TestTile_ColumnAndEach verifies column slicing and iteration order.
func TestTile_ColumnAndEach(t *testing.T) {
	tile, err := sparse.NewTile([]sparse.Triple{
		{Row: 0, Col: 2, Val: 1}, {Row: 1, Col: 0, Val: 2}, {Row: 2, Col: 2, Val: 3},
	}, 3, 3, false)
	require.NoError(t, err)

	require.Equal(t, 1, tile.ColumnNnz(0))
	require.Equal(t, 0, tile.ColumnNnz(1))
	require.Equal(t, 2, tile.ColumnNnz(2))
	require.Nil(t, tile.Column(5))

	var cols []int64
	tile.Each(func(_, col int64, _ float64) bool {
		cols = append(cols, col)
		return true
	})
	require.Equal(t, []int64{0, 2, 2}, cols)

	n := 0
	tile.Each(func(_, _ int64, _ float64) bool {
		n++
		return false
	})
	require.Equal(t, 1, n)
}

// TestTile_ConcurrentReaders reads one shared tile from many goroutines.
func TestTile_ConcurrentReaders(t *testing.T) {
	tile, err := sparse.NewTile([]sparse.Triple{
		{Row: 0, Col: 0, Val: 1}, {Row: 1, Col: 1, Val: 2}, {Row: 2, Col: 1, Val: 3},
	}, 3, 2, false)
	require.NoError(t, err)

	var wg sync.WaitGroup
	counts := make([][2]int, 8)
	for i := range counts {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			counts[i] = [2]int{len(tile.Column(0)), tile.ColumnNnz(1)}
		}()
	}
	wg.Wait()
	for i := range counts {
		require.Equal(t, [2]int{1, 2}, counts[i], "reader %d", i)
	}
}

func TestEmptyTile(t *testing.T) {
	e := sparse.EmptyTile()
	require.Zero(t, e.Rows())
	require.Zero(t, e.Cols())
	require.Zero(t, e.Nnz())
	require.Nil(t, e.Column(0))
}
