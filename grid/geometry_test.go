package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spgemmtune/grid"
)

// TestLocalTileShape_EdgeTile checks the 10×10 on 3×3 layout: only the last
// row and column absorb the remainder.
func TestLocalTileShape_EdgeTile(t *testing.T) {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			rows, cols := grid.LocalTileShape(10, 10, 3, r, c)
			wantR, wantC := int64(3), int64(3)
			if r == 2 {
				wantR = 4
			}
			if c == 2 {
				wantC = 4
			}
			require.Equal(t, wantR, rows, "rows at (%d,%d)", r, c)
			require.Equal(t, wantC, cols, "cols at (%d,%d)", r, c)
		}
	}
}

// TestLocalTileShape_NoGrid verifies the non-participant sentinel.
func TestLocalTileShape_NoGrid(t *testing.T) {
	rows, cols := grid.LocalTileShape(10, 10, 0, 0, 0)
	require.Zero(t, rows)
	require.Zero(t, cols)

	var g *grid.ProcGrid
	rows, cols = g.TileShape(10, 10)
	require.Zero(t, rows)
	require.Zero(t, cols)
}

// TestTileEdgeAdjustment_Remainder covers remainders of 0, 1 and >1.
func TestTileEdgeAdjustment_Remainder(t *testing.T) {
	cases := []struct {
		name string
		dim  int64
		side int
		want int64
	}{
		{"Divisible", 12, 3, 0},
		{"RemainderOne", 10, 3, 1},
		{"RemainderTwo", 11, 3, 2},
		{"DimBelowSide", 2, 4, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, grid.TileEdgeAdjustment(tc.dim, tc.side, tc.side-1))
			require.Zero(t, grid.TileEdgeAdjustment(tc.dim, tc.side, 0))
		})
	}
}

// TestOwningRank_CoversEveryCoordinate asserts that the owner of each
// coordinate contains it inside its tile, for divisible and ragged shapes.
func TestOwningRank_CoversEveryCoordinate(t *testing.T) {
	shapes := []struct {
		rows, cols int64
		side       int
	}{
		{12, 12, 3}, {10, 10, 3}, {11, 7, 3}, {3, 5, 4}, {16, 16, 4}, {9, 9, 1},
	}
	for _, sh := range shapes {
		for i := int64(0); i < sh.rows; i++ {
			for j := int64(0); j < sh.cols; j++ {
				pr, pc := grid.OwningRank(i, j, sh.rows, sh.cols, sh.side)
				require.GreaterOrEqual(t, pr, 0)
				require.Less(t, pr, sh.side)
				require.GreaterOrEqual(t, pc, 0)
				require.Less(t, pc, sh.side)

				r0 := grid.TileOffset(sh.rows, sh.side, pr)
				c0 := grid.TileOffset(sh.cols, sh.side, pc)
				lr, lc := grid.LocalTileShape(sh.rows, sh.cols, sh.side, pr, pc)
				require.True(t, i >= r0 && i < r0+lr, "row %d outside tile %d of %v", i, pr, sh)
				require.True(t, j >= c0 && j < c0+lc, "col %d outside tile %d of %v", j, pc, sh)
			}
		}
	}
}

// TestLocalTileShape_SumsToDimension checks tiles partition each axis exactly.
func TestLocalTileShape_SumsToDimension(t *testing.T) {
	for _, dim := range []int64{1, 7, 10, 11, 1000} {
		for side := 1; side <= 5; side++ {
			var sumR, sumC int64
			for k := 0; k < side; k++ {
				r, _ := grid.LocalTileShape(dim, dim, side, k, 0)
				_, c := grid.LocalTileShape(dim, dim, side, 0, k)
				sumR += r
				sumC += c
			}
			require.Equal(t, dim, sumR, "dim=%d side=%d", dim, side)
			require.Equal(t, dim, sumC, "dim=%d side=%d", dim, side)
		}
	}
}
