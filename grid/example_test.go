// SPDX-License-Identifier: MIT

package grid_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/spgemmtune/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: LocalTileShape
////////////////////////////////////////////////////////////////////////////////

// ExampleLocalTileShape shows the edge tiles of a 10×10 matrix on a 3×3
// grid: the nominal tile is 3×3 and the last process row and column absorb
// the remainder.
func ExampleLocalTileShape() {
	for r := 0; r < 3; r++ {
		var row []string
		for c := 0; c < 3; c++ {
			lr, lc := grid.LocalTileShape(10, 10, 3, r, c)
			row = append(row, fmt.Sprintf("%dx%d", lr, lc))
		}
		fmt.Println(strings.Join(row, " "))
	}

	// Output:
	// 3x3 3x3 3x4
	// 3x3 3x3 3x4
	// 4x3 4x3 4x4
}

////////////////////////////////////////////////////////////////////////////////
// Example: OwningRank
////////////////////////////////////////////////////////////////////////////////

// ExampleOwningRank locates global coordinates on the same 3×3 grid. Row 9
// lies past the last nominal boundary and is owned by the last process row.
func ExampleOwningRank() {
	for _, rc := range [][2]int64{{0, 0}, {4, 8}, {9, 4}} {
		pr, pc := grid.OwningRank(rc[0], rc[1], 10, 10, 3)
		fmt.Printf("(%d,%d) -> rank %d (%d,%d)\n", rc[0], rc[1], grid.RankOf(pr, pc, 3), pr, pc)
	}

	// Output:
	// (0,0) -> rank 0 (0,0)
	// (4,8) -> rank 5 (1,2)
	// (9,4) -> rank 7 (2,1)
}
