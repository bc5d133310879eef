// SPDX-License-Identifier: MIT

package redistribute_test

import (
	"fmt"

	"github.com/katalvlaran/spgemmtune/comm"
	"github.com/katalvlaran/spgemmtune/distmat"
	"github.com/katalvlaran/spgemmtune/grid"
	"github.com/katalvlaran/spgemmtune/redistribute"
	"github.com/katalvlaran/spgemmtune/sparse"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Engine.Matrix (shrink)
////////////////////////////////////////////////////////////////////////////////

// ExampleEngine_Matrix shrinks a 4×4 diagonal matrix from a 2×2 grid onto
// a single rank. Each source rank shifts its entries by its own tile
// offset, so the receiver sees global coordinates.
func ExampleEngine_Matrix() {
	global := []sparse.Triple{
		{Row: 0, Col: 0, Val: 1},
		{Row: 1, Col: 1, Val: 2},
		{Row: 2, Col: 2, Val: 3},
		{Row: 3, Col: 3, Val: 4},
	}
	srcCfg, _ := grid.NewConfig(2, 1)
	dstCfg, _ := grid.NewConfig(1, 1)

	var root *distmat.Matrix
	err := comm.Run(4, func(c comm.Communicator) error {
		src, err := grid.NewProcGrid(2, c.Rank())
		if err != nil {
			return err
		}
		m, err := distmat.FromGlobal(src, 4, 4, global)
		if err != nil {
			return err
		}
		var dst *grid.ProcGrid
		if c.Rank() == comm.Root {
			if dst, err = grid.NewProcGrid(1, 0); err != nil {
				return err
			}
		}
		out, err := redistribute.New().Matrix(c, m, srcCfg, dst, dstCfg)
		if c.Rank() == comm.Root {
			root = out
		}
		return err
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("tile %dx%d, nnz %d\n", root.Local.Rows(), root.Local.Cols(), root.Local.Nnz())
	root.Local.Each(func(row, col int64, val float64) bool {
		fmt.Printf("(%d,%d)=%g\n", row, col, val)
		return true
	})

	// Output:
	// tile 4x4, nnz 4
	// (0,0)=1
	// (1,1)=2
	// (2,2)=3
	// (3,3)=4
}
