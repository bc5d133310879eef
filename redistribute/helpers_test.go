package redistribute_test

import (
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/spgemmtune/comm"
	"github.com/katalvlaran/spgemmtune/distmat"
	"github.com/katalvlaran/spgemmtune/grid"
	"github.com/katalvlaran/spgemmtune/redistribute"
	"github.com/katalvlaran/spgemmtune/sparse"
)

var sortTriples = cmpopts.SortSlices(func(a, b sparse.Triple) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	if a.Col != b.Col {
		return a.Col < b.Col
	}
	return a.Val < b.Val
})

// gridFor returns the row-major membership of rank in a side×side grid, or
// nil when rank lies outside it.
func gridFor(side, rank int) (*grid.ProcGrid, error) {
	if rank >= side*side {
		return nil, nil
	}
	return grid.NewProcGrid(side, rank)
}

// reshape distributes global over srcSide, redistributes to dstSide inside
// a world of size ranks and returns both handles per rank.
func reshape(size int, rows, cols int64, global []sparse.Triple, srcSide, dstSide int) (before, after []*distmat.Matrix, err error) {
	before = make([]*distmat.Matrix, size)
	after = make([]*distmat.Matrix, size)
	srcCfg, err := grid.NewConfig(srcSide, 1)
	if err != nil {
		return nil, nil, err
	}
	dstCfg, err := grid.NewConfig(dstSide, 1)
	if err != nil {
		return nil, nil, err
	}
	eng := redistribute.New()

	err = comm.Run(size, func(c comm.Communicator) error {
		src, err := gridFor(srcSide, c.Rank())
		if err != nil {
			return err
		}
		dst, err := gridFor(dstSide, c.Rank())
		if err != nil {
			return err
		}
		m, err := distmat.FromGlobal(src, rows, cols, global)
		if err != nil {
			return err
		}
		before[c.Rank()] = m
		out, err := eng.Matrix(c, m, srcCfg, dst, dstCfg)
		if err != nil {
			return err
		}
		after[c.Rank()] = out
		return nil
	})

	return before, after, err
}

// union collects every rank's entries in global coordinates.
func union(ms []*distmat.Matrix) []sparse.Triple {
	var all []sparse.Triple
	for _, m := range ms {
		all = append(all, m.GlobalTriples()...)
	}
	return all
}
