// SPDX-License-Identifier: MIT

package distmat

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/katalvlaran/spgemmtune/comm"
	"github.com/katalvlaran/spgemmtune/grid"
	"github.com/katalvlaran/spgemmtune/sparse"
)

// Matrix is one rank's view of a distributed sparse matrix.
type Matrix struct {
	Rows, Cols int64
	Grid       *grid.ProcGrid // nil: this rank holds no part of the matrix
	Local      *sparse.Tile
}

// New wraps an existing local tile. The tile shape must equal the grid's
// LocalTileShape for this rank (0×0 for a non-participant).
func New(rows, cols int64, g *grid.ProcGrid, local *sparse.Tile) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(ErrBadDimensions, "New: %dx%d", rows, cols)
	}
	if local == nil {
		local = sparse.EmptyTile()
	}
	lr, lc := g.TileShape(rows, cols)
	if local.Rows() != lr || local.Cols() != lc {
		return nil, errors.Wrapf(ErrShapeMismatch, "New: tile %dx%d, %s expects %dx%d",
			local.Rows(), local.Cols(), g, lr, lc)
	}

	return &Matrix{Rows: rows, Cols: cols, Grid: g, Local: local}, nil
}

// FromGlobal builds this rank's share of a rows×cols matrix from the full
// global triple list. Every rank is expected to hold the same list (for
// example generated from a shared seed); no communication happens.
func FromGlobal(g *grid.ProcGrid, rows, cols int64, global []sparse.Triple) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(ErrBadDimensions, "FromGlobal: %dx%d", rows, cols)
	}
	if !g.Participates() {
		return New(rows, cols, nil, nil)
	}

	r0, c0 := g.TileOrigin(rows, cols)
	lr, lc := g.TileShape(rows, cols)
	var mine []sparse.Triple
	for _, t := range global {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, errors.Wrapf(ErrOutOfRange, "FromGlobal: (%d,%d) in %dx%d", t.Row, t.Col, rows, cols)
		}
		pr, pc := grid.OwningRank(t.Row, t.Col, rows, cols, g.Side())
		if pr != g.RowRank() || pc != g.ColRank() {
			continue
		}
		mine = append(mine, sparse.Triple{Row: t.Row - r0, Col: t.Col - c0, Val: t.Val})
	}
	local, err := sparse.NewTile(mine, lr, lc, false)
	if err != nil {
		return nil, errors.Wrap(err, "FromGlobal")
	}

	return New(rows, cols, g, local)
}

// GlobalTriples returns the local entries translated to global coordinates.
func (m *Matrix) GlobalTriples() []sparse.Triple {
	r0, c0 := m.Grid.TileOrigin(m.Rows, m.Cols)
	return lo.Map(m.Local.Triples(), func(t sparse.Triple, _ int) sparse.Triple {
		return sparse.Triple{Row: t.Row + r0, Col: t.Col + c0, Val: t.Val}
	})
}

// Nnz returns the global non-zero count. Collective over c.
func (m *Matrix) Nnz(c comm.Communicator) (int64, error) {
	buf := []int64{int64(m.Local.Nnz())}
	if err := c.AllreduceInt64(comm.OpSum, buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// Gather collects every rank's entries, in global coordinates, on the root
// rank. Other ranks get nil. Collective over c.
func (m *Matrix) Gather(c comm.Communicator) ([]sparse.Triple, error) {
	mine := m.GlobalTriples()
	counts := make([]int, c.Size())
	counts[comm.Root] = len(mine)

	all, _, _, err := comm.Alltoallv(c, mine, counts, make([]int, c.Size()))
	if err != nil {
		return nil, err
	}
	if c.Rank() != comm.Root {
		return nil, nil
	}

	return all, nil
}
