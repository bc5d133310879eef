// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/pkg/errors"
)

// Config describes one candidate parallel layout: a Side×Side grid of
// Procs processes spread over Nodes nodes at PPN processes per node.
// It is immutable once built; configs are ranked by predicted cost only.
type Config struct {
	Side  int // process rows (= process columns)
	Procs int // Side*Side
	PPN   int // processes per node
	Nodes int // ceil(Procs / PPN)
}

// NewConfig builds a Config for a side×side grid with ppn processes per node.
// Returns ErrBadSide if side < 1 and ErrBadPPN if ppn < 1.
func NewConfig(side, ppn int) (Config, error) {
	if side < 1 {
		return Config{}, ErrBadSide
	}
	if ppn < 1 {
		return Config{}, ErrBadPPN
	}
	procs := side * side

	return Config{
		Side:  side,
		Procs: procs,
		PPN:   ppn,
		Nodes: (procs + ppn - 1) / ppn,
	}, nil
}

// Validate reports whether c is what NewConfig(c.Side, c.PPN) would build.
// Hand-written literals may not be.
func (c Config) Validate() error {
	if c.Side < 1 {
		return errors.Wrapf(ErrBadSide, "config %+v", c)
	}
	if c.PPN < 1 {
		return errors.Wrapf(ErrBadPPN, "config %+v", c)
	}
	if c.Procs != c.Side*c.Side || c.Nodes != (c.Procs+c.PPN-1)/c.PPN {
		return errors.Wrapf(ErrBadConfig, "config %+v", c)
	}
	return nil
}

// LocalShape returns the nominal (floor) local tile shape of a rows×cols
// matrix under this config. Edge ranks get more, see LocalTileShape.
func (c Config) LocalShape(rows, cols int64) (int64, int64) {
	return NominalTile(rows, c.Side), NominalTile(cols, c.Side)
}

// String renders the config in the "nodes,ppn" form used by prediction logs.
func (c Config) String() string {
	return fmt.Sprintf("%d,%d (%dx%d)", c.Nodes, c.PPN, c.Side, c.Side)
}

// ProcGrid is this process's membership in a square process grid.
// A nil *ProcGrid represents a process that does not participate.
type ProcGrid struct {
	side int
	rank int
}

// NewProcGrid returns the grid handle for the process at row-major
// position rank in a side×side grid.
func NewProcGrid(side, rank int) (*ProcGrid, error) {
	if side < 1 {
		return nil, ErrBadSide
	}
	if rank < 0 || rank >= side*side {
		return nil, errors.Wrapf(ErrRankOutOfRange, "NewProcGrid: rank=%d side=%d", rank, side)
	}

	return &ProcGrid{side: side, rank: rank}, nil
}

// Participates reports whether g is a real grid membership.
func (g *ProcGrid) Participates() bool { return g != nil }

// Side returns the grid side length, 0 for a non-participant.
func (g *ProcGrid) Side() int {
	if g == nil {
		return 0
	}
	return g.side
}

// Size returns the number of ranks in the grid, 0 for a non-participant.
func (g *ProcGrid) Size() int {
	if g == nil {
		return 0
	}
	return g.side * g.side
}

// Rank returns this process's rank within the grid, -1 for a non-participant.
func (g *ProcGrid) Rank() int {
	if g == nil {
		return -1
	}
	return g.rank
}

// RowRank returns the process row index, -1 for a non-participant.
func (g *ProcGrid) RowRank() int {
	if g == nil {
		return -1
	}
	return g.rank / g.side
}

// ColRank returns the process column index, -1 for a non-participant.
func (g *ProcGrid) ColRank() int {
	if g == nil {
		return -1
	}
	return g.rank % g.side
}

// RankOf maps (row, col) grid coordinates to a row-major rank.
func (g *ProcGrid) RankOf(row, col int) int {
	return RankOf(row, col, g.Side())
}

// String renders the handle for logs.
func (g *ProcGrid) String() string {
	if g == nil {
		return "grid(none)"
	}
	return fmt.Sprintf("grid(%dx%d rank=%d at %d,%d)", g.side, g.side, g.rank, g.RowRank(), g.ColRank())
}
