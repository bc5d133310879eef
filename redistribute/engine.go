// SPDX-License-Identifier: MIT

package redistribute

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/spgemmtune/comm"
	"github.com/katalvlaran/spgemmtune/distmat"
	"github.com/katalvlaran/spgemmtune/grid"
	"github.com/katalvlaran/spgemmtune/sparse"
)

// Engine runs redistributions. It holds no per-call state and may be
// shared by every rank of a world.
type Engine struct {
	opts options
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	return &Engine{opts: gatherOptions(opts...)}
}

// fail aborts c with err so that every rank stops, and returns err.
func fail(c comm.Communicator, err error) error {
	c.Abort(err)
	return err
}

// Redistribute moves this rank's source tile from srcGrid (shaped by
// srcCfg) onto dstGrid (shaped by dstCfg) and returns the new local tile.
// A nil srcGrid means this rank contributes nothing; a nil dstGrid means it
// receives nothing and gets an empty 0×0 tile. Collective over c.
//
// Errors:
//   - grid.ErrBadSide, grid.ErrBadPPN or grid.ErrBadConfig for a malformed config.
//   - ErrNilTile if a participating rank passes a nil tile.
//   - ErrDimensionDisagreement if tiles or grid sides disagree across ranks.
//   - ErrRankTable if the target grid is not occupied exactly once per slot.
//   - comm errors from the underlying collectives.
//
// Any error aborts c.
func (e *Engine) Redistribute(
	c comm.Communicator,
	src *sparse.Tile, srcGrid *grid.ProcGrid, srcCfg grid.Config,
	dstGrid *grid.ProcGrid, dstCfg grid.Config,
) (*sparse.Tile, error) {
	log := comm.RankLogger(e.opts.log, c)

	if err := srcCfg.Validate(); err != nil {
		return nil, fail(c, errors.Wrap(err, "redistribute: source"))
	}
	if err := dstCfg.Validate(); err != nil {
		return nil, fail(c, errors.Wrap(err, "redistribute: target"))
	}
	if srcGrid.Participates() && src == nil {
		return nil, fail(c, errors.Wrapf(ErrNilTile, "rank %d", c.Rank()))
	}
	if !srcGrid.Participates() {
		src = sparse.EmptyTile()
	}

	// Stage 1: global shape, needed before any destination is computed.
	rows, cols, err := agreeDimensions(c, src, srcGrid, srcCfg, dstGrid, dstCfg)
	if err != nil {
		return nil, err
	}

	// Stage 2: logical target rank -> communicator rank.
	table, err := buildRankTable(c, dstGrid, dstCfg)
	if err != nil {
		return nil, err
	}

	dir := DirectionOf(srcCfg.Side, dstCfg.Side)
	log.WithFields(logrus.Fields{
		"rows": rows, "cols": cols, "from": srcCfg.Side, "to": dstCfg.Side, "direction": dir,
	}).Debug("redistribute: start")

	// Stage 3: route every local entry.
	buckets := bucket(src, srcGrid, rows, cols, dstCfg.Side, table, c.Size(), log)

	// Stage 4: flatten and exchange.
	sendBuf, counts, displs := buckets.flatten()
	log.WithFields(logrus.Fields{"sendCounts": counts, "sendDispls": displs}).Debug("redistribute: send layout")

	recv, recvCounts, recvDispls, err := comm.Alltoallv(c, sendBuf, counts, displs)
	if err != nil {
		return nil, errors.Wrap(err, "redistribute: exchange")
	}
	log.WithFields(logrus.Fields{"recvCounts": recvCounts, "recvDispls": recvDispls}).Debug("redistribute: recv layout")

	// Stage 5: rebuild the local tile on the target grid.
	if !dstGrid.Participates() {
		if len(recv) != 0 {
			return nil, fail(c, errors.Wrapf(ErrRankTable, "rank %d outside target grid received %d entries", c.Rank(), len(recv)))
		}
		return sparse.EmptyTile(), nil
	}
	lr, lc := dstGrid.TileShape(rows, cols)
	tile, err := sparse.NewTile(recv, lr, lc, dir == Shrink)
	if err != nil {
		return nil, fail(c, errors.Wrapf(err, "redistribute: rebuild on %s", dstGrid))
	}

	return tile, nil
}

// Matrix redistributes m onto dstGrid and wraps the result in a new
// handle. Collective over c.
func (e *Engine) Matrix(c comm.Communicator, m *distmat.Matrix, srcCfg grid.Config, dstGrid *grid.ProcGrid, dstCfg grid.Config) (*distmat.Matrix, error) {
	tile, err := e.Redistribute(c, m.Local, m.Grid, srcCfg, dstGrid, dstCfg)
	if err != nil {
		return nil, err
	}
	out, err := distmat.New(m.Rows, m.Cols, dstGrid, tile)
	if err != nil {
		return nil, fail(c, err)
	}
	return out, nil
}

// agreeDimensions recovers the global shape from local tile shapes and
// checks every rank against it.
//
// Summing local row counts over all ranks counts every matrix row once per
// process column, so the sum divided by the source side is the global row
// count; columns likewise. Non-participants contribute zero.
func agreeDimensions(
	c comm.Communicator, src *sparse.Tile,
	srcGrid *grid.ProcGrid, srcCfg grid.Config,
	dstGrid *grid.ProcGrid, dstCfg grid.Config,
) (rows, cols int64, err error) {
	var participant int64
	if srcGrid.Participates() {
		participant = 1
	}
	sum := []int64{src.Rows(), src.Cols(), participant}
	if err = c.AllreduceInt64(comm.OpSum, sum); err != nil {
		return 0, 0, err
	}

	side := int64(srcCfg.Side)
	if side < 1 || sum[2] != side*side || sum[0]%side != 0 || sum[1]%side != 0 {
		return 0, 0, fail(c, errors.Wrapf(ErrDimensionDisagreement,
			"source side %d: %d participants, row sum %d, col sum %d", side, sum[2], sum[0], sum[1]))
	}
	rows, cols = sum[0]/side, sum[1]/side

	// Local checks, made collective: a bad tile or a grid handle that does
	// not match its config on any rank fails every rank.
	var bad int64
	if srcGrid.Participates() {
		lr, lc := srcGrid.TileShape(rows, cols)
		if srcGrid.Side() != srcCfg.Side || src.Rows() != lr || src.Cols() != lc {
			bad = 1
		}
	}
	if dstGrid.Participates() && dstGrid.Side() != dstCfg.Side {
		bad = 1
	}
	hi := []int64{bad, int64(srcCfg.Side), int64(dstCfg.Side)}
	low := []int64{int64(srcCfg.Side), int64(dstCfg.Side)}
	if err = c.AllreduceInt64(comm.OpMax, hi); err != nil {
		return 0, 0, err
	}
	if err = c.AllreduceInt64(comm.OpMin, low); err != nil {
		return 0, 0, err
	}
	if hi[0] != 0 || hi[1] != low[0] || hi[2] != low[1] {
		return 0, 0, fail(c, errors.Wrapf(ErrDimensionDisagreement,
			"global %dx%d: bad-tile flag %d, source side %d..%d, target side %d..%d",
			rows, cols, hi[0], low[0], hi[1], low[1], hi[2]))
	}

	return rows, cols, nil
}

// buildRankTable fills the target grid's translation table with one
// sum-reduction. Each participant writes rank+1 into its slot and 1 into
// the slot's contributor count; zero therefore means "nobody".
func buildRankTable(c comm.Communicator, dstGrid *grid.ProcGrid, dstCfg grid.Config) (RankTable, error) {
	procs := dstCfg.Procs
	buf := make([]int64, 2*procs)
	if dstGrid.Participates() {
		slot := dstGrid.Rank()
		buf[slot] = int64(c.Rank()) + 1
		buf[procs+slot] = 1
	}
	if err := c.AllreduceInt64(comm.OpSum, buf); err != nil {
		return nil, err
	}

	table := make(RankTable, procs)
	for slot := 0; slot < procs; slot++ {
		if n := buf[procs+slot]; n != 1 {
			return nil, fail(c, errors.Wrapf(ErrRankTable, "slot %d has %d contributors", slot, n))
		}
		table[slot] = int(buf[slot] - 1)
	}

	return table, nil
}

// axisShift is the change of a local coordinate along one axis when an
// entry moves from the tile at index si of a srcSide grid to the tile at
// index di of a dstSide grid: srcOffset - dstOffset.
//
// Shrinking, the destination tile starts at or before the source tile and
// the shift is the sender's offset inside the merged tile (added). Growing,
// the destination sub-tile starts at or after the source tile and the shift
// is minus that sub-tile's offset inside the sender's tile (subtracted).
func axisShift(dim int64, srcSide, si, dstSide, di int) int64 {
	return grid.TileOffset(dim, srcSide, si) - grid.TileOffset(dim, dstSide, di)
}

// bucket routes each local entry of src to the communicator rank that owns
// it in the target grid, with coordinates already relative to that rank's
// tile. Non-participants produce empty buckets.
func bucket(
	src *sparse.Tile, srcGrid *grid.ProcGrid,
	rows, cols int64, dstSide int, table RankTable, size int,
	log logrus.FieldLogger,
) sendBuckets {
	buckets := make(sendBuckets, size)
	if !srcGrid.Participates() {
		return buckets
	}

	srcSide := srcGrid.Side()
	sr, sc := srcGrid.RowRank(), srcGrid.ColRank()
	r0, c0 := srcGrid.TileOrigin(rows, cols)
	log.WithFields(logrus.Fields{"rowOffset": r0, "colOffset": c0}).Debug("redistribute: source tile origin")

	src.Each(func(row, col int64, val float64) bool {
		dr, dc := grid.OwningRank(row+r0, col+c0, rows, cols, dstSide)
		dest := table.Lookup(grid.RankOf(dr, dc, dstSide))
		buckets[dest] = append(buckets[dest], sparse.Triple{
			Row: row + axisShift(rows, srcSide, sr, dstSide, dr),
			Col: col + axisShift(cols, srcSide, sc, dstSide, dc),
			Val: val,
		})
		return true
	})

	return buckets
}
