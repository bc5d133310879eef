// SPDX-License-Identifier: MIT

package grid

// NominalTile returns floor(dim / side), the tile length every rank gets
// along one axis before the edge adjustment.
func NominalTile(dim int64, side int) int64 {
	return dim / int64(side)
}

// TileEdgeAdjustment returns how many extra rows (or columns) the rank at
// index idx along one axis owns beyond the nominal tile. Only the last
// index (side-1) is adjusted; it absorbs dim - side*floor(dim/side).
//
// For a remainder of 0 or 1 this equals ceil(dim/side) - floor(dim/side).
// Larger remainders need the full remainder, otherwise the tail entries
// owned by the last rank would fall outside its tile.
func TileEdgeAdjustment(dim int64, side, idx int) int64 {
	if idx != side-1 {
		return 0
	}
	return dim - int64(side)*NominalTile(dim, side)
}

// TileOffset returns the first global coordinate along one axis owned by
// the rank at index idx.
func TileOffset(dim int64, side, idx int) int64 {
	return int64(idx) * NominalTile(dim, side)
}

// axisOwner returns the index along one axis that owns coordinate x.
// Coordinates beyond the last nominal boundary are clamped onto the last
// index; with a zero nominal tile the last index owns everything.
func axisOwner(x, dim int64, side int) int {
	t := NominalTile(dim, side)
	if t == 0 {
		return side - 1
	}
	idx := x / t
	if idx >= int64(side) {
		return side - 1
	}
	return int(idx)
}

// OwningRank returns the (row, col) grid coordinates of the rank owning
// global entry (globalRow, globalCol) of a totalRows×totalCols matrix on a
// gridSide×gridSide grid. Pure function, O(1).
func OwningRank(globalRow, globalCol, totalRows, totalCols int64, gridSide int) (rowRank, colRank int) {
	return axisOwner(globalRow, totalRows, gridSide), axisOwner(globalCol, totalCols, gridSide)
}

// RankOf maps grid coordinates to a row-major rank in a side×side grid.
func RankOf(row, col, side int) int {
	return row*side + col
}

// LocalTileShape returns the shape of the tile owned by the rank at
// (rowRank, colRank). A gridSide < 1 is the "no grid" sentinel and yields
// (0, 0): the caller holds an empty tile, not an error.
//
// The last process row gets the row remainder and the last process column
// gets the column remainder, independently.
func LocalTileShape(totalRows, totalCols int64, gridSide, rowRank, colRank int) (localRows, localCols int64) {
	if gridSide < 1 {
		return 0, 0
	}
	localRows = NominalTile(totalRows, gridSide) + TileEdgeAdjustment(totalRows, gridSide, rowRank)
	localCols = NominalTile(totalCols, gridSide) + TileEdgeAdjustment(totalCols, gridSide, colRank)

	return localRows, localCols
}

// TileShape is LocalTileShape for this process's membership; (0, 0) when g is nil.
func (g *ProcGrid) TileShape(totalRows, totalCols int64) (int64, int64) {
	if g == nil {
		return 0, 0
	}
	return LocalTileShape(totalRows, totalCols, g.side, g.RowRank(), g.ColRank())
}

// TileOrigin returns the global (row, col) of this process's tile origin.
func (g *ProcGrid) TileOrigin(totalRows, totalCols int64) (int64, int64) {
	if g == nil {
		return 0, 0
	}
	return TileOffset(totalRows, g.side, g.RowRank()), TileOffset(totalCols, g.side, g.ColRank())
}
