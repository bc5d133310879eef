// Package grid maps sparse-matrix coordinates onto square 2D process grids.
//
// What:
//
//   - Config describes a candidate square layout (side length, process count).
//   - ProcGrid is one process's view of a grid it participates in; a nil
//     *ProcGrid means "not a participant" and every method is nil-safe.
//   - OwningRank and LocalTileShape are the pure geometry used by the
//     redistribution engine and the autotuner.
//
// Tiling rule:
//
//   - Nominal tile size along an axis is floor(dim / side).
//   - The last process row/column absorbs the remainder (TileEdgeAdjustment).
//   - Coordinates past the last nominal boundary belong to the last row/column,
//     so every coordinate has exactly one owner.
//
// Example, 10×10 matrix on a 3×3 grid:
//
//	      col 0   col 1   col 2
//	row 0  3×3     3×3     3×4
//	row 1  3×3     3×3     3×4
//	row 2  4×3     4×3     4×4
//
// Complexity: every function here is O(1).
package grid
