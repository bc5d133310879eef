// SPDX-License-Identifier: MIT

package sparse

import (
	"cmp"
	"math"
	"slices"

	"github.com/pkg/errors"
)

// Triple is one non-zero entry. Coordinates are local to the tile that
// holds it unless stated otherwise.
type Triple struct {
	Row int64
	Col int64
	Val float64
}

// compareColMajor orders triples by column, then row.
func compareColMajor(a, b Triple) int {
	if c := cmp.Compare(a.Col, b.Col); c != 0 {
		return c
	}
	return cmp.Compare(a.Row, b.Row)
}

// Tile is a rank's local block of a distributed sparse matrix.
// It is immutable once built.
type Tile struct {
	rows, cols int64
	data       []Triple // column-major order
	colPtr     []int    // len cols+1; nil for the 0×0 tile
}

// NewTile builds a rows×cols tile from triples.
// Implementation:
//   - Stage 1: validate the shape and every triple (bounds, finite value).
//   - Stage 2: copy the triples; keep caller order if sorted is set and the
//     copy really is column-major, otherwise sort it.
//
// The sorted flag is a hint: a wrong hint costs one O(n) check and a sort,
// never a malformed tile.
//
// Errors:
//   - ErrBadShape for rows<0 or cols<0.
//   - ErrOutOfRange for a triple outside [0,rows)×[0,cols).
//   - ErrNaNInf for a non-finite value.
//
// Complexity: O(n + cols) with a correct hint, O(n log n + cols) otherwise.
func NewTile(triples []Triple, rows, cols int64, sorted bool) (*Tile, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(ErrBadShape, "NewTile: %dx%d", rows, cols)
	}
	for i, t := range triples {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, errors.Wrapf(ErrOutOfRange, "NewTile: triple %d at (%d,%d) in %dx%d", i, t.Row, t.Col, rows, cols)
		}
		if math.IsNaN(t.Val) || math.IsInf(t.Val, 0) {
			return nil, errors.Wrapf(ErrNaNInf, "NewTile: triple %d at (%d,%d)", i, t.Row, t.Col)
		}
	}

	data := slices.Clone(triples)
	if !sorted || !slices.IsSortedFunc(data, compareColMajor) {
		slices.SortFunc(data, compareColMajor)
	}

	return &Tile{rows: rows, cols: cols, data: data, colPtr: columnPointers(data, cols)}, nil
}

// EmptyTile returns the 0×0 tile held by non-participating ranks.
func EmptyTile() *Tile {
	return &Tile{}
}

// Rows returns the local row count.
func (t *Tile) Rows() int64 { return t.rows }

// Cols returns the local column count.
func (t *Tile) Cols() int64 { return t.cols }

// Nnz returns the number of stored triples.
func (t *Tile) Nnz() int { return len(t.data) }

// Triples returns a copy of the stored triples in column-major order.
func (t *Tile) Triples() []Triple {
	return slices.Clone(t.data)
}

// Each calls fn for every triple in column-major order; the col argument is
// the column the iteration is currently in. Returning false stops early.
func (t *Tile) Each(fn func(row, col int64, val float64) bool) {
	for _, e := range t.data {
		if !fn(e.Row, e.Col, e.Val) {
			return
		}
	}
}

// Column returns the triples of local column j (shared, do not modify).
func (t *Tile) Column(j int64) []Triple {
	if j < 0 || j >= t.cols {
		return nil
	}
	return t.data[t.colPtr[j]:t.colPtr[j+1]]
}

// ColumnNnz returns the number of entries in local column j.
func (t *Tile) ColumnNnz(j int64) int {
	return len(t.Column(j))
}

// columnPointers returns the CSC-style offsets of each column in data,
// which must be column-major.
func columnPointers(data []Triple, cols int64) []int {
	ptr := make([]int, cols+1)
	for _, e := range data {
		ptr[e.Col+1]++
	}
	for j := int64(0); j < cols; j++ {
		ptr[j+1] += ptr[j]
	}
	return ptr
}
