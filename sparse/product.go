// SPDX-License-Identifier: MIT

package sparse

import "github.com/pkg/errors"

// ProductSample summarizes the symbolic product A·B[:, sample].
type ProductSample struct {
	Flops  int64 // scalar multiply-adds
	OutNnz int64 // distinct non-zeros of the sampled output columns
	ANnz   int64 // non-zeros of the A columns the sample touches
	BNnz   int64 // non-zeros of the sampled B columns
}

// Add accumulates o into s.
func (s *ProductSample) Add(o ProductSample) {
	s.Flops += o.Flops
	s.OutNnz += o.OutNnz
	s.ANnz += o.ANnz
	s.BNnz += o.BNnz
}

// SymbolicProduct counts the work and output size of A·B restricted to the
// columns of B listed in sample (nil means every column). Values are never
// multiplied; only structure is inspected.
//
// Implementation:
//   - Stage 1: for each sampled column j of B, walk its entries (k, j).
//   - Stage 2: for each such k, walk column k of A, counting one flop per
//     entry and marking its row in a stamp array; first marks are output nnz.
//   - Stage 3: A columns are counted towards ANnz once, on first touch.
//
// The inner dimension is min(a.Cols(), b.Rows()); entries of B beyond it are
// skipped so that ragged edge tiles can still be paired.
//
// Complexity: O(flops + |sample| + a.Rows() + a.Cols()) time, O(a.Rows() + a.Cols()) space.
func SymbolicProduct(a, b *Tile, sample []int64) (ProductSample, error) {
	if a == nil || b == nil {
		return ProductSample{}, errors.Wrap(ErrNilTile, "SymbolicProduct")
	}
	var out ProductSample
	if a.Nnz() == 0 || b.Nnz() == 0 {
		return out, nil
	}

	inner := min(a.Cols(), b.Rows())
	rowStamp := make([]int64, a.Rows()) // stamp = sampled column index + 1
	colSeen := make([]bool, a.Cols())

	visit := func(j int64, stamp int64) {
		for _, eb := range b.Column(j) {
			if eb.Row >= inner {
				continue
			}
			out.BNnz++
			colA := a.Column(eb.Row)
			if !colSeen[eb.Row] {
				colSeen[eb.Row] = true
				out.ANnz += int64(len(colA))
			}
			for _, ea := range colA {
				out.Flops++
				if rowStamp[ea.Row] != stamp {
					rowStamp[ea.Row] = stamp
					out.OutNnz++
				}
			}
		}
	}

	if sample == nil {
		for j := int64(0); j < b.Cols(); j++ {
			visit(j, j+1)
		}
		return out, nil
	}
	for n, j := range sample {
		if j < 0 || j >= b.Cols() {
			return ProductSample{}, errors.Wrapf(ErrOutOfRange, "SymbolicProduct: sample column %d of %d", j, b.Cols())
		}
		visit(j, int64(n)+1)
	}

	return out, nil
}
