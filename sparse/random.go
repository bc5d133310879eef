// SPDX-License-Identifier: MIT
//
// random.go - seeded generators over global coordinates.
//
// Random samples each of the rows*cols cells independently with probability
// density. Instead of one Bernoulli trial per cell it jumps over runs of
// empty cells with geometric skips, which yields the same distribution in
// O(nnz) draws. Cells are visited in row-major order, so a fixed seed gives
// a fixed triple list.

package sparse

import (
	"math"
	"slices"

	"github.com/pkg/errors"
)

const methodRandom = "Random"

// Random returns the triples of a rows×cols Erdős–Rényi sparse matrix in
// global coordinates.
//
// Errors:
//   - ErrBadShape for negative dimensions.
//   - ErrInvalidProbability if density is outside [0,1].
//   - ErrNeedRandSource if 0 < density < 1 and no RNG was configured.
func Random(rows, cols int64, density float64, opts ...Option) ([]Triple, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(ErrBadShape, "%s: %dx%d", methodRandom, rows, cols)
	}
	if math.IsNaN(density) || density < 0 || density > 1 {
		return nil, errors.Wrapf(ErrInvalidProbability, "%s: density=%g", methodRandom, density)
	}
	o := gatherOptions(opts...)
	if o.rng == nil && density > 0 && density < 1 {
		return nil, errors.Wrap(ErrNeedRandSource, methodRandom)
	}

	cells := rows * cols
	if density == 0 || cells == 0 {
		return nil, nil
	}

	out := make([]Triple, 0, int(float64(cells)*density)+1)
	if density == 1 {
		for pos := int64(0); pos < cells; pos++ {
			out = append(out, Triple{Row: pos / cols, Col: pos % cols, Val: o.valueFn(o.rng)})
		}
		return out, nil
	}

	// Geometric skip: the gap to the next success is floor(ln U / ln(1-p)).
	logQ := math.Log1p(-density)
	pos := int64(-1)
	for {
		u := 1 - o.rng.Float64() // (0, 1]
		skip := math.Floor(math.Log(u) / logQ)
		if float64(pos)+skip+1 >= float64(cells) {
			break
		}
		pos += int64(skip) + 1
		out = append(out, Triple{Row: pos / cols, Col: pos % cols, Val: o.valueFn(o.rng)})
	}

	return out, nil
}

// RandPerm returns a random permutation of [0, n).
func RandPerm(n int64, opts ...Option) ([]int64, error) {
	o := gatherOptions(opts...)
	if o.rng == nil {
		return nil, errors.Wrap(ErrNeedRandSource, "RandPerm")
	}
	perm := make([]int64, n)
	for i := range perm {
		perm[i] = int64(i)
	}
	o.rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

	return perm, nil
}

// Permute applies the symmetric permutation P·M·Pᵀ to global triples:
// entry (i, j) moves to (perm[i], perm[j]). The input is not modified.
// Returns ErrBadPermutation unless perm is a permutation of [0, len(perm))
// covering every coordinate.
func Permute(triples []Triple, perm []int64) ([]Triple, error) {
	n := int64(len(perm))
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, errors.Wrapf(ErrBadPermutation, "Permute: value %d", p)
		}
		seen[p] = true
	}

	out := make([]Triple, len(triples))
	for k, t := range triples {
		if t.Row >= n || t.Col >= n || t.Row < 0 || t.Col < 0 {
			return nil, errors.Wrapf(ErrBadPermutation, "Permute: (%d,%d) outside permutation of %d", t.Row, t.Col, n)
		}
		out[k] = Triple{Row: perm[t.Row], Col: perm[t.Col], Val: t.Val}
	}

	return out, nil
}

// SampleColumns picks up to n distinct column indices of [0, cols) in
// ascending order. n <= 0 or n >= cols selects every column.
func SampleColumns(cols int64, n int, opts ...Option) ([]int64, error) {
	if cols < 0 {
		return nil, errors.Wrapf(ErrBadShape, "SampleColumns: cols=%d", cols)
	}
	if n <= 0 || int64(n) >= cols {
		all := make([]int64, cols)
		for j := range all {
			all[j] = int64(j)
		}
		return all, nil
	}
	o := gatherOptions(opts...)
	if o.rng == nil {
		return nil, errors.Wrap(ErrNeedRandSource, "SampleColumns")
	}

	// Floyd's algorithm: n draws, no O(cols) allocation.
	picked := make(map[int64]struct{}, n)
	for j := cols - int64(n); j < cols; j++ {
		t := o.rng.Int63n(j + 1)
		if _, dup := picked[t]; dup {
			t = j
		}
		picked[t] = struct{}{}
	}
	out := make([]int64, 0, n)
	for j := range picked {
		out = append(out, j)
	}
	slices.Sort(out)

	return out, nil
}
