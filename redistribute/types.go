// SPDX-License-Identifier: MIT

package redistribute

import "github.com/katalvlaran/spgemmtune/sparse"

// Direction classifies a reshape by its side lengths.
type Direction int

const (
	// Same keeps the side length.
	Same Direction = iota
	// Grow moves to a larger side: one old tile fans out to several new ones.
	Grow
	// Shrink moves to a smaller side: several old tiles merge into one.
	Shrink
)

// DirectionOf classifies a reshape from oldSide to newSide.
func DirectionOf(oldSide, newSide int) Direction {
	switch {
	case newSide > oldSide:
		return Grow
	case newSide < oldSide:
		return Shrink
	default:
		return Same
	}
}

func (d Direction) String() string {
	switch d {
	case Grow:
		return "grow"
	case Shrink:
		return "shrink"
	default:
		return "same"
	}
}

// RankTable maps a logical rank in the target grid to the communicator
// rank that occupies it.
type RankTable []int

// Lookup returns the communicator rank at logical target rank slot.
func (t RankTable) Lookup(slot int) int { return t[slot] }

// sendBuckets stages triples per destination communicator rank. It is
// filled in one pass over the source tile and flattened exactly once.
type sendBuckets [][]sparse.Triple

// flatten concatenates the buckets in destination order and returns the
// buffer with per-destination counts and displacements.
func (b sendBuckets) flatten() (buf []sparse.Triple, counts, displs []int) {
	counts = make([]int, len(b))
	displs = make([]int, len(b))
	total := 0
	for d, bucket := range b {
		counts[d] = len(bucket)
		displs[d] = total
		total += len(bucket)
	}
	buf = make([]sparse.Triple, 0, total)
	for _, bucket := range b {
		buf = append(buf, bucket...)
	}
	return buf, counts, displs
}
