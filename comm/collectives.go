// SPDX-License-Identifier: MIT

package comm

import (
	"slices"

	"github.com/pkg/errors"
)

// AlltoallInts exchanges one int per rank pair: recv[s] is send[c.Rank()]
// as held by rank s. This is the counts exchange that precedes Alltoallv.
func AlltoallInts(c Communicator, send []int) ([]int, error) {
	payload := make([]any, len(send))
	for i, v := range send {
		payload[i] = v
	}
	in, err := c.Alltoall(payload)
	if err != nil {
		return nil, err
	}
	recv := make([]int, len(in))
	for i, v := range in {
		recv[i] = v.(int)
	}

	return recv, nil
}

// Displacements returns the exclusive prefix sum of counts.
func Displacements(counts []int) []int {
	displs := make([]int, len(counts))
	for i := 1; i < len(counts); i++ {
		displs[i] = displs[i-1] + counts[i-1]
	}
	return displs
}

// Alltoallv is the variable-length all-to-all. send holds the records for
// rank d at send[displs[d] : displs[d]+counts[d]]. Counts are exchanged
// first, then the records. The result is one contiguous buffer ordered by
// source rank, with per-source counts and displacements.
func Alltoallv[T any](c Communicator, send []T, counts, displs []int) (recv []T, recvCounts, recvDispls []int, err error) {
	size := c.Size()
	if len(counts) != size || len(displs) != size {
		err = errors.Wrapf(ErrBadCounts, "Alltoallv: %d counts, %d displs, %d ranks", len(counts), len(displs), size)
		c.Abort(err)
		return nil, nil, nil, err
	}
	for d := 0; d < size; d++ {
		if counts[d] < 0 || displs[d] < 0 || displs[d]+counts[d] > len(send) {
			err = errors.Wrapf(ErrBadCounts, "Alltoallv: dest %d count=%d displ=%d len=%d", d, counts[d], displs[d], len(send))
			c.Abort(err)
			return nil, nil, nil, err
		}
	}

	recvCounts, err = AlltoallInts(c, counts)
	if err != nil {
		return nil, nil, nil, err
	}

	payload := make([]any, size)
	for d := 0; d < size; d++ {
		payload[d] = slices.Clone(send[displs[d] : displs[d]+counts[d]])
	}
	in, err := c.Alltoall(payload)
	if err != nil {
		return nil, nil, nil, err
	}

	recvDispls = Displacements(recvCounts)
	total := 0
	for _, n := range recvCounts {
		total += n
	}
	recv = make([]T, 0, total)
	for src, part := range in {
		records := part.([]T)
		if len(records) != recvCounts[src] {
			err = errors.Wrapf(ErrMismatch, "Alltoallv: announced %d records from rank %d, got %d", recvCounts[src], src, len(records))
			c.Abort(err)
			return nil, nil, nil, err
		}
		recv = append(recv, records...)
	}

	return recv, recvCounts, recvDispls, nil
}
