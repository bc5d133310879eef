// SPDX-License-Identifier: MIT

package comm

// Op is a reduction operation.
type Op int

const (
	// OpSum adds contributions element-wise.
	OpSum Op = iota
	// OpMax keeps the element-wise maximum.
	OpMax
	// OpMin keeps the element-wise minimum.
	OpMin
)

// Root is the rank that prints summaries and owns rank-0-only duties.
const Root = 0

// Communicator is one rank's endpoint in a group of cooperating processes.
type Communicator interface {
	// Rank returns this endpoint's rank in [0, Size()).
	Rank() int

	// Size returns the number of ranks.
	Size() int

	// AllreduceInt64 reduces buf element-wise across all ranks with op and
	// leaves the result in buf on every rank. All ranks must pass buffers
	// of the same length.
	AllreduceInt64(op Op, buf []int64) error

	// Alltoall sends send[d] to rank d and returns recv where recv[s] is
	// what rank s sent to this rank. len(send) must equal Size().
	Alltoall(send []any) ([]any, error)

	// Barrier blocks until every rank reached it.
	Barrier() error

	// Abort releases all ranks of the group; their pending and future
	// collectives fail with ErrAborted. Safe to call more than once.
	Abort(cause error)
}

func (op Op) apply(a, b int64) int64 {
	switch op {
	case OpMax:
		if b > a {
			return b
		}
		return a
	case OpMin:
		if b < a {
			return b
		}
		return a
	default:
		return a + b
	}
}

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpSum:
		return "sum"
	case OpMax:
		return "max"
	case OpMin:
		return "min"
	default:
		return "unknown"
	}
}
