// SPDX-License-Identifier: MIT

package comm

import (
	"slices"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	kindAllreduce = "allreduce"
	kindAlltoall  = "alltoall"
	kindBarrier   = "barrier"
)

// deposit is what one rank hands to a collective round.
type deposit struct {
	kind string
	data any
}

// round is one collective generation. Ranks deposit into in[rank]; the
// last arrival installs a fresh round and closes done, after which in is
// read-only.
type round struct {
	in      []deposit
	arrived int
	done    chan struct{}
}

func newRound(size int) *round {
	return &round{in: make([]deposit, size), done: make(chan struct{})}
}

// World is an in-process group of size ranks.
type World struct {
	size int

	mu  sync.Mutex
	cur *round

	abortOnce sync.Once
	aborted   chan struct{}
	cause     error
}

// NewWorld creates a world of size ranks. Returns ErrBadSize if size < 1.
func NewWorld(size int) (*World, error) {
	if size < 1 {
		return nil, ErrBadSize
	}

	return &World{
		size:    size,
		cur:     newRound(size),
		aborted: make(chan struct{}),
	}, nil
}

// Size returns the number of ranks in the world.
func (w *World) Size() int { return w.size }

// Comm returns the endpoint of the given rank.
func (w *World) Comm(rank int) (Communicator, error) {
	if rank < 0 || rank >= w.size {
		return nil, errors.Wrapf(ErrBadRank, "Comm: rank=%d size=%d", rank, w.size)
	}
	return &endpoint{w: w, rank: rank}, nil
}

func (w *World) abort(cause error) {
	w.abortOnce.Do(func() {
		if cause == nil {
			cause = errors.New("abort without cause")
		}
		w.cause = cause
		close(w.aborted)
	})
}

func (w *World) abortErr() error {
	return errors.Wrap(ErrAborted, w.cause.Error())
}

// exchange deposits d for rank and blocks until all ranks of the current
// round deposited, or until the world is aborted.
func (w *World) exchange(rank int, d deposit) ([]deposit, error) {
	select {
	case <-w.aborted:
		return nil, w.abortErr()
	default:
	}

	w.mu.Lock()
	r := w.cur
	r.in[rank] = d
	r.arrived++
	if r.arrived == w.size {
		w.cur = newRound(w.size)
		close(r.done)
	}
	w.mu.Unlock()

	select {
	case <-r.done:
	case <-w.aborted:
		// A round that completed still wins over a concurrent abort.
		select {
		case <-r.done:
		default:
			return nil, w.abortErr()
		}
	}
	for src := range r.in {
		if r.in[src].kind != d.kind {
			err := errors.Wrapf(ErrMismatch, "rank %d in %s, rank %d in %s", rank, d.kind, src, r.in[src].kind)
			w.abort(err)
			return nil, err
		}
	}

	return r.in, nil
}

// endpoint is one rank's Communicator on a World.
type endpoint struct {
	w    *World
	rank int
}

func (e *endpoint) Rank() int { return e.rank }

func (e *endpoint) Size() int { return e.w.size }

func (e *endpoint) Abort(cause error) { e.w.abort(cause) }

func (e *endpoint) Barrier() error {
	_, err := e.w.exchange(e.rank, deposit{kind: kindBarrier})
	return err
}

func (e *endpoint) AllreduceInt64(op Op, buf []int64) error {
	in, err := e.w.exchange(e.rank, deposit{kind: kindAllreduce, data: slices.Clone(buf)})
	if err != nil {
		return err
	}
	for src, d := range in {
		if len(d.data.([]int64)) != len(buf) {
			err = errors.Wrapf(ErrMismatch, "allreduce length %d on rank %d, %d on rank %d",
				len(buf), e.rank, len(d.data.([]int64)), src)
			e.w.abort(err)
			return err
		}
	}

	// Reduce in rank order so every rank computes the identical result.
	copy(buf, in[0].data.([]int64))
	for src := 1; src < len(in); src++ {
		contrib := in[src].data.([]int64)
		for i := range buf {
			buf[i] = op.apply(buf[i], contrib[i])
		}
	}

	return nil
}

func (e *endpoint) Alltoall(send []any) ([]any, error) {
	if len(send) != e.w.size {
		err := errors.Wrapf(ErrMismatch, "alltoall with %d payloads on %d ranks", len(send), e.w.size)
		e.w.abort(err)
		return nil, err
	}
	in, err := e.w.exchange(e.rank, deposit{kind: kindAlltoall, data: slices.Clone(send)})
	if err != nil {
		return nil, err
	}

	recv := make([]any, e.w.size)
	for src, d := range in {
		recv[src] = d.data.([]any)[e.rank]
	}

	return recv, nil
}

// Run starts size ranks, each running fn on its own goroutine, and waits
// for all of them. The first rank to fail aborts the world so that the
// others return from their collectives instead of deadlocking. Run returns
// the root cause: the lowest-rank error that is not ErrAborted, falling
// back to the first ErrAborted.
func Run(size int, fn func(c Communicator) error) error {
	w, err := NewWorld(size)
	if err != nil {
		return err
	}

	var g errgroup.Group
	errs := make([]error, size)
	for rank := 0; rank < size; rank++ {
		rank := rank
		c, _ := w.Comm(rank)
		g.Go(func() error {
			if err := fn(c); err != nil {
				c.Abort(err)
				errs[rank] = err
				return err
			}
			return nil
		})
	}
	if g.Wait() == nil {
		return nil
	}

	var first error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrAborted) {
			return err
		}
		if first == nil {
			first = err
		}
	}

	return first
}
