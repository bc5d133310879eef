// Package comm is the collective communication substrate used by the
// redistribution engine and the autotuner.
//
// Communicator is the narrow interface the rest of the module depends on:
// in-place reductions, equal-size all-to-all and (through the generic
// helpers) variable-length all-to-all. Every method is a collective: all
// ranks of the communicator must call the same methods in the same order.
//
// World is an in-process implementation where each rank is a goroutine.
// A collective completes once every rank has deposited its contribution;
// ranks never share buffers outside a collective. Abort releases every
// rank blocked in (or later entering) a collective with ErrAborted, which
// is how a configuration error on one rank stops the whole group instead
// of leaving the others hanging.
//
//	err := comm.Run(4, func(c comm.Communicator) error {
//		buf := []int64{int64(c.Rank())}
//		return c.AllreduceInt64(comm.OpSum, buf) // buf[0] == 6 on every rank
//	})
package comm
