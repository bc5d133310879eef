// SPDX-License-Identifier: MIT

package comm

import "github.com/pkg/errors"

var (
	// ErrBadSize is returned when a world of fewer than one rank is requested.
	ErrBadSize = errors.New("comm: world size must be >= 1")

	// ErrBadRank indicates a rank outside [0, Size()).
	ErrBadRank = errors.New("comm: rank out of range")

	// ErrAborted is returned by every collective after Abort was called.
	ErrAborted = errors.New("comm: communicator aborted")

	// ErrMismatch indicates ranks entered different collectives, or passed
	// buffers of different lengths to the same reduction.
	ErrMismatch = errors.New("comm: collective mismatch across ranks")

	// ErrBadCounts indicates inconsistent counts/displacements for Alltoallv.
	ErrBadCounts = errors.New("comm: invalid counts or displacements")
)
