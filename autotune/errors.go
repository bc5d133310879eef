// SPDX-License-Identifier: MIT

package autotune

import "github.com/pkg/errors"

var (
	// ErrBadBudget indicates a node budget or processes-per-node below 1.
	ErrBadBudget = errors.New("autotune: node budget and ppn must be >= 1")

	// ErrNilMatrix indicates a nil operand.
	ErrNilMatrix = errors.New("autotune: nil matrix")

	// ErrShapeMismatch indicates cols(A) != rows(B).
	ErrShapeMismatch = errors.New("autotune: inner dimensions differ")

	// ErrGridTooLarge indicates a config needing more ranks than launched.
	ErrGridTooLarge = errors.New("autotune: grid exceeds communicator size")

	// ErrNilEstimator indicates New was given no estimator.
	ErrNilEstimator = errors.New("autotune: nil estimator")
)
