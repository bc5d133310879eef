// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set. Functions return these directly or
// wrapped with context; tests match with errors.Is.

package sparse

import "github.com/pkg/errors"

var (
	// ErrBadShape is returned for negative tile dimensions.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a triple outside the tile bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrInvalidProbability indicates a density outside [0, 1].
	ErrInvalidProbability = errors.New("sparse: density must be in [0,1]")

	// ErrNeedRandSource indicates a stochastic operation without an RNG.
	ErrNeedRandSource = errors.New("sparse: random source required")

	// ErrBadPermutation indicates a permutation of the wrong length or with repeats.
	ErrBadPermutation = errors.New("sparse: invalid permutation")

	// ErrNilTile indicates a nil *Tile argument.
	ErrNilTile = errors.New("sparse: nil tile")
)
