// SPDX-License-Identifier: MIT

package distmat

import "github.com/pkg/errors"

var (
	// ErrShapeMismatch indicates a local tile whose shape disagrees with the
	// grid geometry for this rank.
	ErrShapeMismatch = errors.New("distmat: local tile shape does not match grid")

	// ErrBadDimensions indicates negative global dimensions.
	ErrBadDimensions = errors.New("distmat: dimensions must be >= 0")

	// ErrOutOfRange indicates a global triple outside the matrix.
	ErrOutOfRange = errors.New("distmat: global index out of range")
)
