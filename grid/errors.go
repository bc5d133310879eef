// SPDX-License-Identifier: MIT

package grid

import "github.com/pkg/errors"

var (
	// ErrBadSide is returned when a grid side length is < 1.
	ErrBadSide = errors.New("grid: side length must be >= 1")

	// ErrBadPPN is returned when processes-per-node is < 1.
	ErrBadPPN = errors.New("grid: processes per node must be >= 1")

	// ErrBadConfig indicates a Config whose fields disagree with its side.
	ErrBadConfig = errors.New("grid: inconsistent config")

	// ErrRankOutOfRange indicates a rank or grid coordinate outside the grid.
	ErrRankOutOfRange = errors.New("grid: rank out of range")
)
