// SPDX-License-Identifier: MIT

package redistribute

import "github.com/pkg/errors"

var (
	// ErrDimensionDisagreement indicates ranks disagree on the global
	// shape or on the grid sides after the agreement reductions.
	ErrDimensionDisagreement = errors.New("redistribute: global dimensions disagree across ranks")

	// ErrRankTable indicates a target-grid slot with zero or several
	// contributing processes.
	ErrRankTable = errors.New("redistribute: malformed rank translation table")

	// ErrNilTile indicates a participating rank passed no source tile.
	ErrNilTile = errors.New("redistribute: nil source tile")
)
