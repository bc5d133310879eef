// SPDX-License-Identifier: MIT

package evaluate

import "github.com/pkg/errors"

var (
	// ErrTooFewPoints indicates fewer than two candidates to rank.
	ErrTooFewPoints = errors.New("evaluate: need at least two points")

	// ErrBadValue indicates a negative or non-finite runtime.
	ErrBadValue = errors.New("evaluate: runtime must be finite and >= 0")

	// ErrBadRecord indicates a malformed CSV row.
	ErrBadRecord = errors.New("evaluate: malformed record")

	// ErrNoResults indicates Summarize was given nothing.
	ErrNoResults = errors.New("evaluate: no results")
)
