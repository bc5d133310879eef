// SPDX-License-Identifier: MIT

package costmodel

import "github.com/pkg/errors"

var (
	// ErrUnknownEstimator is returned by New for an unregistered name.
	ErrUnknownEstimator = errors.New("costmodel: unknown estimator")

	// ErrBadStats indicates negative dimensions or non-zero counts.
	ErrBadStats = errors.New("costmodel: invalid matrix statistics")

	// ErrBadConfig indicates a candidate config with side < 1.
	ErrBadConfig = errors.New("costmodel: invalid grid config")

	// ErrBadPlatform indicates non-positive platform parameters.
	ErrBadPlatform = errors.New("costmodel: invalid platform parameters")
)

// panicNotImplemented is raised by Base.EstimateTime.
const panicNotImplemented = "costmodel: EstimateTime called on Base; embed Base and implement EstimateTime"
