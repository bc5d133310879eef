// SPDX-License-Identifier: MIT

package autotune

import (
	"github.com/katalvlaran/spgemmtune/costmodel"
	"github.com/katalvlaran/spgemmtune/grid"
)

// Scored is one candidate config with its predicted cost.
type Scored struct {
	Config   grid.Config
	Estimate costmodel.Estimate
}

// Total is the predicted running time in seconds.
func (s Scored) Total() float64 { return s.Estimate.Total() }

// Result is the outcome of TuneAnalytical.
type Result struct {
	Problem    costmodel.Problem
	Best       Scored
	Default    Scored
	Candidates []Scored // in increasing side order
}

// Speedup is the predicted default/best time ratio (0 if Best is free).
func (r Result) Speedup() float64 {
	if r.Best.Total() == 0 {
		return 0
	}
	return r.Default.Total() / r.Best.Total()
}
