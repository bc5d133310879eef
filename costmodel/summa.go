// SPDX-License-Identifier: MIT

package costmodel

import (
	"math"

	"github.com/katalvlaran/spgemmtune/grid"
)

// summaTime turns predicted flops and output non-zeros into phase times for
// a SUMMA run of p on cfg.
func summaTime(pl Platform, p Problem, cfg grid.Config, flops, outNnz float64) Estimate {
	procs := float64(cfg.Procs)
	side := float64(cfg.Side)
	depth := math.Ceil(math.Log2(side))
	levels := math.Log2(side)

	bytes := (float64(p.A.Nnz) + float64(p.B.Nnz)) / procs * float64(pl.BytesPerNnz)
	perStage := depth * (2*pl.Alpha + bytes/pl.Beta) // µs

	return Estimate{
		Bcast:     side * perStage * 1e-6,
		LocalMult: pl.Gamma * flops / procs,
		Merge:     pl.Gamma * outNnz / procs * levels,
	}
}

func checkInputs(pl Platform, p Problem, cfg grid.Config) error {
	if cfg.Side < 1 || cfg.Procs != cfg.Side*cfg.Side {
		return ErrBadConfig
	}
	if err := pl.Validate(); err != nil {
		return err
	}
	return p.validate()
}
