// SPDX-License-Identifier: MIT

package costmodel

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/spgemmtune/grid"
)

// NameUniform selects the Uniform estimator.
const NameUniform = "uniform"

// Uniform treats both operands as Erdős–Rényi matrices: flops =
// nnz(A)·nnz(B)/K and each of the M·N output cells is hit with probability
// 1 - exp(-flops/(M·N)).
type Uniform struct {
	Base
}

// NewUniform returns a Uniform estimator for platform pl.
func NewUniform(pl Platform) *Uniform {
	return &Uniform{Base: NewBase(NameUniform, pl)}
}

// EstimateTime implements Estimator.
func (u *Uniform) EstimateTime(p Problem, cfg grid.Config) (Estimate, error) {
	pl := u.Platform()
	if err := checkInputs(pl, p, cfg); err != nil {
		return Estimate{}, errors.Wrapf(err, "%s: %s", u.Name(), cfg)
	}
	flops, out := uniformProduct(p)
	return summaTime(pl, p, cfg, flops, out), nil
}

func uniformProduct(p Problem) (flops, out float64) {
	inner := float64(p.A.Cols)
	cells := float64(p.A.Rows) * float64(p.B.Cols)
	if inner == 0 || cells == 0 {
		return 0, 0
	}
	flops = float64(p.A.Nnz) * float64(p.B.Nnz) / inner
	out = cells * -math.Expm1(-flops/cells)
	return flops, out
}
