// SPDX-License-Identifier: MIT

package costmodel

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/spgemmtune/grid"
)

// NameCompression selects the Compression estimator.
const NameCompression = "compression"

// Compression predicts nnz(C) from a sampled compression ratio.
//
// With A_s the columns of A touched by the sampled columns B_s of B:
//
//	ratio      = nnz(A·B_s) / √(nnz(A_s)·nnz(B_s))
//	nnz(C)     ≈ ratio · √(nnz(A)·nnz(B)), capped at rows(A)·cols(B)
//	flops      ≈ nnz(C) · flops_s / nnz(A·B_s)
//
// A sample that saw no work falls back to the Uniform prediction.
type Compression struct {
	Base
}

// NewCompression returns a Compression estimator for platform pl.
func NewCompression(pl Platform) *Compression {
	return &Compression{Base: NewBase(NameCompression, pl)}
}

// Ratio returns the sampled compression ratio, or ok=false when the sample
// contains no output.
func Ratio(p Problem) (ratio float64, ok bool) {
	s := p.Sample
	if s.OutNnz <= 0 || s.ANnz <= 0 || s.BNnz <= 0 {
		return 0, false
	}
	return float64(s.OutNnz) / math.Sqrt(float64(s.ANnz)*float64(s.BNnz)), true
}

// EstimateTime implements Estimator.
func (c *Compression) EstimateTime(p Problem, cfg grid.Config) (Estimate, error) {
	pl := c.Platform()
	if err := checkInputs(pl, p, cfg); err != nil {
		return Estimate{}, errors.Wrapf(err, "%s: %s", c.Name(), cfg)
	}

	ratio, ok := Ratio(p)
	if !ok {
		flops, out := uniformProduct(p)
		return summaTime(pl, p, cfg, flops, out), nil
	}

	out := ratio * math.Sqrt(float64(p.A.Nnz)*float64(p.B.Nnz))
	out = math.Min(out, float64(p.A.Rows)*float64(p.B.Cols))
	flopsPerOut := math.Max(1, float64(p.Sample.Flops)/float64(p.Sample.OutNnz))

	return summaTime(pl, p, cfg, out*flopsPerOut, out), nil
}
