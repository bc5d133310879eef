// SPDX-License-Identifier: MIT

package costmodel

import (
	"fmt"

	"github.com/katalvlaran/spgemmtune/grid"
	"github.com/katalvlaran/spgemmtune/sparse"
)

// Platform holds machine constants. Defaults were calibrated on a Cray
// EX system with 128 cores per node.
type Platform struct {
	Alpha        float64 `yaml:"alpha"`          // inter-node latency per message, µs
	Beta         float64 `yaml:"beta"`           // inter-node bandwidth, bytes/µs
	Gamma        float64 `yaml:"gamma"`          // seconds per scalar operation
	BytesPerNnz  int     `yaml:"bytes_per_nnz"`  // wire size of one (row, col, value) triple
	CoresPerNode int     `yaml:"cores_per_node"`
}

// Default platform constants.
const (
	DefaultAlpha        = 3.9
	DefaultBeta         = 23980.54
	DefaultGamma        = 5.2e-9
	DefaultBytesPerNnz  = 24
	DefaultCoresPerNode = 128
)

// DefaultPlatform returns the calibrated defaults.
func DefaultPlatform() Platform {
	return Platform{
		Alpha:        DefaultAlpha,
		Beta:         DefaultBeta,
		Gamma:        DefaultGamma,
		BytesPerNnz:  DefaultBytesPerNnz,
		CoresPerNode: DefaultCoresPerNode,
	}
}

// Validate reports ErrBadPlatform unless every parameter is positive.
func (p Platform) Validate() error {
	if p.Alpha <= 0 || p.Beta <= 0 || p.Gamma <= 0 || p.BytesPerNnz <= 0 || p.CoresPerNode <= 0 {
		return ErrBadPlatform
	}
	return nil
}

// Stats are the global statistics of one operand.
type Stats struct {
	Rows, Cols, Nnz int64
}

// Problem is one multiplication C = A·B to be scored. Sample is the
// symbolic product of A with a sample of B's columns; estimators that do
// not sample ignore it.
type Problem struct {
	A, B   Stats
	Sample sparse.ProductSample
}

func (p Problem) validate() error {
	for _, s := range []Stats{p.A, p.B} {
		if s.Rows < 0 || s.Cols < 0 || s.Nnz < 0 {
			return ErrBadStats
		}
	}
	return nil
}

// Estimate is a predicted running time in seconds, by phase.
type Estimate struct {
	Bcast     float64
	LocalMult float64
	Merge     float64
}

// Total returns the sum of all phases.
func (e Estimate) Total() float64 {
	return e.Bcast + e.LocalMult + e.Merge
}

// String renders the estimate in the "bcast:… local:… merge:…" log form.
func (e Estimate) String() string {
	return fmt.Sprintf("bcast:%.6g local:%.6g merge:%.6g total:%.6g", e.Bcast, e.LocalMult, e.Merge, e.Total())
}

// Estimator predicts the running time of a Problem on a candidate grid.
type Estimator interface {
	// Name identifies the strategy in logs and configs.
	Name() string

	// EstimateTime predicts the running time of p on cfg.
	EstimateTime(p Problem, cfg grid.Config) (Estimate, error)
}

// Base carries what every estimator shares. It does not
// predict anything: calling EstimateTime on a bare Base is a programming
// error and panics.
type Base struct {
	name     string
	platform Platform
}

// NewBase returns a Base for a strategy called name.
func NewBase(name string, p Platform) Base {
	return Base{name: name, platform: p}
}

// Name returns the strategy name.
func (b Base) Name() string { return b.name }

// Platform returns the machine constants.
func (b Base) Platform() Platform { return b.platform }

// EstimateTime panics: a concrete estimator must provide it.
func (b Base) EstimateTime(Problem, grid.Config) (Estimate, error) {
	panic(panicNotImplemented)
}
