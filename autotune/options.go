// SPDX-License-Identifier: MIT

package autotune

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/spgemmtune/comm"
)

// DefaultSampleColumns is the number of B columns sampled for the
// compression ratio.
const DefaultSampleColumns = 64

// Option configures a Tuner.
type Option func(*options)

type options struct {
	log        logrus.FieldLogger
	sampleCols int
	seed       int64
}

// WithLogger reports candidate scores to l (root rank only). Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("autotune: WithLogger(nil)")
	}
	return func(o *options) { o.log = l }
}

// WithSampleColumns sets how many columns of B are sampled. Panics if n < 1.
func WithSampleColumns(n int) Option {
	if n < 1 {
		panic("autotune: WithSampleColumns needs n >= 1")
	}
	return func(o *options) { o.sampleCols = n }
}

// WithSeed fixes the column sample.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

func gatherOptions(opts ...Option) options {
	o := options{log: comm.DiscardLogger(), sampleCols: DefaultSampleColumns, seed: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
