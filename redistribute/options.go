// SPDX-License-Identifier: MIT

package redistribute

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/spgemmtune/comm"
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	log logrus.FieldLogger
}

// WithLogger sends the diagnostic side channel (offsets, counts,
// displacement tables) to l at Debug level. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("redistribute: WithLogger(nil)")
	}
	return func(o *options) { o.log = l }
}

func gatherOptions(opts ...Option) options {
	o := options{log: comm.DiscardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
