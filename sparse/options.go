// SPDX-License-Identifier: MIT

package sparse

import "math/rand"

// Option configures the stochastic helpers (Random, RandPerm, SampleColumns).
// Constructors panic on nonsensical values; the helpers never panic.
type Option func(*options)

type options struct {
	rng     *rand.Rand
	valueFn func(*rand.Rand) float64
}

// defaultValue draws values in [1, 2) so a random matrix has no explicit zeros.
func defaultValue(r *rand.Rand) float64 {
	if r == nil {
		return 1
	}
	return 1 + r.Float64()
}

func gatherOptions(opts ...Option) options {
	o := options{valueFn: defaultValue}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSeed uses a fresh deterministic RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r as the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sparse: WithRand(nil)")
	}
	return func(o *options) { o.rng = r }
}

// WithValueFn overrides the value generator of Random. Panics on nil.
func WithValueFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("sparse: WithValueFn(nil)")
	}
	return func(o *options) { o.valueFn = fn }
}
