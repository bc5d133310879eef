// SPDX-License-Identifier: MIT

package costmodel

import (
	"slices"

	"github.com/pkg/errors"
)

var constructors = map[string]func(Platform) Estimator{
	NameCompression: func(p Platform) Estimator { return NewCompression(p) },
	NameUniform:     func(p Platform) Estimator { return NewUniform(p) },
}

// New returns the estimator registered under name.
// Errors: ErrUnknownEstimator, ErrBadPlatform.
func New(name string, p Platform) (Estimator, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEstimator, "%q (known: %v)", name, Names())
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return ctor(p), nil
}

// Names lists the registered estimator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for n := range constructors {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
