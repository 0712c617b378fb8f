// SPDX-License-Identifier: MIT

package superpose

import (
	"math"

	"github.com/katalvlaran/rigid3/eigen"
)

// DefaultDegeneracyTolerance is the singular-value ratio σ2/σ1 at or below
// which the rotation is treated as underdetermined. σ1 itself is compared
// against the Cauchy–Schwarz bound of the two point spreads.
const DefaultDegeneracyTolerance = 1e-6

const panicDegeneracyInvalid = "superpose: WithDegeneracyTolerance: tol must be finite, in [0, 1)"

// Option mutates superposition options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	degTol float64
	strict bool
	eigen  []eigen.Option
}

// WithDegeneracyTolerance sets the σ2/σ1 cut-off. Panics outside [0, 1).
func WithDegeneracyTolerance(tol float64) Option {
	if math.IsNaN(tol) || tol < 0 || tol >= 1 {
		panic(panicDegeneracyInvalid)
	}

	return func(o *Options) { o.degTol = tol }
}

// WithStrict makes degenerate input fail with geom.ErrDegenerateInput
// instead of returning a flagged result.
func WithStrict() Option {
	return func(o *Options) { o.strict = true }
}

// WithEigen forwards options to the eigen solver used on RᵗR.
func WithEigen(opts ...eigen.Option) Option {
	return func(o *Options) { o.eigen = append(o.eigen, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{degTol: DefaultDegeneracyTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
