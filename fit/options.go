// SPDX-License-Identifier: MIT

package fit

import (
	"math"

	"github.com/katalvlaran/rigid3/eigen"
)

// DefaultDegeneracyTolerance is the eigenvalue gap, relative to the largest
// eigenvalue, at or below which a fit is reported as under-determined.
const DefaultDegeneracyTolerance = 1e-10

const panicDegeneracyInvalid = "fit: WithDegeneracyTolerance: tol must be finite, non-negative"

// Option mutates fit options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	degTol float64
	eigen  []eigen.Option
}

// WithDegeneracyTolerance sets the relative eigenvalue gap that marks a fit
// as under-determined. Panics if tol is negative, NaN or infinite.
func WithDegeneracyTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicDegeneracyInvalid)
	}

	return func(o *Options) { o.degTol = tol }
}

// WithEigen forwards options to the eigen solver.
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
