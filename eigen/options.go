// SPDX-License-Identifier: MIT
// Package eigen: functional configuration of the Jacobi solver.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).

package eigen

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the convergence threshold for the largest off-diagonal
	// entry, relative to the Frobenius norm of the input.
	DefaultTolerance = 1e-15

	// DefaultMaxRotations caps the number of Jacobi rotations. A 3×3 matrix
	// normally converges in well under 20.
	DefaultMaxRotations = 100

	// DefaultSymmetryTolerance bounds |m[i][j] − m[j][i]| relative to the
	// Frobenius norm before the input is rejected as asymmetric.
	DefaultSymmetryTolerance = 1e-9
)

const (
	panicToleranceInvalid    = "eigen: WithTolerance: tol must be finite, non-negative"
	panicMaxRotationsInvalid = "eigen: WithMaxRotations: n must be > 0"
	panicSymmetryInvalid     = "eigen: WithSymmetryTolerance: tol must be finite, non-negative"
)

// Option mutates solver options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol          float64
	maxRotations int
	symTol       float64
}

// WithTolerance sets the relative convergence threshold.
// Panics if tol is negative, NaN or infinite.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxRotations sets the iteration cap. Panics if n ≤ 0.
func WithMaxRotations(n int) Option {
	if n <= 0 {
		panic(panicMaxRotationsInvalid)
	}

	return func(o *Options) { o.maxRotations = n }
}

// WithSymmetryTolerance sets the relative asymmetry accepted on input.
// Entries within tolerance are averaged before iterating.
// Panics if tol is negative, NaN or infinite.
func WithSymmetryTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSymmetryInvalid)
	}

	return func(o *Options) { o.symTol = tol }
}

func defaultOptions() Options {
	return Options{
		tol:          DefaultTolerance,
		maxRotations: DefaultMaxRotations,
		symTol:       DefaultSymmetryTolerance,
	}
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
