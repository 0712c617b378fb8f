// SPDX-License-Identifier: MIT
// Package geom: sentinel error set shared by all rigid3 packages.
// Facades wrap these with an operation tag ("Centroid: ...", "Superpose: ...")
// and tests MUST match them via errors.Is. No function panics on user input.

package geom

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch indicates that paired slices disagree in length:
	// two point sets of different sizes, or weights not matching the points.
	ErrSizeMismatch = errors.New("geom: size mismatch")

	// ErrDegenerateInput indicates that there is nothing to average over:
	// zero points or a zero total weight.
	ErrDegenerateInput = errors.New("geom: degenerate input")

	// ErrInvalidWeight indicates a negative, NaN or infinite weight.
	ErrInvalidWeight = errors.New("geom: invalid weight")

	// ErrNaNInf indicates a NaN or ±Inf coordinate or matrix entry.
	ErrNaNInf = errors.New("geom: NaN or Inf encountered")
)

// Errorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func Errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
