// SPDX-License-Identifier: MIT
// Package geom: canonical input checks for weighted point sets.
//
// Purpose:
//   - One source of truth for the length/weight/finiteness guards used by
//     moments, fit and superpose.
//   - Return wrapped sentinels so facades can add their own op tag on top.
//
// Note:
//   - Checks run in a fixed order: sizes → coordinates → weights → total weight.

package geom

import "fmt"

// ValidatePoints ensures every coordinate is finite.
// An empty slice is accepted here; callers decide whether emptiness is degenerate.
// Complexity: O(n).
func ValidatePoints(points []Point3) error {
	for i, p := range points {
		if !p.IsFinite() {
			return fmt.Errorf("ValidatePoints: point %d: %w", i, ErrNaNInf)
		}
	}

	return nil
}

// ValidateWeights checks a weight slice against n points and returns the total weight.
// A nil slice means uniform weight 1.0 and yields float64(n).
//
// Errors:
//   - ErrSizeMismatch   (len(weights) != n for non-nil weights).
//   - ErrInvalidWeight  (negative, NaN or ±Inf weight).
//
// Complexity: O(n).
func ValidateWeights(weights []float64, n int) (float64, error) {
	if weights == nil {
		return float64(n), nil
	}
	if len(weights) != n {
		return 0, fmt.Errorf("ValidateWeights: %d weights for %d points: %w", len(weights), n, ErrSizeMismatch)
	}
	var total float64
	for i, w := range weights {
		if !isFinite(w) || w < 0 {
			return 0, fmt.Errorf("ValidateWeights: weight %d = %v: %w", i, w, ErrInvalidWeight)
		}
		total += w
	}

	return total, nil
}

// ValidateWeighted validates a single weighted point set and returns its total weight.
//
// Errors:
//   - ErrSizeMismatch, ErrInvalidWeight, ErrNaNInf (see above).
//   - ErrDegenerateInput when there are no points or the total weight is zero.
//
// Complexity: O(n).
func ValidateWeighted(points []Point3, weights []float64) (float64, error) {
	total, err := ValidateWeights(weights, len(points))
	if err != nil {
		return 0, err
	}
	if err = ValidatePoints(points); err != nil {
		return 0, err
	}
	if len(points) == 0 {
		return 0, fmt.Errorf("ValidateWeighted: no points: %w", ErrDegenerateInput)
	}
	if total == 0 {
		return 0, fmt.Errorf("ValidateWeighted: total weight is zero: %w", ErrDegenerateInput)
	}

	return total, nil
}

// ValidatePaired validates two index-paired point sets sharing one weight slice
// and returns the total weight.
//
// Errors:
//   - ErrSizeMismatch when len(a) != len(b) (checked first).
//   - Everything ValidateWeighted reports, for either set.
//
// Complexity: O(n).
func ValidatePaired(a, b []Point3, weights []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("ValidatePaired: %d vs %d points: %w", len(a), len(b), ErrSizeMismatch)
	}
	if err := ValidatePoints(b); err != nil {
		return 0, err
	}

	return ValidateWeighted(a, weights)
}

// Weight returns weights[i], or 1 when weights is nil.
func Weight(weights []float64, i int) float64 {
	if weights == nil {
		return 1
	}

	return weights[i]
}
