// SPDX-License-Identifier: MIT

// Package moments computes first and second moments of weighted 3-D point sets:
// the weighted centroid, the (cross-)covariance matrix about given centroids,
// and the normalised scatter used by the best-fit routines.
//
// Weights are optional: a nil slice means every point weighs 1.0. A non-nil
// slice must match the points in length and contain finite, non-negative
// values. Zero points or zero total weight cannot be averaged and are reported
// as geom.ErrDegenerateInput.
package moments
