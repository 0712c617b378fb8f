// SPDX-License-Identifier: MIT

package moments

import (
	"fmt"

	"github.com/katalvlaran/rigid3/geom"
)

const (
	opTotalWeight = "TotalWeight"
	opCentroid    = "Centroid"
	opCovariance  = "Covariance"
	opScatter     = "Scatter"
)

// TotalWeight returns Σ w_i after validating the weighted point set.
//
// Errors:
//   - geom.ErrSizeMismatch, geom.ErrInvalidWeight, geom.ErrNaNInf, geom.ErrDegenerateInput.
func TotalWeight(points []geom.Point3, weights []float64) (float64, error) {
	total, err := geom.ValidateWeighted(points, weights)
	if err != nil {
		return 0, geom.Errorf(opTotalWeight, err)
	}

	return total, nil
}

// Centroid returns Σ(w_i·p_i) / Σ(w_i).
//
// Errors:
//   - geom.ErrDegenerateInput when points is empty or the total weight is zero.
//   - geom.ErrSizeMismatch, geom.ErrInvalidWeight, geom.ErrNaNInf on malformed input.
//
// Complexity: O(n).
func Centroid(points []geom.Point3, weights []float64) (geom.Point3, error) {
	total, err := geom.ValidateWeighted(points, weights)
	if err != nil {
		return geom.Point3{}, geom.Errorf(opCentroid, err)
	}

	return weightedMean(points, weights, total), nil
}

// weightedMean assumes validated input with total > 0.
func weightedMean(points []geom.Point3, weights []float64, total float64) geom.Point3 {
	var sum geom.Point3
	for i, p := range points {
		sum = sum.Add(p.Scale(geom.Weight(weights, i)))
	}

	return sum.Scale(1 / total)
}

// Covariance returns the weighted (cross-)covariance about the given centroids:
//
//	C[i][j] = Σ_n w_n · (b_n − cb)[i] · (a_n − ca)[j]
//
// so rows index pointsB and columns index pointsA. With pointsA == pointsB and
// ca == cb the result is the symmetric self-covariance. The sum is not
// normalised by the total weight.
//
// Errors:
//   - geom.ErrSizeMismatch when the slices disagree in length.
//   - geom.ErrInvalidWeight, geom.ErrNaNInf on malformed input.
//
// An empty input yields the zero matrix.
// Complexity: O(n).
func Covariance(pointsA, pointsB []geom.Point3, ca, cb geom.Point3, weights []float64) (geom.Matrix3, error) {
	if len(pointsA) != len(pointsB) {
		return geom.Matrix3{}, geom.Errorf(opCovariance,
			fmt.Errorf("%d vs %d points: %w", len(pointsA), len(pointsB), geom.ErrSizeMismatch))
	}
	if _, err := geom.ValidateWeights(weights, len(pointsA)); err != nil {
		return geom.Matrix3{}, geom.Errorf(opCovariance, err)
	}
	if err := geom.ValidatePoints(pointsA); err != nil {
		return geom.Matrix3{}, geom.Errorf(opCovariance, err)
	}
	if err := geom.ValidatePoints(pointsB); err != nil {
		return geom.Matrix3{}, geom.Errorf(opCovariance, err)
	}
	if !ca.IsFinite() || !cb.IsFinite() {
		return geom.Matrix3{}, geom.Errorf(opCovariance, geom.ErrNaNInf)
	}

	return crossCovariance(pointsA, pointsB, ca, cb, weights), nil
}

// crossCovariance assumes validated input.
func crossCovariance(pointsA, pointsB []geom.Point3, ca, cb geom.Point3, weights []float64) geom.Matrix3 {
	var c geom.Matrix3
	for n := range pointsA {
		x := pointsA[n].Sub(ca)
		y := pointsB[n].Sub(cb).Scale(geom.Weight(weights, n))
		c = c.Add(geom.Outer(y, x))
	}

	return c
}

// Stats summarises a weighted point set.
type Stats struct {
	// Centroid is the weighted mean point.
	Centroid geom.Point3
	// Covariance is the self-covariance about Centroid divided by TotalWeight.
	Covariance geom.Matrix3
	// TotalWeight is Σ w_i.
	TotalWeight float64
}

// Scatter computes the centroid and the weight-normalised self-covariance in one pass
// over validated input. The covariance is exactly symmetric.
//
// Errors: as Centroid.
// Complexity: O(n).
func Scatter(points []geom.Point3, weights []float64) (Stats, error) {
	total, err := geom.ValidateWeighted(points, weights)
	if err != nil {
		return Stats{}, geom.Errorf(opScatter, err)
	}
	c := weightedMean(points, weights, total)
	cov := crossCovariance(points, points, c, c, weights).Scale(1 / total).Symmetrize()

	return Stats{Centroid: c, Covariance: cov, TotalWeight: total}, nil
}
