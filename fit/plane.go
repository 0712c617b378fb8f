// SPDX-License-Identifier: MIT

package fit

import (
	"math"

	"github.com/katalvlaran/rigid3/eigen"
	"github.com/katalvlaran/rigid3/geom"
	"github.com/katalvlaran/rigid3/moments"
)

const (
	opBestFitPlane = "BestFitPlane"
	opFitPlane     = "FitPlane"
)

// Plane is {x : x·Normal = Origin·Normal}.
type Plane struct {
	// Normal is a unit vector perpendicular to the plane.
	Normal geom.Point3
	// Origin is the point of the plane closest to the coordinate origin.
	Origin geom.Point3
}

// Offset returns d in the plane equation n·x = d.
func (pl Plane) Offset() float64 { return pl.Origin.Dot(pl.Normal) }

// SignedDistance returns p·n − o·n: positive on the side the normal points to.
func (pl Plane) SignedDistance(p geom.Point3) float64 {
	return p.Dot(pl.Normal) - pl.Offset()
}

// Distance returns the unsigned perpendicular distance |p·n − o·n|.
func (pl Plane) Distance(p geom.Point3) float64 {
	return math.Abs(pl.SignedDistance(p))
}

// Project returns the foot of the perpendicular from p onto the plane.
func (pl Plane) Project(p geom.Point3) geom.Point3 {
	return p.Sub(pl.Normal.Scale(pl.SignedDistance(p)))
}

// Equation returns (a, b, c, d) with a·x + b·y + c·z + d = 0.
func (pl Plane) Equation() [4]float64 {
	n := pl.Normal

	return [4]float64{n.X, n.Y, n.Z, -pl.Offset()}
}

// PlaneFit is a fitted plane with the statistics it was derived from.
type PlaneFit struct {
	Plane

	// Centroid is the weighted mean of the input points.
	Centroid geom.Point3
	// Eigenvalues of the weight-normalised covariance, ascending.
	Eigenvalues [3]float64
	// RMSResidual is the weighted root-mean-square distance of the points from the plane.
	RMSResidual float64
	// Underdetermined is set when the two smallest eigenvalues coincide
	// (fewer than three distinct points, or collinear points).
	Underdetermined bool
	// Converged mirrors eigen.Result.Converged.
	Converged bool
}

// BestFitPlane returns the plane minimising Σ w_i · dist(p_i, plane)².
// A nil weights slice means uniform weights.
//
// Errors:
//   - geom.ErrDegenerateInput (no points, zero total weight).
//   - geom.ErrSizeMismatch, geom.ErrInvalidWeight, geom.ErrNaNInf.
func BestFitPlane(points []geom.Point3, weights []float64, opts ...Option) (Plane, error) {
	f, err := fitPlane(points, weights, opts...)
	if err != nil {
		return Plane{}, geom.Errorf(opBestFitPlane, err)
	}

	return f.Plane, nil
}

// FitPlane is BestFitPlane with diagnostics.
func FitPlane(points []geom.Point3, weights []float64, opts ...Option) (PlaneFit, error) {
	f, err := fitPlane(points, weights, opts...)
	if err != nil {
		return PlaneFit{}, geom.Errorf(opFitPlane, err)
	}

	return f, nil
}

func fitPlane(points []geom.Point3, weights []float64, opts ...Option) (PlaneFit, error) {
	o := gatherOptions(opts...)

	st, err := moments.Scatter(points, weights)
	if err != nil {
		return PlaneFit{}, err
	}
	res, err := eigen.Decompose(st.Covariance, o.eigen...)
	if err != nil {
		return PlaneFit{}, err
	}
	asc := res.SortedAscending()

	n := canonical(asc[0].Vector.Unit())
	lmax := asc[2].Value

	return PlaneFit{
		Plane: Plane{
			Normal: n,
			Origin: n.Scale(st.Centroid.Dot(n)),
		},
		Centroid:        st.Centroid,
		Eigenvalues:     [3]float64{asc[0].Value, asc[1].Value, asc[2].Value},
		RMSResidual:     math.Sqrt(math.Max(0, asc[0].Value)),
		Underdetermined: lmax <= 0 || asc[1].Value-asc[0].Value <= o.degTol*lmax,
		Converged:       res.Converged,
	}, nil
}

// canonical flips v so that its largest-magnitude component is positive.
func canonical(v geom.Point3) geom.Point3 {
	big := v.X
	if math.Abs(v.Y) > math.Abs(big) {
		big = v.Y
	}
	if math.Abs(v.Z) > math.Abs(big) {
		big = v.Z
	}
	if big < 0 {
		return v.Neg()
	}

	return v
}
