// SPDX-License-Identifier: MIT

package fit

import (
	"math"

	"github.com/katalvlaran/rigid3/eigen"
	"github.com/katalvlaran/rigid3/geom"
	"github.com/katalvlaran/rigid3/moments"
)

const (
	opBestFitLine = "BestFitLine"
	opFitLine     = "FitLine"
)

// Line is the infinite line {Origin + s·Direction}.
type Line struct {
	// Direction is a unit vector along the line.
	Direction geom.Point3
	// Origin is the point of the line closest to the coordinate origin.
	Origin geom.Point3
}

// NewLine builds a Line through p with direction d, normalising both
// the direction and the reference point. A zero d yields the X axis direction.
func NewLine(d, p geom.Point3) Line {
	u := d.Unit()
	if u.Norm2() == 0 {
		u = geom.Point3{X: 1}
	}

	return Line{Direction: u, Origin: p.Sub(u.Scale(p.Dot(u)))}
}

// ClosestPoint returns the point of the line nearest to p.
func (l Line) ClosestPoint(p geom.Point3) geom.Point3 {
	return l.Origin.Add(l.Direction.Scale(l.Direction.Dot(p)))
}

// Distance returns the perpendicular distance from p to the line.
func (l Line) Distance(p geom.Point3) float64 {
	return p.Distance(l.ClosestPoint(p))
}

// LineFit is a fitted line with the statistics it was derived from.
type LineFit struct {
	Line

	// Centroid is the weighted mean of the input points.
	Centroid geom.Point3
	// Eigenvalues of the weight-normalised covariance, descending.
	Eigenvalues [3]float64
	// RMSResidual is the weighted root-mean-square distance of the points from the line.
	RMSResidual float64
	// Underdetermined is set when the two largest eigenvalues coincide
	// (a single point, or data with no dominant direction).
	Underdetermined bool
	// Converged mirrors eigen.Result.Converged.
	Converged bool
}

// BestFitLine returns the line minimising Σ w_i · dist(p_i, line)².
//
// Errors: as BestFitPlane.
func BestFitLine(points []geom.Point3, weights []float64, opts ...Option) (Line, error) {
	f, err := fitLine(points, weights, opts...)
	if err != nil {
		return Line{}, geom.Errorf(opBestFitLine, err)
	}

	return f.Line, nil
}

// FitLine is BestFitLine with diagnostics.
func FitLine(points []geom.Point3, weights []float64, opts ...Option) (LineFit, error) {
	f, err := fitLine(points, weights, opts...)
	if err != nil {
		return LineFit{}, geom.Errorf(opFitLine, err)
	}

	return f, nil
}

func fitLine(points []geom.Point3, weights []float64, opts ...Option) (LineFit, error) {
	o := gatherOptions(opts...)

	st, err := moments.Scatter(points, weights)
	if err != nil {
		return LineFit{}, err
	}
	res, err := eigen.Decompose(st.Covariance, o.eigen...)
	if err != nil {
		return LineFit{}, err
	}
	desc := res.SortedDescending()

	d := canonical(desc[0].Vector.Unit())
	lmax := desc[0].Value

	return LineFit{
		Line: Line{
			Direction: d,
			Origin:    st.Centroid.Sub(d.Scale(st.Centroid.Dot(d))),
		},
		Centroid:        st.Centroid,
		Eigenvalues:     [3]float64{desc[0].Value, desc[1].Value, desc[2].Value},
		RMSResidual:     math.Sqrt(math.Max(0, desc[1].Value+desc[2].Value)),
		Underdetermined: lmax <= 0 || desc[0].Value-desc[1].Value <= o.degTol*lmax,
		Converged:       res.Converged,
	}, nil
}
