// SPDX-License-Identifier: MIT

package superpose

import (
	"math"

	"github.com/katalvlaran/rigid3/eigen"
	"github.com/katalvlaran/rigid3/geom"
	"github.com/katalvlaran/rigid3/moments"
)

const (
	opSuperpose = "Superpose"
	opKabsch    = "Kabsch"
)

// Result is a superposition with the quantities it was derived from.
type Result struct {
	// Transform maps the first point set onto the second.
	Transform geom.RigidTransform

	// RMSD is the weighted root-mean-square deviation after applying Transform.
	RMSD float64

	// SingularValues of the cross-covariance, descending, all ≥ 0.
	SingularValues [3]float64

	// CentroidA and CentroidB are the weighted centroids of the two sets.
	CentroidA, CentroidB geom.Point3

	// Reflection is set when the unconstrained optimum was a mirror image and
	// the smallest singular direction was flipped to keep a proper rotation.
	Reflection bool

	// Degenerate is set when the rotation is not uniquely determined
	// (coincident or collinear points, fewer than three usable points).
	Degenerate bool

	// Converged mirrors eigen.Result.Converged for the RᵗR decomposition.
	Converged bool
}

// Warning returns geom.ErrDegenerateInput (tagged) for a degenerate result, nil otherwise.
func (r Result) Warning() error {
	if !r.Degenerate {
		return nil
	}

	return geom.Errorf(opKabsch, geom.ErrDegenerateInput)
}

// Superpose returns the rigid transform T minimising Σ w_i·‖T(a_i) − b_i‖².
// A nil weights slice means uniform weights.
//
// Errors:
//   - geom.ErrSizeMismatch (len(a) != len(b), or weights length mismatch).
//   - geom.ErrDegenerateInput (no points, zero total weight; any degeneracy under WithStrict).
//   - geom.ErrInvalidWeight, geom.ErrNaNInf.
func Superpose(a, b []geom.Point3, weights []float64, opts ...Option) (geom.RigidTransform, error) {
	res, err := kabsch(a, b, weights, gatherOptions(opts...))
	if err != nil {
		return geom.RigidTransform{}, geom.Errorf(opSuperpose, err)
	}

	return res.Transform, nil
}

// Kabsch is Superpose with diagnostics.
func Kabsch(a, b []geom.Point3, weights []float64, opts ...Option) (Result, error) {
	res, err := kabsch(a, b, weights, gatherOptions(opts...))
	if err != nil {
		return Result{}, geom.Errorf(opKabsch, err)
	}

	return res, nil
}

func kabsch(a, b []geom.Point3, weights []float64, o Options) (Result, error) {
	// Stage 1: validate and centre.
	if _, err := geom.ValidatePaired(a, b, weights); err != nil {
		return Result{}, err
	}
	ca, err := moments.Centroid(a, weights)
	if err != nil {
		return Result{}, err
	}
	cb, err := moments.Centroid(b, weights)
	if err != nil {
		return Result{}, err
	}

	// Stage 2: cross-covariance R[i][j] = Σ w·(b−cb)[i]·(a−ca)[j].
	r, err := moments.Covariance(a, b, ca, cb, weights)
	if err != nil {
		return Result{}, err
	}

	// Stage 3: eigenvectors of RᵗR, largest eigenvalue first.
	es, err := eigen.Decompose(r.Transpose().Mul(r), o.eigen...)
	if err != nil {
		return Result{}, err
	}
	desc := es.SortedDescending()
	a1 := desc[0].Vector
	a2 := desc[1].Vector
	a3 := a1.Cross(a2)

	ra1, ra2, ra3 := r.MulVec(a1), r.MulVec(a2), r.MulVec(a3)
	res := Result{
		SingularValues: [3]float64{ra1.Norm(), ra2.Norm(), ra3.Norm()},
		CentroidA:      ca,
		CentroidB:      cb,
		Converged:      es.Converged,
	}
	sigma1, sigma2 := res.SingularValues[0], res.SingularValues[1]

	var u geom.Matrix3
	switch {
	case sigma1 <= o.degTol*spreadBound(a, b, ca, cb, weights):
		// Coincident points on either side: any rotation is optimal.
		res.Degenerate = true
		u = geom.Identity()

	case sigma2 <= o.degTol*sigma1:
		// Collinear data: only a1 ↦ b1 is determined.
		res.Degenerate = true
		u = minimalRotation(a1, ra1.Unit())

	default:
		// Stage 4: images of the two dominant axes, re-orthogonalised.
		b1 := ra1.Unit()
		b2 := ra2.Sub(b1.Scale(ra2.Dot(b1))).Unit()
		b3 := b1.Cross(b2)

		// Stage 5: reflection check. b3 = b1×b2 already keeps the triad
		// right-handed, which is the correction; only record it. Planar data
		// has R·a3 ≈ 0, so rounding noise below the cut-off is not a reflection.
		res.Reflection = b3.Dot(ra3) < -o.degTol*sigma1

		// Stage 6: U = Σ b_k ⊗ a_k.
		u = geom.Outer(b1, a1).Add(geom.Outer(b2, a2)).Add(geom.Outer(b3, a3))
		if u.Det() < 0 {
			u = geom.Outer(b1, a1).Add(geom.Outer(b2, a2)).Sub(geom.Outer(b3, a3))
		}
	}
	if res.Degenerate && o.strict {
		return Result{}, geom.ErrDegenerateInput
	}

	// Stage 7: Translate(cb) ∘ Rotate(U) ∘ Translate(−ca).
	res.Transform = geom.Translate(cb).Compose(geom.Rotate(u)).Compose(geom.Translate(ca.Neg()))
	res.RMSD = alignedRMSD(a, b, weights, res.Transform)

	return res, nil
}

// spreadBound returns sqrt(Σw‖a−ca‖² · Σw‖b−cb‖²), an upper bound of σ1.
func spreadBound(a, b []geom.Point3, ca, cb geom.Point3, weights []float64) float64 {
	var ea, eb float64
	for i := range a {
		w := geom.Weight(weights, i)
		ea += w * a[i].Sub(ca).Norm2()
		eb += w * b[i].Sub(cb).Norm2()
	}

	return math.Sqrt(ea * eb)
}

// minimalRotation returns the smallest proper rotation taking unit vector from onto unit vector to.
func minimalRotation(from, to geom.Point3) geom.Matrix3 {
	axis := from.Cross(to)
	s := axis.Norm()
	c := from.Dot(to)
	if s <= 1e-15 {
		if c > 0 {
			return geom.Identity()
		}
		// antiparallel: half turn about any perpendicular
		return geom.AxisAngle(from.AnyPerpendicular(), math.Pi)
	}

	return geom.AxisAngle(axis, math.Atan2(s, c))
}
