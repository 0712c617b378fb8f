// SPDX-License-Identifier: MIT
// Package superpose_test contains test fixtures and a gonum-based oracle.
//
// Purpose:
//   - Deterministic random clouds and rotations.
//   - An independent SVD-based Kabsch to cross-check rotations.

package superpose_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/rigid3/geom"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// randomCloud returns n points with clearly different spreads along each axis,
// so the cross-covariance of any rigid copy has well-separated singular values.
func randomCloud(rng *rand.Rand, n int) []geom.Point3 {
	pts := make([]geom.Point3, n)
	for i := range pts {
		pts[i] = geom.Point3{
			X: 5*rng.NormFloat64() + 3,
			Y: 2*rng.NormFloat64() - 1,
			Z: 0.7*rng.NormFloat64() + 10,
		}
	}

	return pts
}

// randomRotation returns a proper rotation about a random axis.
func randomRotation(rng *rand.Rand) geom.Matrix3 {
	axis := geom.Point3{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}

	return geom.AxisAngle(axis, (2*rng.Float64()-1)*math.Pi)
}

func randomWeights(rng *rand.Rand, n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.1 + rng.Float64()
	}

	return w
}

// oracleRotation computes the optimal proper rotation with gonum's SVD:
// H = Σ w (a−ca)(b−cb)ᵗ = U S Vᵗ, R = V diag(1, 1, sign det(V Uᵗ)) Uᵗ.
func oracleRotation(t *testing.T, a, b []geom.Point3, w []float64) geom.Matrix3 {
	t.Helper()
	var ca, cb geom.Point3
	var total float64
	for i := range a {
		wi := geom.Weight(w, i)
		ca = ca.Add(a[i].Scale(wi))
		cb = cb.Add(b[i].Scale(wi))
		total += wi
	}
	ca, cb = ca.Scale(1/total), cb.Scale(1/total)

	var h geom.Matrix3
	for i := range a {
		h = h.Add(geom.Outer(a[i].Sub(ca), b[i].Sub(cb)).Scale(geom.Weight(w, i)))
	}

	var svd mat.SVD
	require.True(t, svd.Factorize(h.Dense(), mat.SVDFull))
	var ud, vd mat.Dense
	svd.UTo(&ud)
	svd.VTo(&vd)
	u, err := geom.Matrix3FromDense(&ud)
	require.NoError(t, err)
	v, err := geom.Matrix3FromDense(&vd)
	require.NoError(t, err)

	d := 1.0
	if v.Mul(u.Transpose()).Det() < 0 {
		d = -1
	}

	return v.Mul(geom.Diagonal(1, 1, d)).Mul(u.Transpose())
}

// requireProper asserts RᵗR ≈ I and det R ≈ +1.
func requireProper(t *testing.T, r geom.Matrix3) {
	t.Helper()
	require.True(t, r.Transpose().Mul(r).ApproxEqual(geom.Identity(), 1e-12), "RᵗR != I: %v", r)
	require.InDelta(t, 1.0, r.Det(), 1e-12)
}
