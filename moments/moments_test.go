// SPDX-License-Identifier: MIT
// Package moments_test contains unit tests for weighted centroid and covariance.
package moments_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/rigid3/geom"
	"github.com/katalvlaran/rigid3/moments"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const tol = 1e-12

var square = []geom.Point3{
	{X: 0, Y: 0, Z: 1},
	{X: 2, Y: 0, Z: 1},
	{X: 2, Y: 2, Z: 1},
	{X: 0, Y: 2, Z: 1},
}

func TestCentroid_Uniform(t *testing.T) {
	t.Parallel()

	c, err := moments.Centroid(square, nil)
	require.NoError(t, err)
	require.True(t, c.ApproxEqual(geom.Point3{X: 1, Y: 1, Z: 1}, tol))
}

func TestCentroid_Weighted(t *testing.T) {
	t.Parallel()

	c, err := moments.Centroid(square, []float64{3, 1, 0, 0})
	require.NoError(t, err)
	require.True(t, c.ApproxEqual(geom.Point3{X: 0.5, Y: 0, Z: 1}, tol))

	// a single weighted point pins the centroid
	c, err = moments.Centroid(square, []float64{0, 0, 2.5, 0})
	require.NoError(t, err)
	require.True(t, c.ApproxEqual(square[2], tol))
}

func TestCentroid_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		points  []geom.Point3
		weights []float64
		wantErr error
	}{
		{"no points", nil, nil, geom.ErrDegenerateInput},
		{"zero total weight", square, []float64{0, 0, 0, 0}, geom.ErrDegenerateInput},
		{"weights length", square, []float64{1, 1}, geom.ErrSizeMismatch},
		{"negative weight", square, []float64{1, -1, 1, 1}, geom.ErrInvalidWeight},
		{"NaN coordinate", []geom.Point3{{X: math.NaN()}}, nil, geom.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := moments.Centroid(tc.points, tc.weights)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	total, err := moments.TotalWeight(square, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 10.0, total)
	_, err = moments.TotalWeight(nil, nil)
	require.ErrorIs(t, err, geom.ErrDegenerateInput)
}

func TestCovariance_IndexConvention(t *testing.T) {
	t.Parallel()

	// one point pair: C = w · (b−cb) ⊗ (a−ca)
	a := []geom.Point3{{X: 1, Y: 2, Z: 3}}
	b := []geom.Point3{{X: 4, Y: 5, Z: 6}}
	c, err := moments.Covariance(a, b, geom.Point3{}, geom.Point3{}, []float64{2})
	require.NoError(t, err)
	require.Equal(t, geom.Outer(b[0], a[0]).Scale(2), c)
	// rows follow pointsB, columns follow pointsA
	require.Equal(t, 2*4*3.0, c.At(0, 2))
	require.Equal(t, 2*6*1.0, c.At(2, 0))
}

func TestCovariance_SelfIsSymmetric(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	pts := make([]geom.Point3, 20)
	w := make([]float64, len(pts))
	for i := range pts {
		pts[i] = geom.Point3{X: rng.NormFloat64(), Y: rng.NormFloat64() * 3, Z: rng.NormFloat64() + 1}
		w[i] = rng.Float64()
	}
	c, err := moments.Centroid(pts, w)
	require.NoError(t, err)
	cov, err := moments.Covariance(pts, pts, c, c, w)
	require.NoError(t, err)
	require.True(t, cov.IsSymmetric(1e-12))
}

func TestCovariance_Errors(t *testing.T) {
	t.Parallel()

	_, err := moments.Covariance(square, square[:3], geom.Point3{}, geom.Point3{}, nil)
	require.ErrorIs(t, err, geom.ErrSizeMismatch)

	_, err = moments.Covariance(square, square, geom.Point3{}, geom.Point3{}, []float64{1})
	require.ErrorIs(t, err, geom.ErrSizeMismatch)

	_, err = moments.Covariance(square, square, geom.Point3{Y: math.Inf(1)}, geom.Point3{}, nil)
	require.ErrorIs(t, err, geom.ErrNaNInf)

	empty, err := moments.Covariance(nil, nil, geom.Point3{}, geom.Point3{}, nil)
	require.NoError(t, err)
	require.Equal(t, geom.Matrix3{}, empty)
}

func TestScatter_AgainstGonumStat(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	const n = 50
	pts := make([]geom.Point3, n)
	w := make([]float64, n)
	data := mat.NewDense(n, 3, nil)
	for i := range pts {
		pts[i] = geom.Point3{X: rng.NormFloat64(), Y: 2 * rng.NormFloat64(), Z: rng.NormFloat64() - 3}
		w[i] = 0.1 + rng.Float64()
		data.SetRow(i, []float64{pts[i].X, pts[i].Y, pts[i].Z})
	}

	st, err := moments.Scatter(pts, w)
	require.NoError(t, err)
	require.True(t, st.Covariance.IsSymmetric(0))

	var sumW float64
	for _, v := range w {
		sumW += v
	}
	require.InDelta(t, sumW, st.TotalWeight, tol)

	for j := 0; j < 3; j++ {
		col := mat.Col(nil, j, data)
		require.InDelta(t, stat.Mean(col, w), st.Centroid.Coord(j), 1e-12)
	}

	// gonum's weighted covariance uses the unbiased (Σw − 1) denominator;
	// rescale to the population form used by Scatter.
	var sym mat.SymDense
	stat.CovarianceMatrix(&sym, data, w)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := sym.At(i, j) * (sumW - 1) / sumW
			require.InDelta(t, want, st.Covariance.At(i, j), 1e-10, "(%d,%d)", i, j)
		}
	}
}

func TestScatter_Errors(t *testing.T) {
	t.Parallel()

	_, err := moments.Scatter(nil, nil)
	require.ErrorIs(t, err, geom.ErrDegenerateInput)
}
