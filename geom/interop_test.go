// SPDX-License-Identifier: MIT
package geom_test

import (
	"math"
	"testing"

	geor3 "github.com/golang/geo/r3"
	"github.com/katalvlaran/rigid3/geom"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestInterop_Vectors(t *testing.T) {
	t.Parallel()

	p := geom.Point3{X: 1.5, Y: -2, Z: 8}

	require.Equal(t, r3.Vec{X: 1.5, Y: -2, Z: 8}, p.Vec())
	require.Equal(t, p, geom.FromVec(p.Vec()))
	require.Equal(t, geor3.Vector{X: 1.5, Y: -2, Z: 8}, p.Vector())
	require.Equal(t, p, geom.FromVector(p.Vector()))

	// cross products agree with both libraries
	q := geom.Point3{X: 0.5, Y: 4, Z: -1}
	require.True(t, geom.FromVec(r3.Cross(p.Vec(), q.Vec())).ApproxEqual(p.Cross(q), tol))
	require.True(t, geom.FromVector(p.Vector().Cross(q.Vector())).ApproxEqual(p.Cross(q), tol))

	require.Equal(t, []geom.Point3{p, q}, geom.PointsFromVecs([]r3.Vec{p.Vec(), q.Vec()}))
	require.Equal(t, []geom.Point3{p, q}, geom.PointsFromVectors([]geor3.Vector{p.Vector(), q.Vector()}))
}

func TestInterop_Dense(t *testing.T) {
	t.Parallel()

	m := geom.Matrix3{1, 2, 3, 4, 5, 6, 7, 8, 10}
	d := m.Dense()
	r, c := d.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, d.At(1, 2))

	// the Dense owns its storage
	d.Set(0, 0, 99)
	require.Equal(t, 1.0, m[0])

	back, err := geom.Matrix3FromDense(m.Dense())
	require.NoError(t, err)
	require.Equal(t, m, back)

	// product agrees with gonum
	var prod mat.Dense
	prod.Mul(m.Dense(), m.Dense())
	got, err := geom.Matrix3FromDense(&prod)
	require.NoError(t, err)
	require.True(t, got.ApproxEqual(m.Mul(m), 1e-12))

	// determinant agrees with gonum
	require.InDelta(t, mat.Det(m.Dense()), m.Det(), 1e-9)

	_, err = geom.Matrix3FromDense(mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, geom.ErrSizeMismatch)

	_, err = geom.Matrix3FromDense(mat.NewDense(3, 3, []float64{1, 0, 0, 0, math.NaN(), 0, 0, 0, 1}))
	require.ErrorIs(t, err, geom.ErrNaNInf)

	s := geom.Matrix3{1, 2, 0, 4, 5, 0, 0, 0, 1}.SymDense()
	require.Equal(t, 3.0, s.At(0, 1))
	require.Equal(t, 3.0, s.At(1, 0))
}

func TestInterop_PointsFromRows(t *testing.T) {
	t.Parallel()

	pts, err := geom.PointsFromRows(mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}))
	require.NoError(t, err)
	require.Equal(t, []geom.Point3{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}}, pts)

	_, err = geom.PointsFromRows(mat.NewDense(2, 2, nil))
	require.ErrorIs(t, err, geom.ErrSizeMismatch)
}
