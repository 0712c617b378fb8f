// SPDX-License-Identifier: MIT
// Package geom: conversions to and from the gonum and golang/geo vector types.
//
// Purpose:
//   - Let callers that already hold coordinates as gonum r3.Vec / mat.Dense or
//     golang/geo r3.Vector feed them to rigid3 without hand-written loops.
//   - Allow results to be cross-checked against gonum's general solvers.

package geom

import (
	"fmt"

	geor3 "github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec converts p to a gonum spatial vector.
func (p Point3) Vec() r3.Vec { return r3.Vec{X: p.X, Y: p.Y, Z: p.Z} }

// FromVec converts a gonum spatial vector to a Point3.
func FromVec(v r3.Vec) Point3 { return Point3{v.X, v.Y, v.Z} }

// Vector converts p to a golang/geo vector.
func (p Point3) Vector() geor3.Vector { return geor3.Vector{X: p.X, Y: p.Y, Z: p.Z} }

// FromVector converts a golang/geo vector to a Point3.
func FromVector(v geor3.Vector) Point3 { return Point3{v.X, v.Y, v.Z} }

// PointsFromVecs converts a slice of gonum vectors into a new Point3 slice.
func PointsFromVecs(vs []r3.Vec) []Point3 {
	out := make([]Point3, len(vs))
	for i, v := range vs {
		out[i] = FromVec(v)
	}

	return out
}

// PointsFromVectors converts a slice of golang/geo vectors into a new Point3 slice.
func PointsFromVectors(vs []geor3.Vector) []Point3 {
	out := make([]Point3, len(vs))
	for i, v := range vs {
		out[i] = FromVector(v)
	}

	return out
}

// PointsFromRows reads an n×3 gonum matrix (one point per row).
//
// Errors:
//   - ErrSizeMismatch if the matrix does not have exactly three columns.
func PointsFromRows(a mat.Matrix) ([]Point3, error) {
	r, c := a.Dims()
	if c != 3 {
		return nil, fmt.Errorf("PointsFromRows: %dx%d: %w", r, c, ErrSizeMismatch)
	}
	out := make([]Point3, r)
	for i := 0; i < r; i++ {
		out[i] = Point3{a.At(i, 0), a.At(i, 1), a.At(i, 2)}
	}

	return out, nil
}

// Dense returns a freshly allocated 3×3 gonum matrix holding m.
func (m Matrix3) Dense() *mat.Dense {
	data := make([]float64, 9)
	copy(data, m[:])

	return mat.NewDense(3, 3, data)
}

// SymDense returns the symmetric part of m as a gonum SymDense, suitable for mat.EigenSym.
func (m Matrix3) SymDense() *mat.SymDense {
	s := m.Symmetrize()
	data := make([]float64, 9)
	copy(data, s[:])

	return mat.NewSymDense(3, data)
}

// Matrix3FromDense copies a 3×3 gonum matrix.
//
// Errors:
//   - ErrSizeMismatch if a is not 3×3.
//   - ErrNaNInf if any entry is not finite.
func Matrix3FromDense(a mat.Matrix) (Matrix3, error) {
	r, c := a.Dims()
	if r != 3 || c != 3 {
		return Matrix3{}, fmt.Errorf("Matrix3FromDense: %dx%d: %w", r, c, ErrSizeMismatch)
	}
	var m Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i*3+j] = a.At(i, j)
		}
	}
	if !m.IsFinite() {
		return Matrix3{}, fmt.Errorf("Matrix3FromDense: %w", ErrNaNInf)
	}

	return m, nil
}
