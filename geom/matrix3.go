// SPDX-License-Identifier: MIT
// Package geom: fixed-size 3×3 matrix kernel.
//
// Layout (row-major):
//
//	| 0 1 2 |
//	| 3 4 5 |
//	| 6 7 8 |
//
// Notes:
//   - Matrix3 is an array, so assignment copies. Methods never mutate the receiver.
//   - Symmetric covariance matrices and general rotations share this type.

package geom

import "math"

// Matrix3 is a row-major 3×3 matrix.
type Matrix3 [9]float64

// Identity returns I₃.
func Identity() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Diagonal returns diag(a, b, c).
func Diagonal(a, b, c float64) Matrix3 {
	return Matrix3{
		a, 0, 0,
		0, b, 0,
		0, 0, c,
	}
}

// FromRows builds a matrix whose rows are r0, r1, r2.
func FromRows(r0, r1, r2 Point3) Matrix3 {
	return Matrix3{
		r0.X, r0.Y, r0.Z,
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
	}
}

// FromCols builds a matrix whose columns are c0, c1, c2.
func FromCols(c0, c1, c2 Point3) Matrix3 {
	return FromRows(c0, c1, c2).Transpose()
}

// Outer returns the outer product u ⊗ v, i.e. M[i][j] = u[i]·v[j].
func Outer(u, v Point3) Matrix3 {
	return Matrix3{
		u.X * v.X, u.X * v.Y, u.X * v.Z,
		u.Y * v.X, u.Y * v.Y, u.Y * v.Z,
		u.Z * v.X, u.Z * v.Y, u.Z * v.Z,
	}
}

// At returns M[i][j]. Indices outside 0..2 panic like any array access.
func (m Matrix3) At(i, j int) float64 { return m[i*3+j] }

// Row returns row i as a Point3.
func (m Matrix3) Row(i int) Point3 { return Point3{m[i*3], m[i*3+1], m[i*3+2]} }

// Col returns column j as a Point3.
func (m Matrix3) Col(j int) Point3 { return Point3{m[j], m[3+j], m[6+j]} }

// Add returns m + n.
func (m Matrix3) Add(n Matrix3) Matrix3 {
	var r Matrix3
	for i := range r {
		r[i] = m[i] + n[i]
	}

	return r
}

// Sub returns m − n.
func (m Matrix3) Sub(n Matrix3) Matrix3 {
	var r Matrix3
	for i := range r {
		r[i] = m[i] - n[i]
	}

	return r
}

// Scale returns s·m.
func (m Matrix3) Scale(s float64) Matrix3 {
	var r Matrix3
	for i := range r {
		r[i] = s * m[i]
	}

	return r
}

// Mul returns the matrix product m·n.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	return Matrix3{
		m[0]*n[0] + m[1]*n[3] + m[2]*n[6],
		m[0]*n[1] + m[1]*n[4] + m[2]*n[7],
		m[0]*n[2] + m[1]*n[5] + m[2]*n[8],

		m[3]*n[0] + m[4]*n[3] + m[5]*n[6],
		m[3]*n[1] + m[4]*n[4] + m[5]*n[7],
		m[3]*n[2] + m[4]*n[5] + m[5]*n[8],

		m[6]*n[0] + m[7]*n[3] + m[8]*n[6],
		m[6]*n[1] + m[7]*n[4] + m[8]*n[7],
		m[6]*n[2] + m[7]*n[5] + m[8]*n[8],
	}
}

// MulVec returns m·v.
func (m Matrix3) MulVec(v Point3) Point3 {
	return Point3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns mᵗ.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Trace returns m[0][0] + m[1][1] + m[2][2].
func (m Matrix3) Trace() float64 { return m[0] + m[4] + m[8] }

// Det returns the determinant (rule of Sarrus).
func (m Matrix3) Det() float64 {
	// 048 + 156 + 237 - 246 - 138 - 057
	return m[0]*m[4]*m[8] +
		m[1]*m[5]*m[6] +
		m[2]*m[3]*m[7] -
		m[2]*m[4]*m[6] -
		m[1]*m[3]*m[8] -
		m[0]*m[5]*m[7]
}

// Frobenius returns sqrt(Σ m[i]²). Entries are scaled by the largest
// magnitude first, so the result stays finite for any finite matrix.
func (m Matrix3) Frobenius() float64 {
	var big float64
	for _, v := range m {
		big = math.Max(big, math.Abs(v))
	}
	if big == 0 || math.IsInf(big, 0) || math.IsNaN(big) {
		return big
	}
	var s float64
	for _, v := range m {
		v /= big
		s += v * v
	}

	return big * math.Sqrt(s)
}

// IsFinite reports whether no entry is NaN or ±Inf.
func (m Matrix3) IsFinite() bool {
	for _, v := range m {
		if !isFinite(v) {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether |m[i][j] − m[j][i]| ≤ tol for all i<j.
func (m Matrix3) IsSymmetric(tol float64) bool {
	return math.Abs(m[1]-m[3]) <= tol &&
		math.Abs(m[2]-m[6]) <= tol &&
		math.Abs(m[5]-m[7]) <= tol
}

// Symmetrize returns (m + mᵗ)/2.
func (m Matrix3) Symmetrize() Matrix3 {
	return m.Add(m.Transpose()).Scale(0.5)
}

// ApproxEqual reports whether every entry differs by at most tol.
func (m Matrix3) ApproxEqual(n Matrix3, tol float64) bool {
	for i := range m {
		if math.Abs(m[i]-n[i]) > tol {
			return false
		}
	}

	return true
}

// IsRotation reports whether m is orthonormal with determinant +1, both within tol.
func (m Matrix3) IsRotation(tol float64) bool {
	return m.Transpose().Mul(m).ApproxEqual(Identity(), tol) && math.Abs(m.Det()-1) <= tol
}
