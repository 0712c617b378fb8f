// SPDX-License-Identifier: MIT

package geom

import "math"

// Point3 is an immutable 3-D point (or free vector).
type Point3 struct {
	X, Y, Z float64
}

// Coord returns the i-th coordinate (0=X, 1=Y, 2=Z).
// It panics for any other index, like an out-of-range array access.
func (p Point3) Coord(i int) float64 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	case 2:
		return p.Z
	}
	panic("geom: Point3 coordinate index out of range")
}

// Array returns the coordinates as a fixed array.
func (p Point3) Array() [3]float64 { return [3]float64{p.X, p.Y, p.Z} }

// Add returns p + q.
func (p Point3) Add(q Point3) Point3 { return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

// Sub returns p − q.
func (p Point3) Sub(q Point3) Point3 { return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// Scale returns s·p.
func (p Point3) Scale(s float64) Point3 { return Point3{s * p.X, s * p.Y, s * p.Z} }

// Neg returns −p.
func (p Point3) Neg() Point3 { return Point3{-p.X, -p.Y, -p.Z} }

// Dot returns the scalar product p·q.
func (p Point3) Dot(q Point3) float64 { return p.X*q.X + p.Y*q.Y + p.Z*q.Z }

// Cross returns the vector product p × q (right-handed).
func (p Point3) Cross(q Point3) Point3 {
	return Point3{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}

// Norm2 returns the squared Euclidean length.
func (p Point3) Norm2() float64 { return p.Dot(p) }

// Norm returns the Euclidean length, computed without intermediate overflow.
func (p Point3) Norm() float64 { return math.Hypot(math.Hypot(p.X, p.Y), p.Z) }

// Unit returns p scaled to unit length. The zero vector is returned unchanged.
func (p Point3) Unit() Point3 {
	n := p.Norm()
	if n == 0 {
		return p
	}

	return p.Scale(1 / n)
}

// Distance returns ‖p − q‖.
func (p Point3) Distance(q Point3) float64 { return p.Sub(q).Norm() }

// IsFinite reports whether no coordinate is NaN or ±Inf.
func (p Point3) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

// ApproxEqual reports whether every coordinate differs by at most tol.
func (p Point3) ApproxEqual(q Point3, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol && math.Abs(p.Z-q.Z) <= tol
}

// AnyPerpendicular returns a unit vector orthogonal to p.
// The axis least aligned with p is crossed with it, which keeps the result
// well conditioned. For the zero vector it returns the X axis.
func (p Point3) AnyPerpendicular() Point3 {
	if p.Norm2() == 0 {
		return Point3{1, 0, 0}
	}
	ax, ay, az := math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)
	var axis Point3
	switch {
	case ax <= ay && ax <= az:
		axis = Point3{1, 0, 0}
	case ay <= az:
		axis = Point3{0, 1, 0}
	default:
		axis = Point3{0, 0, 1}
	}

	return p.Cross(axis).Unit()
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
