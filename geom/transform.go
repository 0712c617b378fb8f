// SPDX-License-Identifier: MIT

package geom

import "math"

// RigidTransform maps p to Rotation·p + Translation.
// Rotation is expected to be proper (orthonormal, det = +1); constructors in
// this package and superpose only ever produce such matrices.
type RigidTransform struct {
	Rotation    Matrix3
	Translation Point3
}

// IdentityTransform returns the transform that leaves every point in place.
func IdentityTransform() RigidTransform {
	return RigidTransform{Rotation: Identity()}
}

// Translate returns the pure translation p ↦ p + t.
func Translate(t Point3) RigidTransform {
	return RigidTransform{Rotation: Identity(), Translation: t}
}

// Rotate returns the pure rotation p ↦ r·p about the coordinate origin.
func Rotate(r Matrix3) RigidTransform {
	return RigidTransform{Rotation: r}
}

// AxisAngle returns the rotation by angle radians about axis (right-hand rule),
// built with the Rodrigues formula. A zero axis yields the identity.
func AxisAngle(axis Point3, angle float64) Matrix3 {
	if axis.Norm2() == 0 {
		return Identity()
	}
	u := axis.Unit()
	s, c := math.Sincos(angle)
	k := 1 - c

	return Matrix3{
		c + u.X*u.X*k, u.X*u.Y*k - u.Z*s, u.X*u.Z*k + u.Y*s,
		u.Y*u.X*k + u.Z*s, c + u.Y*u.Y*k, u.Y*u.Z*k - u.X*s,
		u.Z*u.X*k - u.Y*s, u.Z*u.Y*k + u.X*s, c + u.Z*u.Z*k,
	}
}

// Apply returns Rotation·p + Translation.
func (t RigidTransform) Apply(p Point3) Point3 {
	return t.Rotation.MulVec(p).Add(t.Translation)
}

// ApplyAll returns a new slice with t applied to every point. The input is not modified.
func (t RigidTransform) ApplyAll(points []Point3) []Point3 {
	out := make([]Point3, len(points))
	for i, p := range points {
		out[i] = t.Apply(p)
	}

	return out
}

// Compose returns t∘u: the transform that applies u first, then t.
func (t RigidTransform) Compose(u RigidTransform) RigidTransform {
	return RigidTransform{
		Rotation:    t.Rotation.Mul(u.Rotation),
		Translation: t.Rotation.MulVec(u.Translation).Add(t.Translation),
	}
}

// Inverse returns the transform undoing t. It relies on Rotation being orthonormal.
func (t RigidTransform) Inverse() RigidTransform {
	rt := t.Rotation.Transpose()

	return RigidTransform{
		Rotation:    rt,
		Translation: rt.MulVec(t.Translation).Neg(),
	}
}

// Homogeneous returns the 4×4 homogeneous matrix [[R t] [0 1]].
func (t RigidTransform) Homogeneous() [4][4]float64 {
	r, v := t.Rotation, t.Translation

	return [4][4]float64{
		{r[0], r[1], r[2], v.X},
		{r[3], r[4], r[5], v.Y},
		{r[6], r[7], r[8], v.Z},
		{0, 0, 0, 1},
	}
}

// ApproxEqual reports whether both parts agree entry-wise within tol.
func (t RigidTransform) ApproxEqual(u RigidTransform, tol float64) bool {
	return t.Rotation.ApproxEqual(u.Rotation, tol) && t.Translation.ApproxEqual(u.Translation, tol)
}
