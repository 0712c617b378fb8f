// SPDX-License-Identifier: MIT

// Package geom provides the value types every other rigid3 package is built on:
// three-component points, row-major 3×3 matrices and rigid transforms.
//
// What & Why:
//
//	Structural alignment and best-fit geometry only ever need fixed-size 3-D
//	algebra. Point3 and Matrix3 are plain arrays/structs passed by value, so no
//	operation can alias or mutate a caller's data. Every method returns a new
//	value.
//
// Contents:
//
//	Point3          x, y, z with add/sub/scale/dot/cross/norm/unit.
//	Matrix3         [9]float64 row-major; mul, transpose, trace, det, outer.
//	RigidTransform  p' = R·p + t; apply, compose, inverse, 4×4 homogeneous.
//	Validators      shared input checks for weighted point sets.
//	Interop         conversions to gonum (mat, spatial/r3) and golang/geo r3.
//
// Errors:
//
//	The sentinels in errors.go are shared by moments, fit and superpose so that
//	callers can match any failure with errors.Is regardless of which layer
//	detected it.
//
// Complexity:
//
//	All Point3/Matrix3 operations are O(1). Validators are O(n) in the number
//	of points.
package geom
