// SPDX-License-Identifier: MIT

// Package fit finds the plane and the line that best approximate a weighted
// 3-D point set in the least-squares sense (principal component analysis).
//
// 🚀 How it works:
//
//	1. Weighted centroid c and weight-normalised covariance C about c.
//	2. Eigen-decomposition of C.
//	3. Plane: normal = eigenvector of the smallest eigenvalue.
//	   Line:  direction = eigenvector of the largest eigenvalue.
//
// The eigenvalues of C are the weighted mean squared extents of the data along
// each principal axis, so the smallest one is the mean squared distance of the
// points from the fitted plane.
//
// Reference points:
//
//	Plane.Origin = n·(c·n), the point of the plane closest to the coordinate
//	origin (not the centroid). Line.Origin = c − d·(c·d), likewise the point of
//	the line closest to the coordinate origin.
//
// Under-determined fits:
//
//	Fewer than three points, or collinear points, leave the plane normal free
//	to spin about the data line. This is not an error: FitPlane still returns a
//	valid unit normal orthogonal to the data and sets Underdetermined. The same
//	holds for FitLine when the data has no dominant direction.
//
// Sign convention:
//
//	Eigenvectors carry no sign. Normals and directions are oriented so that
//	their largest-magnitude component is positive.
package fit
