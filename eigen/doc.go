// SPDX-License-Identifier: MIT

// Package eigen computes eigenvalues and eigenvectors of real symmetric 3×3
// matrices with the Jacobi rotation method.
//
// What & Why:
//
//	Covariance and RᵗR matrices in structural fitting are always exactly 3×3
//	and symmetric. A fixed-size Jacobi solver on plain arrays is small, fully
//	deterministic and accurate to a few ulps even for repeated or zero
//	eigenvalues, which is where closed-form cubic solutions lose precision.
//
// Contract:
//
//   - Decompose returns three (value, unit vector) pairs whose vectors are
//     mutually orthogonal. The order is unspecified; use SortedAscending or
//     SortedDescending.
//   - Repeated eigenvalues yield some orthonormal basis of the eigenspace.
//   - The rotation count is capped. Hitting the cap is not an error:
//     Result.Converged is false and Result.OffDiagonal reports the remaining
//     off-diagonal magnitude so callers can judge the estimate.
//
// Usage:
//
//	res, err := eigen.Decompose(cov, eigen.WithMaxRotations(32))
//	if err != nil { ... }
//	pairs := res.SortedAscending()
//	normal := pairs[0].Vector
//
// Complexity:
//
//	O(1) per rotation; at most MaxRotations rotations.
package eigen
