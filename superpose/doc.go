// SPDX-License-Identifier: MIT

// Package superpose finds the rigid transform (rotation + translation) that
// best maps one weighted point set onto another, following
//
//	W. Kabsch (1976) A solution for the best rotation to relate two sets of
//	vectors. Acta Cryst. A32: 922.
//	W. Kabsch (1978) A discussion of the solution for the best rotation to
//	relate two sets of vectors. Acta Cryst. A34: 827-828.
//
// A brief, high-level overview:
//
//	Centre both sets on their weighted centroids and build the cross-covariance
//	R = Σ w (b−cB) ⊗ (a−cA). The eigenvectors a1, a2 of RᵗR (largest first)
//	and their images b_k = R·a_k/‖R·a_k‖ give two orthonormal pairs; the third
//	vectors are completed with cross products, a3 = a1×a2 and b3 = b1×b2, so
//	both triads are right-handed. The rotation is U = Σ b_k ⊗ a_k and the full
//	transform is Translate(cB) ∘ Rotate(U) ∘ Translate(−cA).
//
// Reflections:
//
//	When b3·(R·a3) < 0 the unconstrained least-squares optimum is an improper
//	orthogonal matrix (a mirror image). Completing b3 as b1×b2 flips the
//	smallest singular direction and yields the best proper rotation instead.
//	Result.Reflection reports that this happened; the returned rotation always
//	has determinant +1.
//
// Degenerate input:
//
//	Fewer than three non-collinear points leave the rotation underdetermined.
//	Kabsch still returns a valid proper rotation (the identity when all points
//	coincide, the smallest rotation aligning the two data lines when they are
//	collinear) and sets Result.Degenerate. WithStrict turns this into an error.
//
// All functions are pure and safe for concurrent use.
package superpose
