// Package rigid3 is a small kernel for rigid-body geometry on weighted 3-D
// point sets: optimal superposition (Kabsch), RMSD, and least-squares plane
// and line fits.
//
// What is inside
//
//	A pure-Go, allocation-light toolkit built around one 3×3 symmetric
//	eigen-solver:
//		• geom/      Point3, Matrix3, RigidTransform, input validators, gonum/golang-geo interop
//		• eigen/     largest-pivot Jacobi decomposition of symmetric 3×3 matrices
//		• moments/   weighted centroids, cross-covariance and scatter
//		• superpose/ Kabsch superposition with reflection and degeneracy handling, RMSD
//		• fit/       best-fit plane (smallest eigenvector) and best-fit line (largest)
//
// Conventions
//
//   - A nil weights slice always means uniform weight 1.
//   - Superpose(a, b) returns T with T(a_i) ≈ b_i; the rotation is always proper (det = +1).
//   - Degenerate but answerable inputs (coincident, collinear) return a result
//     with a Degenerate/Underdetermined flag; only unanswerable inputs are errors.
//   - Errors are sentinels from geom wrapped with the failing operation's name,
//     so errors.Is works across package boundaries.
//
// Quick example:
//
//	t, err := superpose.Superpose(model, target, nil)
//	if err != nil { ... }
//	aligned := t.ApplyAll(model)
//
//	go get github.com/katalvlaran/rigid3
package rigid3
