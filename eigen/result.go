// SPDX-License-Identifier: MIT

package eigen

import (
	"math"
	"sort"

	"github.com/katalvlaran/rigid3/geom"
)

// Pair is one eigenvalue with its unit eigenvector.
type Pair struct {
	Value  float64
	Vector geom.Point3
}

// Result holds the three eigenpairs of a symmetric 3×3 matrix in unspecified order,
// plus a quality indicator for the iteration that produced them.
type Result struct {
	Pairs [3]Pair

	// Converged is false when the rotation cap was hit before the largest
	// off-diagonal entry fell below the tolerance.
	Converged bool

	// Rotations is the number of Jacobi rotations applied.
	Rotations int

	// OffDiagonal is the largest remaining |A[p,q]|, p≠q, at exit.
	OffDiagonal float64
}

// SortedAscending returns the pairs ordered by increasing eigenvalue.
// Ties keep their solver order.
func (r Result) SortedAscending() [3]Pair {
	out := r.Pairs
	sort.SliceStable(out[:], func(i, j int) bool { return out[i].Value < out[j].Value })

	return out
}

// SortedDescending returns the pairs ordered by decreasing eigenvalue.
// Ties keep their solver order.
func (r Result) SortedDescending() [3]Pair {
	out := r.Pairs
	sort.SliceStable(out[:], func(i, j int) bool { return out[i].Value > out[j].Value })

	return out
}

// Values returns the eigenvalues in solver order.
func (r Result) Values() [3]float64 {
	return [3]float64{r.Pairs[0].Value, r.Pairs[1].Value, r.Pairs[2].Value}
}

// Vectors returns the matrix whose columns are the eigenvectors in solver order.
func (r Result) Vectors() geom.Matrix3 {
	return geom.FromCols(r.Pairs[0].Vector, r.Pairs[1].Vector, r.Pairs[2].Vector)
}

// Residual returns max_k ‖m·v_k − λ_k·v_k‖, the accuracy of the pairs as eigenpairs of m.
func (r Result) Residual(m geom.Matrix3) float64 {
	var worst float64
	for _, p := range r.Pairs {
		worst = math.Max(worst, m.MulVec(p.Vector).Sub(p.Vector.Scale(p.Value)).Norm())
	}

	return worst
}
