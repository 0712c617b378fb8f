// SPDX-License-Identifier: MIT

package eigen

import (
	"math"

	"github.com/katalvlaran/rigid3/geom"
)

// Decompose computes the eigen-decomposition of a symmetric 3×3 matrix via Jacobi rotations.
// Implementation:
//   - Stage 1: Validate finite entries and symmetry relative to ‖m‖_F; average m with mᵗ.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| (fixed i→j scan) and
//     apply the rotation that zeroes it, accumulating rotations into Q.
//   - Stage 3: Read eigenvalues from diag(A) and eigenvectors from the columns of Q.
//
// Behavior highlights:
//   - The zero matrix short-circuits to eigenvalues 0 with the standard basis.
//   - Hitting the rotation cap returns the current estimate with Converged=false.
//
// Errors:
//   - geom.ErrNaNInf (non-finite entry), ErrAsymmetry (not symmetric within tolerance).
//
// Determinism:
//   - Fixed pivot scan and update order produce identical results for identical inputs.
//
// Complexity:
//   - Time O(maxRotations), Space O(1).
func Decompose(m geom.Matrix3, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	if !m.IsFinite() {
		return Result{}, geom.Errorf(opDecompose, geom.ErrNaNInf)
	}
	norm := m.Frobenius()
	if !m.IsSymmetric(o.symTol * norm) {
		return Result{}, geom.Errorf(opDecompose, ErrAsymmetry)
	}
	if norm == 0 {
		return Result{
			Pairs: [3]Pair{
				{Vector: geom.Point3{X: 1}},
				{Vector: geom.Point3{Y: 1}},
				{Vector: geom.Point3{Z: 1}},
			},
			Converged: true,
		}, nil
	}

	a := m.Symmetrize() // working copy, kept exactly symmetric
	q := geom.Identity()
	threshold := o.tol * norm

	var (
		rotations     int
		p, r          int     // pivot indices, p < r
		maxOff, off   float64 // largest |A[p,r]| and a scan temporary
		app, arr, apr float64
		theta, t      float64
		c, s          float64
		aip, air      float64
		qip, qir      float64
		i, j          int
		converged     bool
	)
	for {
		// Find pivot maximizing |A[p,r]| over the upper triangle.
		maxOff = 0
		for i = 0; i < 3; i++ {
			for j = i + 1; j < 3; j++ {
				off = math.Abs(a[i*3+j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		if maxOff <= threshold {
			converged = true
			break
		}
		if rotations == o.maxRotations {
			break
		}
		rotations++

		app = a[p*3+p]
		arr = a[r*3+r]
		apr = a[p*3+r]

		// θ = (arr−app)/(2·apr); t = sign(θ)/(|θ|+√(θ²+1)) is the smaller root of t²+2θt−1=0.
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// The remaining index k ∉ {p, r}.
		k := 3 - p - r
		aip = a[k*3+p]
		air = a[k*3+r]
		a[k*3+p], a[p*3+k] = c*aip-s*air, c*aip-s*air
		a[k*3+r], a[r*3+k] = s*aip+c*air, s*aip+c*air

		a[p*3+p] = c*c*app - 2*c*s*apr + s*s*arr
		a[r*3+r] = s*s*app + 2*c*s*apr + c*c*arr
		a[p*3+r], a[r*3+p] = 0, 0

		// Q ← Q·J
		for i = 0; i < 3; i++ {
			qip = q[i*3+p]
			qir = q[i*3+r]
			q[i*3+p] = c*qip - s*qir
			q[i*3+r] = s*qip + c*qir
		}
	}

	res := Result{
		Converged:   converged,
		Rotations:   rotations,
		OffDiagonal: maxOff,
	}
	for i = 0; i < 3; i++ {
		res.Pairs[i] = Pair{Value: a[i*3+i], Vector: q.Col(i).Unit()}
	}

	return res, nil
}
