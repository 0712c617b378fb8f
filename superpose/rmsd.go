// SPDX-License-Identifier: MIT

package superpose

import (
	"math"

	"github.com/katalvlaran/rigid3/geom"
)

const (
	opRMSD        = "RMSD"
	opAlignedRMSD = "AlignedRMSD"
)

// RMSD returns sqrt(Σ w_i·‖a_i − b_i‖² / Σ w_i) without any fitting.
//
// Errors: geom.ErrSizeMismatch, geom.ErrDegenerateInput, geom.ErrInvalidWeight, geom.ErrNaNInf.
func RMSD(a, b []geom.Point3, weights []float64) (float64, error) {
	if _, err := geom.ValidatePaired(a, b, weights); err != nil {
		return 0, geom.Errorf(opRMSD, err)
	}

	return alignedRMSD(a, b, weights, geom.IdentityTransform()), nil
}

// AlignedRMSD returns the weighted RMSD between t(a_i) and b_i.
//
// Errors: as RMSD.
func AlignedRMSD(a, b []geom.Point3, weights []float64, t geom.RigidTransform) (float64, error) {
	if _, err := geom.ValidatePaired(a, b, weights); err != nil {
		return 0, geom.Errorf(opAlignedRMSD, err)
	}

	return alignedRMSD(a, b, weights, t), nil
}

// alignedRMSD assumes validated input with positive total weight.
func alignedRMSD(a, b []geom.Point3, weights []float64, t geom.RigidTransform) float64 {
	var sum, total float64
	for i := range a {
		w := geom.Weight(weights, i)
		sum += w * t.Apply(a[i]).Sub(b[i]).Norm2()
		total += w
	}

	return math.Sqrt(sum / total)
}
