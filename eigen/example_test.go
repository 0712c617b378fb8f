// SPDX-License-Identifier: MIT
package eigen_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rigid3/eigen"
	"github.com/katalvlaran/rigid3/geom"
)

// ExampleDecompose decomposes a covariance-like matrix and reads the
// eigenvalues in ascending order.
func ExampleDecompose() {
	m := geom.Matrix3{
		2, 1, 0,
		1, 2, 0,
		0, 0, 5,
	}
	res, err := eigen.Decompose(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range res.SortedAscending() {
		fmt.Printf("%.3f\n", math.Round(p.Value*1e3)/1e3+0)
	}
	// Output:
	// 1.000
	// 3.000
	// 5.000
}
