// SPDX-License-Identifier: MIT
package fit_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rigid3/fit"
	"github.com/katalvlaran/rigid3/geom"
)

// ExampleBestFitPlane fits the plane z = 2 through four base atoms and
// measures how far a fifth atom sits above it.
func ExampleBestFitPlane() {
	ring := []geom.Point3{
		{X: 0, Y: 0, Z: 2},
		{X: 1.4, Y: 0, Z: 2},
		{X: 1.4, Y: 1.4, Z: 2},
		{X: 0, Y: 1.4, Z: 2},
	}
	pl, err := fit.BestFitPlane(ring, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	r := func(v float64) float64 { return math.Round(v*1e3)/1e3 + 0 }
	fmt.Printf("normal: (%.3f, %.3f, %.3f)\n", r(pl.Normal.X), r(pl.Normal.Y), r(pl.Normal.Z))
	fmt.Printf("origin: (%.3f, %.3f, %.3f)\n", r(pl.Origin.X), r(pl.Origin.Y), r(pl.Origin.Z))
	fmt.Printf("distance: %.3f\n", r(pl.Distance(geom.Point3{X: 0.7, Y: 0.7, Z: 3.5})))
	// Output:
	// normal: (0.000, 0.000, 1.000)
	// origin: (0.000, 0.000, 2.000)
	// distance: 1.500
}
