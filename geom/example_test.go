package geom_test

import (
	"fmt"

	"github.com/kasprzak-oleander/polyskel/geom"
)

// ExampleBisector shows the inward axis ray computed at a right-angle
// corner of a counter-clockwise square.
func ExampleBisector() {
	cv := geom.Coordinate{X: 0, Y: 0}
	left := geom.NewRay(cv, geom.Coordinate{X: 0, Y: 1})
	right := geom.NewRay(cv, geom.Coordinate{X: 1, Y: 0})

	axis := geom.Bisector(left, right, cv, true)
	fmt.Printf("%.3f %.3f\n", axis.Angle.X, axis.Angle.Y)
	// Output: 1.000 1.000
}
