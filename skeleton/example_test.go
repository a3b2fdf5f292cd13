package skeleton_test

import (
	"fmt"

	"github.com/kasprzak-oleander/polyskel/geom"
	"github.com/kasprzak-oleander/polyskel/skeleton"
)

// ExampleSkeletonOfPolygon builds the inward skeleton of a unit square,
// which collapses to four corner-to-centroid segments.
func ExampleSkeletonOfPolygon() {
	square := []geom.Coordinate{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}

	sk := skeleton.SkeletonOfPolygon([][]geom.Coordinate{square}, true)
	fmt.Println(len(sk.ToLineString()))
	// Output: 4
}
