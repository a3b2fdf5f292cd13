package polygon_test

import (
	"fmt"

	"github.com/kasprzak-oleander/polyskel/polygon"
)

// ExampleNewPolygon builds a unit square polygon and reports its ring
// sizes.
func ExampleNewPolygon() {
	p, err := polygon.NewPolygon(square())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(p.Exterior), len(p.Holes))
	// Output: 4 0
}
