package buffer_test

import (
	"fmt"

	"github.com/kasprzak-oleander/polyskel/buffer"
	"github.com/kasprzak-oleander/polyskel/polygon"
)

// ExampleBufferPolygon deflates a unit square by 0.2 and reports the
// resulting polygon count.
func ExampleBufferPolygon() {
	square, _ := polygon.NewPolygon(polygon.Ring{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	})

	mp, err := buffer.BufferPolygon(square, -0.2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(mp.Polygons))
	// Output: 1
}
