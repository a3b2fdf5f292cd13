package offset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kasprzak-oleander/polyskel/polygon"
)

func TestSignedArea_CCWPositiveCWNegative(t *testing.T) {
	ccw := polygon.Ring{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	cw := polygon.Ring{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}

	assert.Greater(t, signedArea(ccw), 0.0)
	assert.Less(t, signedArea(cw), 0.0)
}

func TestClassifyAndNest_AssignsHoleToContainingExterior(t *testing.T) {
	shell := polygon.Ring{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	hole := polygon.Ring{{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 2}}

	mp := classifyAndNest([]polygon.Ring{shell, hole})
	if assertLen(t, mp.Polygons, 1) {
		assert.Len(t, mp.Polygons[0].Holes, 1)
	}
}

func assertLen(t *testing.T, polys []polygon.Polygon, n int) bool {
	t.Helper()
	return assert.Len(t, polys, n)
}

func TestPointInRing_UnitSquare(t *testing.T) {
	square := polygon.Ring{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	assert.True(t, pointInRing(square[0].Add(square[2]).Scale(0.5), square))
	assert.False(t, pointInRing(square[0].Add(square[2]).Scale(2), square))
}
