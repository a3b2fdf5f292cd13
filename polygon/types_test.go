package polygon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasprzak-oleander/polyskel/geom"
	"github.com/kasprzak-oleander/polyskel/polygon"
)

func square() polygon.Ring {
	return polygon.Ring{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func TestNewPolygon_RejectsEmptyAndTooShortRings(t *testing.T) {
	_, err := polygon.NewPolygon(nil)
	assert.ErrorIs(t, err, polygon.ErrEmptyRing)

	_, err = polygon.NewPolygon(polygon.Ring{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.ErrorIs(t, err, polygon.ErrTooFewPoints)
}

func TestNewPolygon_ValidatesHolesToo(t *testing.T) {
	_, err := polygon.NewPolygon(square(), polygon.Ring{{X: 0, Y: 0}})
	assert.ErrorIs(t, err, polygon.ErrTooFewPoints)
}

func TestCloseRingAndOpenRing_RoundTrip(t *testing.T) {
	ring := square()
	closed := polygon.CloseRing(ring)
	require.Len(t, closed, len(ring)+1)
	assert.Equal(t, closed[0], closed[len(closed)-1])

	reopened := polygon.OpenRing(closed)
	assert.Equal(t, ring, reopened)
}

func TestOpenRing_LeavesUnclosedRingUnchanged(t *testing.T) {
	ring := []geom.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	assert.Equal(t, polygon.Ring(ring), polygon.OpenRing(ring))
}
