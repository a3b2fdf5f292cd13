package polygon

import (
	"fmt"

	"github.com/kasprzak-oleander/polyskel/geom"
)

// Ring is a closed loop of distinct coordinates, wound consistently; the
// implicit closing edge connects the last coordinate back to the first.
type Ring []geom.Coordinate

// ValidateRing reports ErrEmptyRing or ErrTooFewPoints for a
// structurally invalid ring. It does not check self-intersection or
// winding consistency.
func ValidateRing(r Ring) error {
	if len(r) == 0 {
		return polygonErrorf("ValidateRing", ErrEmptyRing)
	}
	if len(r) < 3 {
		return polygonErrorf("ValidateRing", ErrTooFewPoints)
	}

	return nil
}

// CloseRing returns r with its first coordinate repeated at the end,
// the common exchange-format convention for closed rings.
func CloseRing(r Ring) []geom.Coordinate {
	closed := make([]geom.Coordinate, len(r)+1)
	copy(closed, r)
	closed[len(r)] = r[0]

	return closed
}

// OpenRing strips a trailing coordinate that repeats the first (within
// Epsilon), returning the distinct-points form this package stores
// internally. If the last coordinate does not repeat the first, closed
// is returned unchanged.
func OpenRing(closed []geom.Coordinate) Ring {
	if len(closed) < 2 {
		return Ring(closed)
	}
	if geom.ApproxEqualCoord(closed[0], closed[len(closed)-1]) {
		return Ring(closed[:len(closed)-1])
	}

	return Ring(closed)
}

// Polygon is one exterior ring plus zero or more interior (hole) rings.
type Polygon struct {
	Exterior Ring
	Holes    []Ring
}

// NewPolygon validates exterior and every hole and returns the
// assembled Polygon.
func NewPolygon(exterior Ring, holes ...Ring) (Polygon, error) {
	if err := ValidateRing(exterior); err != nil {
		return Polygon{}, err
	}
	for i, h := range holes {
		if err := ValidateRing(h); err != nil {
			return Polygon{}, polygonErrorf(fmt.Sprintf("NewPolygon: hole %d", i), err)
		}
	}

	return Polygon{Exterior: exterior, Holes: holes}, nil
}

// MultiPolygon is an ordered set of Polygons — the engine's standard
// output shape, since both offsetting and splitting can turn one input
// ring into several output polygons.
type MultiPolygon struct {
	Polygons []Polygon
}
