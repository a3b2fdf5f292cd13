package buffer

import (
	"math"

	"github.com/kasprzak-oleander/polyskel/geom"
	"github.com/kasprzak-oleander/polyskel/offset"
	"github.com/kasprzak-oleander/polyskel/polygon"
	"github.com/kasprzak-oleander/polyskel/skeleton"
)

func ringsOf(p polygon.Polygon) [][]geom.Coordinate {
	rings := make([][]geom.Coordinate, 0, 1+len(p.Holes))
	rings = append(rings, []geom.Coordinate(p.Exterior))
	for _, h := range p.Holes {
		rings = append(rings, []geom.Coordinate(h))
	}

	return rings
}

func validatePolygon(p polygon.Polygon) error {
	if err := polygon.ValidateRing(p.Exterior); err != nil {
		return err
	}
	for _, h := range p.Holes {
		if err := polygon.ValidateRing(h); err != nil {
			return err
		}
	}

	return nil
}

// BufferPolygon buffers a single polygon by signedDistance, producing a
// miter-cornered result.
func BufferPolygon(p polygon.Polygon, signedDistance float64, opts ...skeleton.Option) (polygon.MultiPolygon, error) {
	if err := validatePolygon(p); err != nil {
		return polygon.MultiPolygon{}, bufferErrorf("BufferPolygon", err)
	}

	orientInward := signedDistance < 0
	d := math.Abs(signedDistance)

	sk := skeleton.SkeletonOfPolygon(ringsOf(p), orientInward, opts...)
	vq := offset.GetVertexQueue(sk, d)

	return offset.ApplyVertexQueue(sk, vq, d), nil
}

// BufferPolygonRounded is BufferPolygon with rounded-corner
// reconstruction.
func BufferPolygonRounded(p polygon.Polygon, signedDistance float64, skOpts []skeleton.Option, roundOpts []offset.Option) (polygon.MultiPolygon, error) {
	if err := validatePolygon(p); err != nil {
		return polygon.MultiPolygon{}, bufferErrorf("BufferPolygonRounded", err)
	}

	orientInward := signedDistance < 0
	d := math.Abs(signedDistance)

	sk := skeleton.SkeletonOfPolygon(ringsOf(p), orientInward, skOpts...)
	vq := offset.GetVertexQueue(sk, d)

	return offset.ApplyVertexQueueRounded(sk, vq, d, roundOpts...), nil
}

// BufferMultiPolygon buffers every polygon in mp through one shared
// simulation, so disjoint inputs may merge on inflation once their
// offset boundaries would otherwise overlap.
func BufferMultiPolygon(mp polygon.MultiPolygon, signedDistance float64, opts ...skeleton.Option) (polygon.MultiPolygon, error) {
	loops, err := validateAndFlatten(mp)
	if err != nil {
		return polygon.MultiPolygon{}, bufferErrorf("BufferMultiPolygon", err)
	}

	orientInward := signedDistance < 0
	d := math.Abs(signedDistance)

	sk := skeleton.SkeletonOfPolygons(loops, orientInward, opts...)
	vq := offset.GetVertexQueue(sk, d)

	return offset.ApplyVertexQueue(sk, vq, d), nil
}

// BufferMultiPolygonRounded is BufferMultiPolygon with rounded-corner
// reconstruction.
func BufferMultiPolygonRounded(mp polygon.MultiPolygon, signedDistance float64, skOpts []skeleton.Option, roundOpts []offset.Option) (polygon.MultiPolygon, error) {
	loops, err := validateAndFlatten(mp)
	if err != nil {
		return polygon.MultiPolygon{}, bufferErrorf("BufferMultiPolygonRounded", err)
	}

	orientInward := signedDistance < 0
	d := math.Abs(signedDistance)

	sk := skeleton.SkeletonOfPolygons(loops, orientInward, skOpts...)
	vq := offset.GetVertexQueue(sk, d)

	return offset.ApplyVertexQueueRounded(sk, vq, d, roundOpts...), nil
}

func validateAndFlatten(mp polygon.MultiPolygon) ([][][]geom.Coordinate, error) {
	loops := make([][][]geom.Coordinate, 0, len(mp.Polygons))
	for _, p := range mp.Polygons {
		if err := validatePolygon(p); err != nil {
			return nil, err
		}
		loops = append(loops, ringsOf(p))
	}

	return loops, nil
}

// BufferPoint emits an n-sided polygon approximating the disk of radius
// distance around center. A negative distance returns an empty polygon;
// fewer than 3 sides is an error.
func BufferPoint(center geom.Coordinate, distance float64, sides int) (polygon.Polygon, error) {
	if distance < 0 {
		return polygon.Polygon{}, nil
	}
	if sides < 3 {
		return polygon.Polygon{}, bufferErrorf("BufferPoint", ErrNegativeResolution)
	}

	ring := make(polygon.Ring, sides)
	for i := 0; i < sides; i++ {
		theta := 2 * math.Pi * float64(i) / float64(sides)
		ring[i] = geom.Coordinate{
			X: center.X + distance*math.Cos(theta),
			Y: center.Y + distance*math.Sin(theta),
		}
	}

	return polygon.Polygon{Exterior: ring}, nil
}

// SkeletonOfPolygonToLineString builds the skeleton of a single polygon
// and returns its full trajectory forest as line segments, a one-call
// convenience over SkeletonOfPolygon plus ToLineString.
func SkeletonOfPolygonToLineString(p polygon.Polygon, orientInward bool, opts ...skeleton.Option) ([]skeleton.Segment, error) {
	if err := validatePolygon(p); err != nil {
		return nil, bufferErrorf("SkeletonOfPolygonToLineString", err)
	}

	sk := skeleton.SkeletonOfPolygon(ringsOf(p), orientInward, opts...)

	return sk.ToLineString(), nil
}

// SkeletonOfPolygonsToLineString is SkeletonOfPolygonToLineString for a
// MultiPolygon built through one shared simulation.
func SkeletonOfPolygonsToLineString(mp polygon.MultiPolygon, orientInward bool, opts ...skeleton.Option) ([]skeleton.Segment, error) {
	loops, err := validateAndFlatten(mp)
	if err != nil {
		return nil, bufferErrorf("SkeletonOfPolygonsToLineString", err)
	}

	sk := skeleton.SkeletonOfPolygons(loops, orientInward, opts...)

	return sk.ToLineString(), nil
}
