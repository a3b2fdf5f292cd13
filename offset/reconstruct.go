package offset

import (
	"github.com/kasprzak-oleander/polyskel/geom"
	"github.com/kasprzak-oleander/polyskel/polygon"
	"github.com/kasprzak-oleander/polyskel/skeleton"
	"github.com/kasprzak-oleander/polyskel/vqueue"
)

// GetVertexQueue replays sk's event log up to distance d. It is a thin
// pass-through to Skeleton.GetVertexQueue, kept as a package-level
// function so offset's public surface reads self-contained.
func GetVertexQueue(sk *skeleton.Skeleton, d float64) *vqueue.Queue {
	return sk.GetVertexQueue(d)
}

// ringsFromQueue groups vq's slots into one polygon.Ring per disjoint
// loop, emitting each slot's position at distance d along its
// trajectory.
func ringsFromQueue(sk *skeleton.Skeleton, vq *vqueue.Queue, d float64, emit func(rec *skeleton.Record, d float64) []geom.Coordinate) []polygon.Ring {
	triples := vq.Iter()
	if len(triples) == 0 {
		return nil
	}

	var rings []polygon.Ring
	var current polygon.Ring
	curLoop := triples[0].Loop

	flush := func() {
		if len(current) > 0 {
			rings = append(rings, current)
		}
		current = nil
	}

	for _, tr := range triples {
		if tr.Loop != curLoop {
			flush()
			curLoop = tr.Loop
		}
		rec := sk.Table().Get(tr.Real)
		current = append(current, emit(rec, d)...)
	}
	flush()

	return rings
}

// ApplyVertexQueue assembles the miter-cornered offset polygon set at
// distance d from a replayed queue: one coordinate per active vertex,
// rings closed implicitly, classified by signed area, holes nested into
// their first containing exterior.
func ApplyVertexQueue(sk *skeleton.Skeleton, vq *vqueue.Queue, d float64) polygon.MultiPolygon {
	rings := ringsFromQueue(sk, vq, d, func(rec *skeleton.Record, d float64) []geom.Coordinate {
		return []geom.Coordinate{rec.Axis().PointByRatio(d - rec.TimeElapsed())}
	})

	return classifyAndNest(rings)
}

func classifyAndNest(rings []polygon.Ring) polygon.MultiPolygon {
	var exteriors []polygon.Polygon
	var holes []polygon.Ring

	for _, r := range rings {
		if len(r) == 0 {
			continue
		}
		if signedArea(r) > 0 {
			exteriors = append(exteriors, polygon.Polygon{Exterior: r})
		} else {
			holes = append(holes, r)
		}
	}

	for _, h := range holes {
		for i := range exteriors {
			if containsAnyPoint(exteriors[i].Exterior, h) {
				exteriors[i].Holes = append(exteriors[i].Holes, h)
				break
			}
		}
	}

	return polygon.MultiPolygon{Polygons: exteriors}
}

// signedArea returns the shoelace-formula signed area of a ring:
// positive for counter-clockwise winding (exterior), negative for
// clockwise (hole).
func signedArea(r polygon.Ring) float64 {
	var sum float64
	n := len(r)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += r[i].X*r[j].Y - r[j].X*r[i].Y
	}

	return sum / 2
}

func containsAnyPoint(ring polygon.Ring, other polygon.Ring) bool {
	for _, p := range other {
		if pointInRing(p, ring) {
			return true
		}
	}

	return false
}

// pointInRing is the standard ray-casting point-in-polygon test.
func pointInRing(p geom.Coordinate, ring polygon.Ring) bool {
	inside := false
	n := len(ring)

	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := ring[i], ring[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}

	return inside
}
