package offset

import (
	"math"

	"github.com/kasprzak-oleander/polyskel/geom"
	"github.com/kasprzak-oleander/polyskel/polygon"
	"github.com/kasprzak-oleander/polyskel/skeleton"
	"github.com/kasprzak-oleander/polyskel/vqueue"
)

// ApplyVertexQueueRounded is identical to ApplyVertexQueue except at
// each active vertex convex in the propagation sense, where it emits a
// sampled arc instead of a single miter point.
func ApplyVertexQueueRounded(sk *skeleton.Skeleton, vq *vqueue.Queue, d float64, opts ...Option) polygon.MultiPolygon {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	rings := ringsFromQueue(sk, vq, d, func(rec *skeleton.Record, d float64) []geom.Coordinate {
		return roundedCorner(rec, d, sk.OrientInward(), cfg.arcStep)
	})

	return classifyAndNest(rings)
}

// roundedCorner emits either the single miter point (reflex-in-propagation,
// or the corner sense the axis already bisects cleanly) or a sampled arc
// (convex-in-propagation) for one active vertex.
func roundedCorner(rec *skeleton.Record, d float64, orientInward bool, step float64) []geom.Coordinate {
	left := rec.LeftRay()
	axis := rec.Axis()

	// Compare |left.angle + axis.angle| against |left.angle - axis.angle|;
	// the larger sum marks the vertex as bisecting its angle in the
	// ordinary (miter) sense.
	sumNorm := left.Angle.Add(axis.Angle).Norm()
	diffNorm := left.Angle.Sub(axis.Angle).Norm()

	t := d - rec.TimeElapsed()
	if sumNorm >= diffNorm {
		return []geom.Coordinate{axis.PointByRatio(t)}
	}

	leftNormal := outwardNormal(rec.Location(), left, orientInward)
	rightNormal := outwardNormal(rec.Location(), rec.RightRay().Reverse(), orientInward)

	delta := sweepAngle(leftNormal.Angle, rightNormal.Angle)
	signedStep := step
	if delta < 0 {
		signedStep = -step
	}

	var out []geom.Coordinate
	for a := 0.0; ; a += signedStep {
		if (signedStep > 0 && a >= delta) || (signedStep < 0 && a <= delta) {
			out = append(out, rightNormal.PointByRatio(t))
			break
		}
		out = append(out, leftNormal.Rotate(a).PointByRatio(t))
	}

	return out
}

// outwardNormal returns the unit ray, anchored at origin, perpendicular
// to edge's direction and pointing away from the polygon interior for
// the given propagation direction. edge must be directed like a left ray
// (from the vertex toward its predecessor); a right ray is reversed
// before it is passed in.
func outwardNormal(origin geom.Coordinate, edge geom.Ray, orientInward bool) geom.Ray {
	perp := geom.Coordinate{X: -edge.Angle.Y, Y: edge.Angle.X}
	if orientInward {
		perp = geom.Coordinate{X: edge.Angle.Y, Y: -edge.Angle.X}
	}

	n := perp.Norm()

	return geom.Ray{Origin: origin, Angle: perp.Scale(1 / n)}
}

// sweepAngle returns the signed angle (radians, in (-π, π]) to rotate
// from direction vector from to direction vector to.
func sweepAngle(from, to geom.Coordinate) float64 {
	a0 := math.Atan2(from.Y, from.X)
	a1 := math.Atan2(to.Y, to.X)
	d := a1 - a0

	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d < -math.Pi {
		d += 2 * math.Pi
	}

	return d
}
