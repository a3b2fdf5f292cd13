package geom

import "math"

// Epsilon is the absolute tolerance used for every approximate comparison
// in this module: coordinate equality, time-ordering ties, and orientation
// sign tests. Calibrate to the expected input scale; 1e-9 suits unit-scale
// polygons within a few units of the origin.
const Epsilon = 1e-9

// Coordinate is a point or free vector in the plane.
type Coordinate struct {
	X, Y float64
}

// Add returns the component-wise sum of c and o.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{c.X + o.X, c.Y + o.Y}
}

// Sub returns the component-wise difference c - o.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{c.X - o.X, c.Y - o.Y}
}

// Scale returns c scaled by factor t.
func (c Coordinate) Scale(t float64) Coordinate {
	return Coordinate{c.X * t, c.Y * t}
}

// Norm returns the Euclidean length of c treated as a vector.
func (c Coordinate) Norm() float64 {
	return math.Hypot(c.X, c.Y)
}

// Dot returns the dot product of c and o.
func (c Coordinate) Dot(o Coordinate) float64 {
	return c.X*o.X + c.Y*o.Y
}

// Cross returns the z-component of the 3D cross product of c and o,
// treating both as vectors in the plane.
func (c Coordinate) Cross(o Coordinate) float64 {
	return c.X*o.Y - c.Y*o.X
}

// ApproxEqualCoord reports whether a and b agree within Epsilon on both
// components.
func ApproxEqualCoord(a, b Coordinate) bool {
	return ApproxEqual(a.X, b.X) && ApproxEqual(a.Y, b.Y)
}

// DistCoord returns the Euclidean distance between a and b.
func DistCoord(a, b Coordinate) float64 {
	return a.Sub(b).Norm()
}

// ApproxEqual reports whether a and b agree within Epsilon.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// LessEq reports whether a <= b within Epsilon (i.e. a < b or a approx b).
func LessEq(a, b float64) bool {
	return a < b || ApproxEqual(a, b)
}

// GreaterEq reports whether a >= b within Epsilon.
func GreaterEq(a, b float64) bool {
	return a > b || ApproxEqual(a, b)
}

// Ray is an ordered pair (Origin, Angle) used both as a directed half-line
// Origin + t*Angle (t >= 0) and as a supporting line for intersection and
// orientation tests.
type Ray struct {
	Origin Coordinate
	Angle  Coordinate
}

// NewRay builds the ray from origin toward target; its Angle is the
// (non-normalized) direction vector target - origin.
func NewRay(origin, target Coordinate) Ray {
	return Ray{Origin: origin, Angle: target.Sub(origin)}
}

// PointByRatio returns the point Origin + t*Angle.
func (r Ray) PointByRatio(t float64) Coordinate {
	return r.Origin.Add(r.Angle.Scale(t))
}

// Reverse returns the ray with the same origin and negated direction.
func (r Ray) Reverse() Ray {
	return Ray{Origin: r.Origin, Angle: r.Angle.Scale(-1)}
}

// Normalize returns r with its Angle divided by by. Dividing by the
// per-unit-time wavefront advance turns parameter t into orthogonal
// offset distance directly; see Bisector.
func (r Ray) Normalize(by float64) Ray {
	return Ray{Origin: r.Origin, Angle: r.Angle.Scale(1 / by)}
}

// Rotate returns r with its Angle rotated counter-clockwise by theta
// radians, used by the rounded-corner reconstruction to sweep a normal
// ray across a convex corner's arc.
func (r Ray) Rotate(theta float64) Ray {
	s, c := math.Sin(theta), math.Cos(theta)
	return Ray{
		Origin: r.Origin,
		Angle: Coordinate{
			X: r.Angle.X*c - r.Angle.Y*s,
			Y: r.Angle.X*s + r.Angle.Y*c,
		},
	}
}
