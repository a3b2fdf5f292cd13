// Package geom provides the small set of planar-geometry primitives the
// straight-skeleton simulation engine builds on: coordinates, directed
// rays, ray-ray intersection, orientation, and the angle-bisector
// construction used to derive a wavefront vertex's trajectory.
//
// All comparisons in this package are approximate: two floating-point
// quantities within Epsilon of each other are treated as equal. Packages
// eventpq and skeleton route their tolerance comparisons through these
// helpers, so the tolerance is defined in one place; package offset's
// ring-area and point-in-ring tests compare raw float values.
//
// Rays double as directed half-lines (Origin + t*Angle, t >= 0) and as
// supporting lines for intersection and orientation tests, matching the
// dual role "Ray" plays throughout the simulation driver (see package
// skeleton).
package geom
