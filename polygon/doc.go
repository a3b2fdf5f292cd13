// Package polygon defines the external polygon/multipolygon exchange
// types: a Polygon is an exterior ring plus zero or more interior (hole)
// rings, and a MultiPolygon is an ordered list of Polygons.
//
// Internally every Ring is stored as its distinct coordinates only — the
// engine never carries the repeated closing point some exchange formats
// use. CloseRing/OpenRing convert at the boundary for callers that do
// carry it.
//
// This is a boundary package: unlike the core (geom/eventpq/vqueue/
// skeleton), which is total under valid input and returns no errors, this
// package performs the structural validation the core assumes already
// happened, so it reports sentinel errors the way builder/errors.go does.
package polygon
