// Package buffer provides the thin outer entry points of the engine:
// BufferPolygon, BufferPolygonRounded, BufferMultiPolygon(Rounded), and
// BufferPoint, plus skeleton-to-linestring convenience wrappers built on
// package skeleton's ToLineString.
//
// Every polygon entry point here does the input validation the core
// assumes already happened. The Buffer*Polygon functions derive the
// propagation direction from the sign of the requested distance before
// handing off to package skeleton: negative distance deflates
// (orientInward = true), positive or zero distance inflates
// (orientInward = false). The linestring wrappers take orientInward
// directly.
package buffer
