// Package skeleton is the heart of the engine: the vertex table (the
// straight-skeleton forest), the event records, and the simulation
// driver that runs the continuous-time kinetic wavefront to completion.
//
// A Skeleton is built once, from one or more input polygons' rings, via
// SkeletonOfPolygon / SkeletonOfPolygons, and is thereafter immutable:
// the simulation runs to exhaustion inside the constructor and the
// resulting vertex table and event log never change again. Package
// offset replays the log against the retained initial queue snapshot to
// reconstruct the offset boundary at any requested distance
// (Skeleton.GetVertexQueue), and ToLineString exposes the full skeleton
// forest for visualization.
//
// Structurally this package follows a runner-struct-plus-heap-loop
// shape: an unexported simulation type holds every piece of mutable
// state (the live vqueue.Queue, the eventpq.Queue of scheduled
// candidates, the growing Table) for exactly one run, and pops/fires in
// a loop until the queue is exhausted. The vertex-table arena is
// index-stable: once appended, a Record's position in the Table never
// changes, and its only later mutation is its parent link.
package skeleton
