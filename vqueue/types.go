package vqueue

// Pointer is a stable slot address. It is assigned once, on Init or on a
// split, and is never reused or renumbered.
type Pointer int

// slot is one node of a doubly-linked circular list. Left and Right are
// only meaningful while Done is false; a done slot has already been
// spliced out of its loop and is kept around solely so stale Pointers
// resolve instead of panicking.
type slot struct {
	real        int
	left, right Pointer
	done        bool
}

// Triple is one (loop, pointer, real) observation produced by Iter: Loop
// identifies which disjoint cycle the slot belongs to (the pointer the
// traversal started from, an opaque but stable grouping key — callers
// only need it to detect a loop boundary, never to look anything up),
// Pointer is the slot's own stable address, and Real is the vertex-table
// index currently occupying it.
type Triple struct {
	Loop    int
	Pointer Pointer
	Real    int
}

// Queue is the active vertex queue: every initial vertex of the input
// polygon(s) starts in exactly one slot, and every shrink or split
// mutates the list in place without ever reallocating a live slot.
type Queue struct {
	slots []slot
}
