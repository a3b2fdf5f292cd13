// Package eventpq implements the event-scheduling priority queue used by
// package skeleton to order shrink and split candidates during the
// wavefront simulation.
//
// The queue is a binary heap over container/heap: a slice type
// implementing heap.Interface, wrapped by a small Queue exposing
// Push/Peek/Pop/Len so callers never touch container/heap directly.
//
// Ordering is a tuple: ascending by event time (compared with
// tolerance), then split-before-shrink, then a kind-specific tie-break,
// then location, then participant indices. Ties within Epsilon of each
// other are broken by the later fields so that firing order is fully
// deterministic across platforms regardless of heap insertion order.
package eventpq
