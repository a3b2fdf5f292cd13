// Package vqueue implements the active vertex queue: a doubly-linked
// circular list of wavefront-vertex slots, addressed through a stable
// pointer-index that survives every mutation until the slot it names is
// explicitly dropped.
//
// Each loop of the evolving wavefront is exactly one cycle of non-done
// slots linked by Left/Right pointers; loops are always disjoint. A slot
// also carries a real-index: the index, into package skeleton's vertex
// table, of the vertex record currently occupying that slot. Events
// scheduled against a slot record both its pointer-index and the
// real-index observed at scheduling time; firing re-checks the
// real-index so a stale event (one whose vertex has since been consumed
// by an earlier event) becomes a no-op rather than a corruption — see
// Real and the staleness convention documented on RemoveAndSet.
//
// The queue keeps every slot's pointer-index stable for its lifetime,
// the way an arena-indexed graph never reassigns or reuses a vertex ID,
// but it is built on a doubly-linked slot array rather than a
// map-of-maps adjacency list: splicing a vertex out of, or a loop apart
// from, a circular sequence needs O(1) list surgery that a map-backed
// graph does not provide for free.
package vqueue
