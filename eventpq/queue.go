package eventpq

import (
	"container/heap"

	"github.com/kasprzak-oleander/polyskel/geom"
)

// Kind distinguishes split (edge) events from shrink (vertex) events for
// the tie-break rule: at equal time, split sorts before shrink, so a
// reflex vertex reaching an edge is handled before any coincidental
// vertex collapse at the same instant.
type Kind int

const (
	// KindSplit marks a split (edge) event candidate.
	KindSplit Kind = iota
	// KindShrink marks a shrink (vertex) event candidate.
	KindShrink
)

// Key is the total ordering key for scheduled events: ascending by event
// time (compared within geom.Epsilon), then kind (split < shrink), then a
// kind-specific tie-break distance, then location, then participant
// indices.
type Key struct {
	Time     float64
	Kind     Kind
	TieBreak float64
	Loc      geom.Coordinate
	IdxA     int
	IdxB     int
}

// Less reports whether k sorts strictly before other under the Key
// ordering.
func (k Key) Less(other Key) bool {
	if !geom.ApproxEqual(k.Time, other.Time) {
		return k.Time < other.Time
	}
	if k.Kind != other.Kind {
		return k.Kind < other.Kind
	}
	if !geom.ApproxEqual(k.TieBreak, other.TieBreak) {
		return k.TieBreak < other.TieBreak
	}
	if !geom.ApproxEqual(k.Loc.X, other.Loc.X) {
		return k.Loc.X < other.Loc.X
	}
	if !geom.ApproxEqual(k.Loc.Y, other.Loc.Y) {
		return k.Loc.Y < other.Loc.Y
	}
	if k.IdxA != other.IdxA {
		return k.IdxA < other.IdxA
	}

	return k.IdxB < other.IdxB
}

// Entry pairs an ordering Key with an opaque scheduling payload (in
// package skeleton, a candidate shrink or split event record).
type Entry struct {
	Key     Key
	Payload interface{}
}

// entryHeap is the container/heap-backed slice: a slice type
// implementing heap.Interface so Queue itself never has to.
type entryHeap []Entry

func (h entryHeap) Len() int            { return len(h) }
func (h entryHeap) Less(i, j int) bool  { return h[i].Key.Less(h[j].Key) }
func (h entryHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(Entry)) }
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Queue is the event-scheduling priority queue: a min-heap over Key,
// exposing Push/Peek/Pop/Len/IsEmpty and nothing else — callers never see
// container/heap directly.
type Queue struct {
	h entryHeap
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{h: make(entryHeap, 0)}
}

// Push schedules a new entry.
func (q *Queue) Push(e Entry) {
	heap.Push(&q.h, e)
}

// Peek returns the earliest-ordered entry without removing it. The
// second return value is false if the queue is empty.
func (q *Queue) Peek() (Entry, bool) {
	if len(q.h) == 0 {
		return Entry{}, false
	}

	return q.h[0], true
}

// Pop removes and returns the earliest-ordered entry. The second return
// value is false if the queue is empty.
func (q *Queue) Pop() (Entry, bool) {
	if len(q.h) == 0 {
		return Entry{}, false
	}

	return heap.Pop(&q.h).(Entry), true
}

// Len returns the number of scheduled entries.
func (q *Queue) Len() int {
	return len(q.h)
}

// IsEmpty reports whether the queue has no scheduled entries.
func (q *Queue) IsEmpty() bool {
	return len(q.h) == 0
}
