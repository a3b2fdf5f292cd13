package skeleton

import (
	"github.com/kasprzak-oleander/polyskel/eventpq"
	"github.com/kasprzak-oleander/polyskel/geom"
	"github.com/kasprzak-oleander/polyskel/vqueue"
)

// shrinkCandidate is a scheduled shrink (vertex event) candidate: cv's
// trajectory meets its right neighbor's. Both participants' pointer and
// real indices are snapshotted at scheduling time so firing can detect
// whether either side has since been consumed by an earlier event.
type shrinkCandidate struct {
	fromPtr, toPtr   vqueue.Pointer
	fromReal, toReal int
	loc              geom.Coordinate
}

// splitCandidate is a scheduled split (edge event) candidate: a reflex
// vertex anchor striking the edge leading out of struck.
type splitCandidate struct {
	anchorPtr, struckPtr   vqueue.Pointer
	anchorReal, struckReal int
	loc                    geom.Coordinate
	time                   float64
}

// stale reports whether the vertex queue's current state no longer
// matches what was observed when this shrink candidate was scheduled.
func (c shrinkCandidate) stale(q *vqueue.Queue) bool {
	return q.Done(c.fromPtr) || q.Done(c.toPtr) ||
		q.Real(c.fromPtr) != c.fromReal || q.Real(c.toPtr) != c.toReal ||
		q.RV(c.fromPtr) != c.toPtr
}

func (c splitCandidate) stale(q *vqueue.Queue) bool {
	return q.Done(c.anchorPtr) || q.Done(c.struckPtr) ||
		q.Real(c.anchorPtr) != c.anchorReal || q.Real(c.struckPtr) != c.struckReal
}

// LoggedEvent is one entry of the event log: the queue-mutation
// parameters needed to replay this event during reconstruction,
// independent of the scheduling candidate that produced it.
type LoggedEvent struct {
	Time float64
	Kind eventpq.Kind

	// shrink fields
	From    vqueue.Pointer
	NewReal int

	// Collapsed marks a shrink event that annihilated its whole loop:
	// after From collapsed into NewReal, the survivor's left and right
	// neighbors named the same remaining slot. RootReal is the Root
	// record both the survivor and (if HasOther) Other were retired
	// into; Other is the second slot retired alongside the survivor when
	// the loop had three members going into this event rather than two.
	Collapsed bool
	HasOther  bool
	Other     vqueue.Pointer
	RootReal  int

	// split fields
	Anchor, Struck      vqueue.Pointer
	LeftReal, RightReal int
}

func shrinkKey(time float64, tieBreak float64, loc geom.Coordinate, fromReal, toReal int) eventpq.Key {
	return eventpq.Key{
		Time:     time,
		Kind:     eventpq.KindShrink,
		TieBreak: tieBreak,
		Loc:      loc,
		IdxA:     fromReal,
		IdxB:     toReal,
	}
}

func splitKey(time float64, loc geom.Coordinate, anchorReal, struckReal int) eventpq.Key {
	return eventpq.Key{
		Time:     time,
		Kind:     eventpq.KindSplit,
		TieBreak: 0,
		Loc:      loc,
		IdxA:     anchorReal,
		IdxB:     struckReal,
	}
}
