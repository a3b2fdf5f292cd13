package skeleton

import (
	"math"

	"github.com/kasprzak-oleander/polyskel/eventpq"
	"github.com/kasprzak-oleander/polyskel/geom"
	"github.com/kasprzak-oleander/polyskel/vqueue"
)

// Skeleton is the immutable result of running the wavefront simulation
// to completion: a vertex table (the straight-skeleton forest), the
// retained initial queue snapshot, and the event log, ready to be
// replayed at any offset distance by package offset.
type Skeleton struct {
	table        *Table
	initial      *vqueue.Queue
	log          []LoggedEvent
	orientInward bool
	cfg          config
}

// SkeletonOfPolygon builds a Skeleton from a single polygon's rings
// (exterior first, then holes), propagating inward (orientInward) or
// outward.
func SkeletonOfPolygon(rings [][]geom.Coordinate, orientInward bool, opts ...Option) *Skeleton {
	return SkeletonOfPolygons([][][]geom.Coordinate{rings}, orientInward, opts...)
}

// SkeletonOfPolygons builds a single combined Skeleton from several
// polygons' rings at once. Running every ring through one shared
// simulation is what lets disjoint polygons merge during inflation: a
// shrink or split event does not care which original polygon an edge
// came from.
func SkeletonOfPolygons(polygons [][][]geom.Coordinate, orientInward bool, opts ...Option) *Skeleton {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	table := newTable()

	var loopsReal [][]int
	for _, poly := range polygons {
		for _, ring := range poly {
			n := len(ring)
			if n == 0 {
				continue
			}

			start := table.Len()
			for i, cv := range ring {
				lv := ring[(i-1+n)%n]
				rv := ring[(i+1)%n]
				left := geom.NewRay(cv, lv)
				right := geom.NewRay(cv, rv)
				table.add(newTreeRecord(cv, left, right, 0, orientInward))
			}

			loopReal := make([]int, n)
			for i := 0; i < n; i++ {
				loopReal[i] = start + i
			}
			loopsReal = append(loopsReal, loopReal)
		}
	}

	queue := vqueue.Init(loopsReal)
	initialSnapshot := queue.Clone()

	sim := &simulation{
		table:        table,
		queue:        queue,
		pq:           eventpq.New(),
		orientInward: orientInward,
		cfg:          cfg,
	}
	sim.populateInitialEvents()
	log := sim.run()

	return &Skeleton{
		table:        table,
		initial:      initialSnapshot,
		log:          log,
		orientInward: orientInward,
		cfg:          cfg,
	}
}

// Table returns the skeleton's vertex table (the straight-skeleton
// forest), for callers that need to read Axis/TimeElapsed/parent chains
// directly (package offset's reconstruction, ToLineString).
func (s *Skeleton) Table() *Table {
	return s.table
}

// OrientInward reports the propagation direction this skeleton was
// built with.
func (s *Skeleton) OrientInward() bool {
	return s.orientInward
}

// Log returns the event log in firing order.
func (s *Skeleton) Log() []LoggedEvent {
	return s.log
}

// GetVertexQueue replays the event log up to distance d and returns the
// resulting active vertex queue. The returned queue is an independent
// copy; mutating it does not affect the skeleton.
func (s *Skeleton) GetVertexQueue(d float64) *vqueue.Queue {
	vq := s.initial.Clone()

	for _, ev := range s.log {
		if ev.Time > d && !geom.ApproxEqual(ev.Time, d) {
			break
		}

		switch ev.Kind {
		case eventpq.KindShrink:
			survivor := vq.RemoveAndSet(ev.From, ev.NewReal)
			if ev.Collapsed {
				vq.RemoveAndSet(survivor, ev.RootReal)
				if ev.HasOther {
					vq.RemoveAndSet(ev.Other, ev.RootReal)
				}
			}
		case eventpq.KindSplit:
			vq.SplitAndSet(ev.Anchor, ev.Struck, ev.LeftReal, ev.RightReal)
		}
		vq.Cleanup()
	}

	return vq
}

// simulation holds all mutable state for one run of the event
// simulation: the vertex table being grown, the live vertex queue being
// mutated, and the scheduling priority queue.
type simulation struct {
	table        *Table
	queue        *vqueue.Queue
	pq           *eventpq.Queue
	orientInward bool
	cfg          config
}

func (sim *simulation) populateInitialEvents() {
	for _, tr := range sim.queue.Iter() {
		sim.makeShrinkEvent(tr.Pointer)

		rec := sim.table.Get(tr.Real)
		if geom.Reflex(rec.LeftRay(), rec.RightRay(), sim.orientInward) {
			sim.makeSplitEvent(tr.Pointer)
		}
	}
}

func (sim *simulation) run() []LoggedEvent {
	var log []LoggedEvent

	for {
		entry, ok := sim.pq.Pop()
		if !ok {
			break
		}

		switch cand := entry.Payload.(type) {
		case shrinkCandidate:
			if cand.stale(sim.queue) {
				continue
			}
			log = sim.fireShrink(cand, entry.Key.Time, log)
		case splitCandidate:
			if cand.stale(sim.queue) {
				continue
			}
			log = sim.fireSplit(cand, entry.Key.Time, log)
		default:
			invariantf("skeleton: unrecognized scheduled payload %T", entry.Payload)
		}
	}

	return log
}

// makeShrinkEvent schedules a shrink candidate for cv and its right
// neighbor, if their trajectories converge.
func (sim *simulation) makeShrinkEvent(cv vqueue.Pointer) {
	rv := sim.queue.RV(cv)
	realCv := sim.queue.Real(cv)
	realRv := sim.queue.Real(rv)

	cvRec := sim.table.Get(realCv)
	rvRec := sim.table.Get(realRv)

	if geom.Parallel(cvRec.Axis(), rvRec.Axis()) {
		return
	}

	loc, err := geom.Intersect(cvRec.Axis(), rvRec.Axis())
	if err != nil {
		return
	}

	time := geom.DistanceToRay(loc, cvRec.LeftRay())
	// A vertex born between two parallel edges has a non-finite axis and
	// no meeting point of its own.
	if math.IsNaN(time) || math.IsInf(time, 0) {
		return
	}
	// The meeting point must lie ahead of both vertices, not behind them.
	if loc.Sub(cvRec.Axis().Origin).Dot(cvRec.Axis().Angle) < -geom.Epsilon ||
		loc.Sub(rvRec.Axis().Origin).Dot(rvRec.Axis().Angle) < -geom.Epsilon {
		return
	}
	tieBreak := geom.DistCoord(cvRec.Axis().Origin, rvRec.Axis().Origin)

	sim.pq.Push(eventpq.Entry{
		Key: shrinkKey(time, tieBreak, loc, realCv, realRv),
		Payload: shrinkCandidate{
			fromPtr: cv, toPtr: rv,
			fromReal: realCv, toReal: realRv,
			loc: loc,
		},
	})
}

func (sim *simulation) fireShrink(cand shrinkCandidate, time float64, log []LoggedEvent) []LoggedEvent {
	leftRec := sim.table.Get(cand.fromReal)
	rightRec := sim.table.Get(cand.toReal)

	loc, err := geom.Intersect(leftRec.Axis(), rightRec.Axis())
	if err != nil {
		return log
	}

	newIdx := sim.table.add(newTreeRecord(loc, leftRec.LeftRay(), rightRec.RightRay(), time, sim.orientInward))
	// Re-fetch: table.add may have moved the records leftRec/rightRec
	// point into.
	sim.table.Get(cand.fromReal).SetParent(newIdx)
	sim.table.Get(cand.toReal).SetParent(newIdx)

	survivor := sim.queue.RemoveAndSet(cand.fromPtr, newIdx)

	ev := LoggedEvent{Time: time, Kind: eventpq.KindShrink, From: cand.fromPtr, NewReal: newIdx}

	if sim.queue.LV(survivor) == sim.queue.RV(survivor) {
		// The enclosing loop has collapsed to a point: left and right of
		// the survivor now name the same slot, whether that's the
		// survivor itself (the loop had exactly two members before this
		// removal) or one other slot (it had three). Either way every
		// remaining slot meets at loc; retire them all into one Root.
		rootIdx := sim.table.add(newRootRecord(loc, time))
		sim.table.Get(newIdx).SetParent(rootIdx)

		other := sim.queue.LV(survivor)
		if other != survivor {
			sim.table.Get(sim.queue.Real(other)).SetParent(rootIdx)
		}

		sim.queue.RemoveAndSet(survivor, rootIdx)
		if other != survivor {
			sim.queue.RemoveAndSet(other, rootIdx)
		}

		ev.Collapsed = true
		ev.RootReal = rootIdx
		if other != survivor {
			ev.HasOther = true
			ev.Other = other
		}
	} else {
		sim.makeShrinkEvent(sim.queue.LV(survivor))
		sim.makeShrinkEvent(survivor)

		survivorRec := sim.table.Get(sim.queue.Real(survivor))
		if geom.Reflex(survivorRec.LeftRay(), survivorRec.RightRay(), sim.orientInward) {
			sim.makeSplitEvent(survivor)
		}
	}

	return append(log, ev)
}
