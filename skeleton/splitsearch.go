package skeleton

import (
	"sort"

	"github.com/kasprzak-oleander/polyskel/eventpq"
	"github.com/kasprzak-oleander/polyskel/geom"
	"github.com/kasprzak-oleander/polyskel/vqueue"
)

// makeSplitEvent schedules the earliest split candidate found for the
// reflex vertex at cv, using the looser initial-scan filter. Firing
// re-derives and re-validates the struck edge from scratch rather than
// trusting this candidate's specifics.
func (sim *simulation) makeSplitEvent(cv vqueue.Pointer) {
	candidates := sim.findSplitVertex(cv, true)
	if len(candidates) == 0 {
		return
	}

	c := candidates[0]
	sim.pq.Push(eventpq.Entry{
		Key:     splitKey(c.time, c.loc, c.anchorReal, c.struckReal),
		Payload: c,
	})
}

// findSplitVertex enumerates every active edge anchor's trajectory could
// strike. Returns candidates sorted ascending by time; callers use only
// the first. Returns nil if anchor is not currently reflex.
func (sim *simulation) findSplitVertex(anchorPtr vqueue.Pointer, isInit bool) []splitCandidate {
	anchorReal := sim.queue.Real(anchorPtr)
	anchorRec := sim.table.Get(anchorReal)

	if !geom.Reflex(anchorRec.LeftRay(), anchorRec.RightRay(), sim.orientInward) {
		return nil
	}

	wanted := -1
	if sim.orientInward {
		wanted = 1
	}

	leftNeighbor := sim.queue.LV(anchorPtr)

	var out []splitCandidate
	for _, tr := range sim.queue.Iter() {
		svPtr := tr.Pointer
		if svPtr == anchorPtr || svPtr == leftNeighbor {
			continue
		}

		svRvPtr := sim.queue.RV(svPtr)
		if svRvPtr == anchorPtr {
			continue
		}

		svRec := sim.table.Get(tr.Real)
		baseRay := svRec.RightRay()

		var pivot geom.Coordinate
		var err error
		var bl, br geom.Ray
		if geom.Parallel(anchorRec.LeftRay(), baseRay) {
			bl, br = anchorRec.RightRay(), baseRay.Reverse()
		} else {
			bl, br = anchorRec.LeftRay(), baseRay
		}

		pivot, err = geom.Intersect(bl, br)
		if err != nil {
			continue
		}

		bisect := geom.Bisector(bl, br, pivot, sim.orientInward)

		loc, err := geom.Intersect(bisect, anchorRec.Axis())
		if err != nil {
			continue
		}

		if geom.Orientation(baseRay, loc) != wanted {
			continue
		}

		if !isInit {
			svRvReal := sim.queue.Real(svRvPtr)
			svRvRec := sim.table.Get(svRvReal)

			if geom.Orientation(svRec.Axis(), loc) != wanted {
				continue
			}
			if geom.Orientation(svRvRec.Axis(), loc) == wanted {
				continue
			}
		}

		out = append(out, splitCandidate{
			anchorPtr: anchorPtr, struckPtr: svPtr,
			anchorReal: anchorReal, struckReal: tr.Real,
			loc:  loc,
			time: geom.DistanceToRay(loc, anchorRec.RightRay()),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].time < out[j].time })

	return out
}

// fireSplit re-runs the split search for the anchor and fires only the
// earliest candidate, and only if it still matches the scheduled time and
// location. Further candidates found at the same minimal time are not
// fired.
func (sim *simulation) fireSplit(cand splitCandidate, time float64, log []LoggedEvent) []LoggedEvent {
	fresh := sim.findSplitVertex(cand.anchorPtr, false)
	if len(fresh) == 0 {
		return log
	}

	best := fresh[0]
	if !geom.ApproxEqual(best.time, time) || !geom.ApproxEqualCoord(best.loc, cand.loc) {
		return log
	}

	anchorRec := sim.table.Get(cand.anchorReal)
	struckReal := sim.queue.Real(best.struckPtr)
	struckRec := sim.table.Get(struckReal)

	leftChildIdx := sim.table.add(newTreeRecord(best.loc, anchorRec.LeftRay(), struckRec.RightRay(), time, sim.orientInward))
	rightChildIdx := sim.table.add(newTreeRecord(best.loc, struckRec.RightRay().Reverse(), anchorRec.RightRay(), time, sim.orientInward))

	splitIdx := sim.table.add(newSplitRecord(cand.anchorReal, best.loc, time, leftChildIdx, rightChildIdx))
	// Re-fetch: the adds above may have moved the record anchorRec points into.
	sim.table.Get(cand.anchorReal).SetParent(splitIdx)

	leftSlot, rightSlot := sim.queue.SplitAndSet(cand.anchorPtr, best.struckPtr, leftChildIdx, rightChildIdx)

	sim.makeShrinkEvent(leftSlot)
	sim.makeShrinkEvent(sim.queue.LV(leftSlot))
	sim.makeShrinkEvent(rightSlot)
	sim.makeShrinkEvent(sim.queue.LV(rightSlot))

	leftRec := sim.table.Get(leftChildIdx)
	if geom.Reflex(leftRec.LeftRay(), leftRec.RightRay(), sim.orientInward) {
		sim.makeSplitEvent(leftSlot)
	}
	rightRec := sim.table.Get(rightChildIdx)
	if geom.Reflex(rightRec.LeftRay(), rightRec.RightRay(), sim.orientInward) {
		sim.makeSplitEvent(rightSlot)
	}

	return append(log, LoggedEvent{
		Time: time, Kind: eventpq.KindSplit,
		Anchor: cand.anchorPtr, Struck: best.struckPtr,
		LeftReal: leftChildIdx, RightReal: rightChildIdx,
	})
}
