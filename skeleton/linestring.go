package skeleton

import "github.com/kasprzak-oleander/polyskel/geom"

// Segment is one two-point piece of a skeleton trajectory, as emitted by
// ToLineString.
type Segment struct {
	From, To geom.Coordinate
}

// ToLineString walks the vertex table and emits one Segment per
// Tree/Split→parent edge. Since every record has at most one outgoing
// parent edge, visiting every table record exactly once and emitting
// its own edge covers the same ground as a depth-first walk restarted
// at each initial vertex, without needing recursion or a visited set. A
// Tree record whose parent is still absent — its trajectory never
// terminated — emits a clipped segment ending at parameter
// WithUnboundedSegmentLength (default 5) along its axis instead; a parentless Split or
// Root record is a true terminus and emits nothing.
// A record whose parent edge has zero length (a vertex retired at the
// exact point its loop annihilated, e.g. the last surviving pair of a
// symmetric polygon) contributes no geometry and is skipped.
func (s *Skeleton) ToLineString() []Segment {
	var out []Segment

	for i := 0; i < s.table.Len(); i++ {
		rec := s.table.Get(i)

		parent, ok := rec.Parent()
		if !ok {
			if rec.Kind() == KindTree {
				end := rec.Axis().PointByRatio(s.cfg.unboundedSegmentLength)
				if !geom.ApproxEqualCoord(rec.Location(), end) {
					out = append(out, Segment{From: rec.Location(), To: end})
				}
			}
			continue
		}

		parentRec := s.table.Get(parent)
		if geom.ApproxEqualCoord(rec.Location(), parentRec.Location()) {
			continue
		}
		out = append(out, Segment{From: rec.Location(), To: parentRec.Location()})
	}

	return out
}
