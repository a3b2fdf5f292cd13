package skeleton

import "github.com/kasprzak-oleander/polyskel/geom"

// Kind distinguishes the three vertex-record variants. Go has no closed
// sum type, so Record carries an explicit Kind tag plus one payload
// struct per variant; accessors for the wrong variant panic via
// invariantf rather than returning a zero value.
type Kind int

const (
	// KindTree marks an active or formerly-active wavefront vertex.
	KindTree Kind = iota
	// KindSplit marks the completion of an edge (split) event.
	KindSplit
	// KindRoot marks wavefront annihilation: a loop has collapsed to a point.
	KindRoot
)

func (k Kind) String() string {
	switch k {
	case KindTree:
		return "Tree"
	case KindSplit:
		return "Split"
	case KindRoot:
		return "Root"
	default:
		return "Unknown"
	}
}

type treeData struct {
	axis               geom.Ray
	leftRay, rightRay  geom.Ray
}

type splitData struct {
	anchor                int
	splitLeft, splitRight int
}

// noParent marks an absent parent link.
const noParent = -1

// Record is one node of the vertex table / straight-skeleton forest: a
// Tree, Split, or Root variant selected by Kind. Once appended to a
// Table, a Record's fields are immutable except for its parent link,
// which starts absent and is set exactly once when the event consuming
// this vertex fires.
type Record struct {
	kind        Kind
	location    geom.Coordinate
	timeElapsed float64
	parent      int

	tree  treeData
	split splitData
}

// Location returns the record's position: the vertex's original
// coordinate (Tree) or the event location (Split/Root).
func (r *Record) Location() geom.Coordinate { return r.location }

// TimeElapsed returns the simulation time at which this record came
// into existence (0 for initial boundary vertices).
func (r *Record) TimeElapsed() float64 { return r.timeElapsed }

// Kind reports which variant this record is.
func (r *Record) Kind() Kind { return r.kind }

// Parent returns the index of the record this one feeds into, and
// whether a parent has been assigned yet.
func (r *Record) Parent() (int, bool) {
	if r.parent == noParent {
		return 0, false
	}

	return r.parent, true
}

// SetParent assigns this record's parent. This is the only mutation a
// Record ever undergoes after being appended to a Table, and it happens
// exactly once.
func (r *Record) SetParent(idx int) {
	r.parent = idx
}

func (r *Record) mustBe(k Kind, op string) {
	if r.kind != k {
		invariantf("skeleton: %s called on a %s record, want %s", op, r.kind, k)
	}
}

// Axis returns the speed-normalized trajectory ray a Tree vertex moves
// along. Panics if called on a non-Tree record.
func (r *Record) Axis() geom.Ray {
	r.mustBe(KindTree, "Axis")
	return r.tree.axis
}

// LeftRay returns a Tree vertex's left incident edge supporting ray.
// Panics if called on a non-Tree record.
func (r *Record) LeftRay() geom.Ray {
	r.mustBe(KindTree, "LeftRay")
	return r.tree.leftRay
}

// RightRay returns a Tree vertex's right incident edge supporting ray.
// Panics if called on a non-Tree record.
func (r *Record) RightRay() geom.Ray {
	r.mustBe(KindTree, "RightRay")
	return r.tree.rightRay
}

// Anchor returns the reflex vertex index that caused this Split record's
// event. Panics if called on a non-Split record.
func (r *Record) Anchor() int {
	r.mustBe(KindSplit, "Anchor")
	return r.split.anchor
}

// SplitChildren returns the two Tree record indices this Split record
// spawned, one on each side of the struck edge. Panics if called on a
// non-Split record.
func (r *Record) SplitChildren() (left, right int) {
	r.mustBe(KindSplit, "SplitChildren")
	return r.split.splitLeft, r.split.splitRight
}

// speedNormalize rescales axis's Angle so that moving by parameter Δt
// advances orthogonal distance from edge by exactly Δt. For a
// freshly-initialized vertex, axis.Origin lies on edge, so this reduces
// to dividing by the distance at parameter 1.
func speedNormalize(axis, edge geom.Ray) geom.Ray {
	d0 := geom.DistanceToRay(axis.Origin, edge)
	d1 := geom.DistanceToRay(axis.PointByRatio(1), edge)
	delta := d1 - d0
	if delta < 0 {
		delta = -delta
	}

	return axis.Normalize(delta)
}

// newTreeRecord builds a Tree record at location, with incident rays
// left/right (in the cv->predecessor / cv->successor convention), born
// at timeElapsed, propagating per orientInward.
func newTreeRecord(location geom.Coordinate, left, right geom.Ray, timeElapsed float64, orientInward bool) Record {
	axis := geom.Bisector(left, right, location, orientInward)
	axis = speedNormalize(axis, left)

	return Record{
		kind:        KindTree,
		location:    location,
		timeElapsed: timeElapsed,
		parent:      noParent,
		tree:        treeData{axis: axis, leftRay: left, rightRay: right},
	}
}

// newSplitRecord builds a Split record for the edge event that consumed
// anchor at location and time timeElapsed, spawning the two given Tree
// children.
func newSplitRecord(anchor int, location geom.Coordinate, timeElapsed float64, left, right int) Record {
	return Record{
		kind:        KindSplit,
		location:    location,
		timeElapsed: timeElapsed,
		parent:      noParent,
		split:       splitData{anchor: anchor, splitLeft: left, splitRight: right},
	}
}

// newRootRecord builds a terminal Root record marking a loop's
// annihilation at location and time timeElapsed.
func newRootRecord(location geom.Coordinate, timeElapsed float64) Record {
	return Record{
		kind:        KindRoot,
		location:    location,
		timeElapsed: timeElapsed,
		parent:      noParent,
	}
}

// Table is the growable, append-only vertex table: indices, once
// assigned, are never reused or reordered.
type Table struct {
	records []Record
}

func newTable() *Table {
	return &Table{}
}

func (t *Table) add(r Record) int {
	idx := len(t.records)
	t.records = append(t.records, r)

	return idx
}

// Get returns the record at idx.
func (t *Table) Get(idx int) *Record {
	return &t.records[idx]
}

// Len returns the number of records so far appended.
func (t *Table) Len() int {
	return len(t.records)
}
