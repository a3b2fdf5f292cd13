package vqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasprzak-oleander/polyskel/vqueue"
)

func ringOf(q *vqueue.Queue, start vqueue.Pointer) []int {
	var out []int
	cur := start
	for {
		out = append(out, q.Real(cur))
		cur = q.RV(cur)
		if cur == start {
			break
		}
	}
	return out
}

func TestInit_SingleLoopLinksCircularly(t *testing.T) {
	q := vqueue.Init([][]int{{0, 1, 2, 3}})

	assert.Equal(t, []int{0, 1, 2, 3}, ringOf(q, 0))
	assert.Equal(t, vqueue.Pointer(3), q.LV(0))
	assert.Equal(t, vqueue.Pointer(1), q.RV(0))
}

func TestInit_MultipleLoopsAreIndependent(t *testing.T) {
	q := vqueue.Init([][]int{{10, 11, 12}, {20, 21}})

	assert.Equal(t, []int{10, 11, 12}, ringOf(q, 0))
	assert.Equal(t, []int{20, 21}, ringOf(q, 3))
}

func TestRemoveAndSet_CollapsesTowardRightNeighbor(t *testing.T) {
	q := vqueue.Init([][]int{{0, 1, 2, 3}})

	survivor := q.RemoveAndSet(1, 99)
	require.Equal(t, vqueue.Pointer(2), survivor)
	assert.Equal(t, 99, q.Real(survivor))
	assert.True(t, q.Done(1))
	assert.Equal(t, []int{0, 99, 3}, ringOf(q, 0))
	assert.Equal(t, vqueue.Pointer(0), q.LV(survivor))
}

func TestRemoveAndSet_TwoMemberLoopSelfLinks(t *testing.T) {
	q := vqueue.Init([][]int{{0, 1}})

	survivor := q.RemoveAndSet(0, 42)
	assert.Equal(t, vqueue.Pointer(1), survivor)
	assert.Equal(t, survivor, q.LV(survivor))
	assert.Equal(t, survivor, q.RV(survivor))
}

func TestSplitAndSet_CutsOneLoopIntoTwo(t *testing.T) {
	// anchor=0, struck=2; loop is 0 -> 1 -> 2 -> 3 -> 0.
	q := vqueue.Init([][]int{{0, 1, 2, 3}})

	left, right := q.SplitAndSet(0, 2, 100, 200)

	assert.Equal(t, vqueue.Pointer(0), left)
	assert.Equal(t, vqueue.Pointer(4), right)
	assert.Equal(t, 100, q.Real(left))
	assert.Equal(t, 200, q.Real(right))

	// left child's loop: left(100) -> 3 -> left(100), i.e. shares the
	// far endpoint (struck's right neighbor) and keeps anchor's original
	// left neighbor.
	assert.Equal(t, []int{100, 3}, ringOf(q, left))

	// right child's loop: struck(2) -> right(200) -> anchor's original
	// right neighbor (real 1) -> struck(2), i.e. keeps struck as its
	// left neighbor and inherits anchor's original right neighbor.
	assert.Equal(t, []int{2, 200, 1}, ringOf(q, 2))
}

func TestIter_GroupsByDisjointLoop(t *testing.T) {
	q := vqueue.Init([][]int{{0, 1, 2}, {3, 4}})

	triples := q.Iter()
	require.Len(t, triples, 5)

	byLoop := map[int][]int{}
	for _, tr := range triples {
		byLoop[tr.Loop] = append(byLoop[tr.Loop], tr.Real)
	}
	assert.Len(t, byLoop, 2)
}

func TestIter_SkipsDoneSlots(t *testing.T) {
	q := vqueue.Init([][]int{{0, 1, 2, 3}})
	q.RemoveAndSet(1, 99)

	triples := q.Iter()
	require.Len(t, triples, 3)
	for _, tr := range triples {
		assert.NotEqual(t, vqueue.Pointer(1), tr.Pointer)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	q := vqueue.Init([][]int{{0, 1, 2}})
	snapshot := q.Clone()

	q.RemoveAndSet(0, 7)

	assert.Equal(t, []int{0, 1, 2}, ringOf(snapshot, 0))
	assert.Equal(t, []int{7, 2}, ringOf(q, 1))
}
