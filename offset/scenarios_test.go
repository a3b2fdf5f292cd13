package offset_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/kasprzak-oleander/polyskel/geom"
	"github.com/kasprzak-oleander/polyskel/offset"
	"github.com/kasprzak-oleander/polyskel/skeleton"
)

// containsApprox reports whether want is present in got within Epsilon,
// ignoring order — reconstruction makes no ordering guarantee about a
// ring's starting point.
func containsApprox(t *testing.T, got []geom.Coordinate, want geom.Coordinate) bool {
	t.Helper()
	for _, g := range got {
		if cmp.Equal(g, want, cmpopts.EquateApprox(0, 1e-9)) {
			return true
		}
	}
	return false
}

// TestApplyVertexQueue_SquareDeflation_ShrinksEachCorner checks that a
// unit square deflated by 0.2 produces a single smaller square with no
// holes.
func TestApplyVertexQueue_SquareDeflation_ShrinksEachCorner(t *testing.T) {
	square := []geom.Coordinate{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}

	sk := skeleton.SkeletonOfPolygon([][]geom.Coordinate{square}, true)
	vq := offset.GetVertexQueue(sk, 0.2)
	mp := offset.ApplyVertexQueue(sk, vq, 0.2)

	require.Len(t, mp.Polygons, 1)
	require.Empty(t, mp.Polygons[0].Holes)
	require.Len(t, mp.Polygons[0].Exterior, 4)

	for _, want := range []geom.Coordinate{
		{X: 0.2, Y: 0.2}, {X: 0.8, Y: 0.2}, {X: 0.8, Y: 0.8}, {X: 0.2, Y: 0.8},
	} {
		require.True(t, containsApprox(t, mp.Polygons[0].Exterior, want), "missing corner %v", want)
	}
}

// TestApplyVertexQueue_SquareDeflation_VanishesAtAndBeyondCollapseDistance
// checks that a unit square deflated at or past its total-collapse
// distance (0.5, where all four corners meet at the centroid) reports no
// surviving polygon at all, rather than a degenerate sliver ring.
func TestApplyVertexQueue_SquareDeflation_VanishesAtAndBeyondCollapseDistance(t *testing.T) {
	square := []geom.Coordinate{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}

	sk := skeleton.SkeletonOfPolygon([][]geom.Coordinate{square}, true)

	for _, d := range []float64{0.5, 0.6, 1} {
		vq := offset.GetVertexQueue(sk, d)
		mp := offset.ApplyVertexQueue(sk, vq, d)
		require.Empty(t, mp.Polygons, "distance %v should leave nothing behind", d)
	}
}

// TestApplyVertexQueue_ContainmentAtZero checks that buffering by
// distance 0 returns a polygon congruent to the input.
func TestApplyVertexQueue_ContainmentAtZero(t *testing.T) {
	square := []geom.Coordinate{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}

	sk := skeleton.SkeletonOfPolygon([][]geom.Coordinate{square}, true)
	vq := offset.GetVertexQueue(sk, 0)
	mp := offset.ApplyVertexQueue(sk, vq, 0)

	require.Len(t, mp.Polygons, 1)
	for _, want := range square {
		require.True(t, containsApprox(t, mp.Polygons[0].Exterior, want))
	}
}
