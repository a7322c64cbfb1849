package quadtree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irregularpack/cde/geom"
)

func square(cx, cy, half float64) *geom.Shape {
	ring := geom.Ring{
		{X: cx - half, Y: cy - half},
		{X: cx + half, Y: cy - half},
		{X: cx + half, Y: cy + half},
		{X: cx - half, Y: cy + half},
	}
	tol := geom.DefaultTolerance(100)
	s, err := geom.NewShape(ring, nil, tol)
	if err != nil {
		panic(err)
	}
	return s
}

func testBound() geom.Rect {
	return geom.RectFromPoints(geom.Point{X: 0, Y: 0}, geom.Point{X: 100, Y: 100})
}

func TestQueryPointExclusionBoundary(t *testing.T) {
	tol := geom.DefaultTolerance(100)
	tree := NewTree(testBound(), DefaultConfig(), tol)
	shape := square(50, 50, 10)
	tree.Insert(NewHazardKey(1, 1), shape, Exclusion, "items")

	hit, ok := tree.QueryPoint(geom.Point{X: 60, Y: 50}, Filter{})
	require.True(t, ok, "touching the exclusion boundary must collide")
	require.Equal(t, "items", hit.Scope)

	_, ok = tree.QueryPoint(geom.Point{X: 80, Y: 80}, Filter{})
	require.False(t, ok)
}

func TestQueryPointEnclosureBoundaryIsSafe(t *testing.T) {
	tol := geom.DefaultTolerance(100)
	tree := NewTree(testBound(), DefaultConfig(), tol)
	shape := square(50, 50, 10)
	tree.Insert(NewHazardKey(1, 1), shape, Enclosure, "zone")

	_, ok := tree.QueryPoint(geom.Point{X: 60, Y: 50}, Filter{})
	require.False(t, ok, "an enclosure boundary touch must not collide")

	hit, ok := tree.QueryPoint(geom.Point{X: 50, Y: 50}, Filter{})
	require.True(t, ok, "strictly inside an enclosure hazard must collide")
	require.Equal(t, "zone", hit.Scope)
}

func TestQueryPointFilterExcludesKey(t *testing.T) {
	tol := geom.DefaultTolerance(100)
	tree := NewTree(testBound(), DefaultConfig(), tol)
	key := NewHazardKey(1, 1)
	tree.Insert(key, square(50, 50, 10), Exclusion, "items")

	f := Filter{}.WithoutKey(key)
	_, ok := tree.QueryPoint(geom.Point{X: 50, Y: 50}, f)
	require.False(t, ok)
}

func TestQueryDiskFindsNearbyHazard(t *testing.T) {
	tol := geom.DefaultTolerance(100)
	tree := NewTree(testBound(), DefaultConfig(), tol)
	key := NewHazardKey(1, 1)
	tree.Insert(key, square(50, 50, 10), Exclusion, "items")

	hits := tree.QueryDisk(geom.Circle{Center: geom.Point{X: 62, Y: 50}, Radius: 5}, Filter{})
	require.Len(t, hits, 1)
	require.Equal(t, key, hits[0].Key)

	hits = tree.QueryDisk(geom.Circle{Center: geom.Point{X: 90, Y: 90}, Radius: 2}, Filter{})
	require.Empty(t, hits)
}

func TestQueryEdgeFindsCrossingHazard(t *testing.T) {
	tol := geom.DefaultTolerance(100)
	tree := NewTree(testBound(), DefaultConfig(), tol)
	key := NewHazardKey(1, 1)
	tree.Insert(key, square(50, 50, 10), Exclusion, "items")

	e := geom.Edge{A: geom.Point{X: 0, Y: 50}, B: geom.Point{X: 100, Y: 50}}
	hits := tree.QueryEdge(e, Filter{})
	require.Len(t, hits, 1)
	require.Equal(t, key, hits[0].Key)
}

func TestRemoveClearsHazard(t *testing.T) {
	tol := geom.DefaultTolerance(100)
	tree := NewTree(testBound(), DefaultConfig(), tol)
	key := NewHazardKey(1, 1)
	tree.Insert(key, square(50, 50, 10), Exclusion, "items")
	tree.Remove(key)

	_, ok := tree.QueryPoint(geom.Point{X: 50, Y: 50}, Filter{})
	require.False(t, ok)
	require.True(t, tree.root.empty())
}

func TestCollectAllIsSortedByKey(t *testing.T) {
	tol := geom.DefaultTolerance(100)
	tree := NewTree(testBound(), DefaultConfig(), tol)
	k2 := NewHazardKey(2, 1)
	k1 := NewHazardKey(1, 1)
	tree.Insert(k2, square(20, 20, 5), Exclusion, "a")
	tree.Insert(k1, square(70, 70, 5), Exclusion, "b")

	hits := tree.CollectAll(Filter{})
	require.Len(t, hits, 2)
	require.Equal(t, k1, hits[0].Key)
	require.Equal(t, k2, hits[1].Key)
}

func TestSubdivisionStaysWithinMaxDepth(t *testing.T) {
	tol := geom.DefaultTolerance(100)
	cfg := Config{MaxDepth: 2, Threshold: 1}
	tree := NewTree(testBound(), cfg, tol)
	for i := 0; i < 20; i++ {
		key := NewHazardKey(uint32(i+1), 1)
		tree.Insert(key, square(float64(i%10)*9+5, 50, 2), Exclusion, "items")
	}

	var maxDepth func(n *node) int
	maxDepth = func(n *node) int {
		if n.isLeaf() {
			return n.depth
		}
		best := n.depth
		for _, c := range n.children {
			if d := maxDepth(c); d > best {
				best = d
			}
		}
		return best
	}
	require.LessOrEqual(t, maxDepth(tree.root), cfg.MaxDepth)
}
