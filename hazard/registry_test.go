package hazard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irregularpack/cde/geom"
	"github.com/irregularpack/cde/quadtree"
)

func testShape(t *testing.T, cx, cy, half float64) *geom.Shape {
	t.Helper()
	ring := geom.Ring{
		{X: cx - half, Y: cy - half},
		{X: cx + half, Y: cy - half},
		{X: cx + half, Y: cy + half},
		{X: cx - half, Y: cy + half},
	}
	s, err := geom.NewShape(ring, nil, geom.DefaultTolerance(100))
	require.NoError(t, err)
	return s
}

func testTree() *quadtree.Tree {
	bound := geom.RectFromPoints(geom.Point{X: 0, Y: 0}, geom.Point{X: 100, Y: 100})
	return quadtree.NewTree(bound, quadtree.DefaultConfig(), geom.DefaultTolerance(100))
}

func TestRegisterStartsInactive(t *testing.T) {
	tree := testTree()
	r := NewRegistry(tree)
	key := r.Register(testShape(t, 50, 50, 10), quadtree.Exclusion, "items")

	_, ok := tree.QueryPoint(geom.Point{X: 50, Y: 50}, quadtree.Filter{})
	require.False(t, ok, "a freshly registered hazard must not be bound until SetActive")

	require.NoError(t, r.SetActive(key, true))
	_, ok = tree.QueryPoint(geom.Point{X: 50, Y: 50}, quadtree.Filter{})
	require.True(t, ok)
}

func TestDeregisterBumpsGeneration(t *testing.T) {
	tree := testTree()
	r := NewRegistry(tree)
	key := r.Register(testShape(t, 50, 50, 10), quadtree.Exclusion, "items")
	require.NoError(t, r.SetActive(key, true))
	require.NoError(t, r.Deregister(key))

	_, err := r.Lookup(key)
	require.ErrorIs(t, err, ErrStaleKey)

	newKey := r.Register(testShape(t, 10, 10, 2), quadtree.Exclusion, "items")
	require.Equal(t, key.Index(), newKey.Index(), "the freed slot should be reused")
	require.NotEqual(t, key.Generation(), newKey.Generation())

	_, err = r.Lookup(key)
	require.ErrorIs(t, err, ErrStaleKey, "the stale key must not resolve to the reused slot")
}

func TestIterActiveSkipsInactive(t *testing.T) {
	tree := testTree()
	r := NewRegistry(tree)
	active := r.Register(testShape(t, 20, 20, 5), quadtree.Exclusion, "a")
	inactive := r.Register(testShape(t, 80, 80, 5), quadtree.Exclusion, "b")
	require.NoError(t, r.SetActive(active, true))

	var seen []quadtree.HazardKey
	r.IterActive(func(h Hazard) bool {
		seen = append(seen, h.Key)
		return true
	})
	require.Equal(t, []quadtree.HazardKey{active}, seen)
	_ = inactive
}

func TestContainerShapeForbidsOutsideBin(t *testing.T) {
	bin := testShape(t, 50, 50, 40)
	cs, err := ContainerShape(bin, geom.DefaultTolerance(100))
	require.NoError(t, err)

	require.Equal(t, geom.Outside, cs.Contains(geom.Point{X: 50, Y: 50}, geom.DefaultTolerance(100)))
	require.Equal(t, geom.Inside, cs.Contains(geom.Point{X: 50, Y: 200}, geom.DefaultTolerance(100)))
}
