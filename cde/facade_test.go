package cde

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irregularpack/cde/geom"
)

func binShape(t *testing.T, w, h float64) *geom.Shape {
	t.Helper()
	ring := geom.Ring{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
	s, err := geom.NewShape(ring, nil, geom.DefaultTolerance(w+h))
	require.NoError(t, err)
	return s
}

func squareAt(t *testing.T, cx, cy, half float64) *geom.Shape {
	t.Helper()
	ring := geom.Ring{
		{X: cx - half, Y: cy - half}, {X: cx + half, Y: cy - half},
		{X: cx + half, Y: cy + half}, {X: cx - half, Y: cy + half},
	}
	s, err := geom.NewShape(ring, nil, geom.DefaultTolerance(200))
	require.NoError(t, err)
	return s
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	bin := binShape(t, 100, 100)
	return New(bin.Bound(), DefaultConfig(), nil)
}

func TestDetectCollisionAgainstExclusionItem(t *testing.T) {
	e := newTestEngine(t)
	placed := squareAt(t, 50, 50, 10)
	key := e.Register(placed, Exclusion, "items")
	require.NoError(t, e.SetActive(key, true))

	candidate := squareAt(t, 62, 50, 8) // overlaps the placed item
	sur := e.BuildSurrogate(candidate)
	hit, ok := e.DetectCollision(candidate, sur, Filter{})
	require.True(t, ok)
	require.Equal(t, key, hit.Key)

	clear := squareAt(t, 90, 90, 5)
	sur2 := e.BuildSurrogate(clear)
	_, ok = e.DetectCollision(clear, sur2, Filter{})
	require.False(t, ok)
}

func TestSnapshotRestoreUndoesRegistration(t *testing.T) {
	e := newTestEngine(t)
	token := e.Snapshot()

	key := e.Register(squareAt(t, 50, 50, 10), Exclusion, "items")
	require.NoError(t, e.SetActive(key, true))

	_, ok := e.QueryPoint(geom.Point{X: 50, Y: 50}, Filter{})
	require.True(t, ok)

	require.NoError(t, e.Restore(token))
	_, err := e.Lookup(key)
	require.Error(t, err)

	_, ok = e.QueryPoint(geom.Point{X: 50, Y: 50}, Filter{})
	require.False(t, ok)
}

func TestSnapshotRestoreUndoesDeactivation(t *testing.T) {
	e := newTestEngine(t)
	key := e.Register(squareAt(t, 50, 50, 10), Exclusion, "items")
	require.NoError(t, e.SetActive(key, true))

	token := e.Snapshot()
	require.NoError(t, e.SetActive(key, false))
	_, ok := e.QueryPoint(geom.Point{X: 50, Y: 50}, Filter{})
	require.False(t, ok)

	require.NoError(t, e.Restore(token))
	_, ok = e.QueryPoint(geom.Point{X: 50, Y: 50}, Filter{})
	require.True(t, ok, "restoring must re-activate the hazard")
}

func TestNestedSnapshotsAreLIFO(t *testing.T) {
	e := newTestEngine(t)
	outer := e.Snapshot()
	k1 := e.Register(squareAt(t, 20, 20, 5), Exclusion, "items")
	require.NoError(t, e.SetActive(k1, true))

	inner := e.Snapshot()
	k2 := e.Register(squareAt(t, 80, 80, 5), Exclusion, "items")
	require.NoError(t, e.SetActive(k2, true))

	require.NoError(t, e.Restore(outer))
	_, err := e.Lookup(k1)
	require.Error(t, err)
	_, err = e.Lookup(k2)
	require.Error(t, err)

	require.Error(t, e.Restore(inner), "the inner token must be invalidated by the outer restore")
}

func TestStatsCountQueries(t *testing.T) {
	e := newTestEngine(t)
	item := squareAt(t, 50, 50, 5)
	sur := e.BuildSurrogate(item)
	_, _ = e.DetectCollision(item, sur, Filter{})
	require.Equal(t, int64(1), e.Stats().Queries)
}

func TestDebugDumpIncludesRegisteredHazards(t *testing.T) {
	e := newTestEngine(t)
	key := e.Register(squareAt(t, 50, 50, 10), Exclusion, "items")
	require.NoError(t, e.SetActive(key, true))

	b, err := e.DebugDump()
	require.NoError(t, err)
	require.Contains(t, string(b), `"scope":"items"`)
}
