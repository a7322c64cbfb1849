package cde

import (
	"github.com/irregularpack/cde/geom"
	"github.com/irregularpack/cde/quadtree"
	"github.com/irregularpack/cde/surrogate"
)

// Hit identifies the hazard a collision query matched against.
type Hit = quadtree.Hit

// DetectCollision runs the two-phase placement query (component G):
// poles and piers are checked first since a pole (an inscribed disk,
// a subset of item) or a pier (one of item's own edges) colliding with
// a hazard proves item itself collides, without needing the exact
// sweep at all. Only when the whole surrogate comes back clear is the
// exact edge sweep run, since a clear surrogate is inconclusive — it
// may simply be too coarse to have caught a genuine narrow overlap.
func (e *Engine) DetectCollision(item *geom.Shape, sur *surrogate.Surrogate, filter Filter) (Hit, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	e.stats.queries.Add(1)

	// Every pole is a subset of Bounding, so a clear bounding disk proves
	// every pole is clear too. This is the outermost trivial reject: it
	// skips the whole pole loop without testing each pole individually.
	if len(sur.Poles) == 0 || len(e.tree.QueryDisk(sur.Bounding, filter)) > 0 {
		for _, p := range sur.FastFailPoles() {
			if hits := e.tree.QueryDisk(p.Circle, filter); len(hits) > 0 {
				e.stats.surrogateShortCircuits.Add(1)
				return hits[0], true
			}
		}
	}
	for _, p := range sur.FastFailPiers() {
		if hits := e.tree.QueryEdge(p.Edge, filter); len(hits) > 0 {
			e.stats.surrogateShortCircuits.Add(1)
			return hits[0], true
		}
	}

	e.stats.exactSweeps.Add(1)
	return e.exactDetect(item, filter)
}

// exactDetect runs the exact edge-level sweep: every edge of item is
// checked against the index, then (if no edge crossed anything) item's
// centroid is checked for full containment inside a forbidden region,
// which an edge sweep alone would miss.
func (e *Engine) exactDetect(item *geom.Shape, filter Filter) (Hit, bool) {
	n := item.NumEdges()
	for i := 0; i < n; i++ {
		if hits := e.tree.QueryEdge(item.Edge(i), filter); len(hits) > 0 {
			return hits[0], true
		}
	}
	if hit, ok := e.tree.QueryPoint(item.Centroid(), filter); ok {
		return hit, true
	}
	return Hit{}, false
}

// CollectCollisions reports every hazard item collides with, skipping
// the surrogate short-circuit since a caller asking for the full set
// needs every hit, not just the first.
func (e *Engine) CollectCollisions(item *geom.Shape, filter Filter) []Hit {
	e.mu.RLock()
	defer e.mu.RUnlock()

	e.stats.queries.Add(1)
	seen := map[quadtree.HazardKey]bool{}
	var out []Hit
	n := item.NumEdges()
	for i := 0; i < n; i++ {
		for _, h := range e.tree.QueryEdge(item.Edge(i), filter) {
			if !seen[h.Key] {
				seen[h.Key] = true
				out = append(out, h)
			}
		}
	}
	if hit, ok := e.tree.QueryPoint(item.Centroid(), filter); ok && !seen[hit.Key] {
		out = append(out, hit)
	}
	return out
}

// QueryPoint re-exposes the raw index point query for callers that
// don't need the surrogate pipeline (e.g. "is this single point free").
func (e *Engine) QueryPoint(p geom.Point, filter Filter) (Hit, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	e.stats.queries.Add(1)
	return e.tree.QueryPoint(p, filter)
}

// CollectAll reports every active, non-filtered hazard regardless of
// location — used by diagnostics and by external indexers. Registered
// hazards that are not active are not in the index and are not listed.
func (e *Engine) CollectAll(filter Filter) []Hit {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tree.CollectAll(filter)
}
