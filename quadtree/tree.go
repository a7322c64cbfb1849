package quadtree

import (
	"sort"

	"github.com/irregularpack/cde/geom"
)

// Config bounds how deep and how dense the tree is allowed to grow
// (spec.md §4.E, §6).
type Config struct {
	// MaxDepth is D_max: no node below this depth is ever subdivided
	// further, regardless of how many edges it accumulates.
	MaxDepth int
	// Threshold is cd_threshold: a leaf subdivides once the number of
	// edges referenced by its own Partial tags exceeds this, provided
	// its depth is still less than MaxDepth.
	Threshold int
}

// DefaultConfig returns the values spec.md §6 lists as defaults.
func DefaultConfig() Config {
	return Config{MaxDepth: 12, Threshold: 16}
}

// Hit identifies one hazard a query matched against.
type Hit struct {
	Key   HazardKey
	Scope string
}

// Tree is the region quadtree spatial index (component E). It holds no
// hazard lifecycle state of its own — register/deregister and active
// tracking belong to package hazard, which calls Insert and Remove as
// hazards become active or inactive.
type Tree struct {
	root *node
	cfg  Config
	tol  geom.Tolerance

	shapes map[HazardKey]Geometry
	modes  map[HazardKey]Mode
	scopes map[HazardKey]string
}

// NewTree builds an empty tree covering bound.
func NewTree(bound geom.Rect, cfg Config, tol geom.Tolerance) *Tree {
	return &Tree{
		root:   newNode(bound, 0),
		cfg:    cfg,
		tol:    tol,
		shapes: make(map[HazardKey]Geometry),
		modes:  make(map[HazardKey]Mode),
		scopes: make(map[HazardKey]string),
	}
}

// Bound returns the rectangle the tree was built over.
func (t *Tree) Bound() geom.Rect { return t.root.bound }

// Insert binds key to shape under mode and scope, tagging every node
// the shape's boundary or interior touches (spec.md §4.E insert). Key
// must not already be present; callers that need to move a hazard call
// Remove first.
func (t *Tree) Insert(key HazardKey, shape Geometry, mode Mode, scope string) {
	t.shapes[key] = shape
	t.modes[key] = mode
	t.scopes[key] = scope
	t.insert(t.root, key, shape, mode)
}

func (t *Tree) insert(n *node, key HazardKey, shape Geometry, mode Mode) {
	if !geom.RectsCollide(n.bound, shape.Bound()) {
		return
	}

	local := collidingEdges(shape, n.bound, t.tol)
	if len(local) == 0 {
		c := shape.Contains(n.bound.Center(), t.tol)
		if mode.Triggers(c) {
			n.setEntire(key)
		}
		return
	}

	if n.isLeaf() {
		if len(local)+n.edgeCount > t.cfg.Threshold && n.depth < t.cfg.MaxDepth {
			n.subdivide()
		} else {
			n.addPartial(key, local)
			return
		}
	}

	var remain []int
	for _, ei := range local {
		e := shape.Edge(ei)
		fits := false
		for _, c := range n.children {
			if c.bound.ContainsRect(e.Bound()) {
				fits = true
				break
			}
		}
		if !fits {
			remain = append(remain, ei)
		}
	}
	n.addPartial(key, remain)

	for _, c := range n.children {
		if geom.RectsCollide(shape.Bound(), c.bound) {
			t.insert(c, key, shape, mode)
		}
	}
}

// collidingEdges returns the indices of shape's edges that intersect
// r, in the shape's own insertion order.
func collidingEdges(shape Geometry, r geom.Rect, tol geom.Tolerance) []int {
	var out []int
	n := shape.NumEdges()
	for i := 0; i < n; i++ {
		if geom.EdgeRectCollide(shape.Edge(i), r, tol) {
			out = append(out, i)
		}
	}
	return out
}

// Remove unbinds key from the tree. It is a no-op if key is not
// present. Callers (the hazard registry) are responsible for bumping
// the key's generation before reusing its slot.
func (t *Tree) Remove(key HazardKey) {
	if _, ok := t.shapes[key]; !ok {
		return
	}
	removeKey(t.root, key)
	delete(t.shapes, key)
	delete(t.modes, key)
	delete(t.scopes, key)
}

func removeKey(n *node, key HazardKey) {
	n.clear(key)
	if n.isLeaf() {
		return
	}
	for _, c := range n.children {
		removeKey(c, key)
	}
	if n.empty() {
		n.collapse()
	}
}

func sortedTagKeys(n *node) []HazardKey {
	keys := make([]HazardKey, 0, len(n.tags))
	for k := range n.tags {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// QueryPoint reports one non-filtered hazard whose presence mode is
// triggered by p, descending a single root-to-leaf path (spec.md §4.E
// query_point). Entire tags along the path resolve immediately, ahead
// of any Partial tag at the same or a shallower node, so the hazard
// reported is not necessarily the lowest key that p triggers. Partial
// tags at a node are tried in ascending key order, after the node's
// children found nothing, by an exact containment test
// against the hazard's own shape, since the edges stored at any single
// node are only the subset that did not fit cleanly into one child and
// do not by themselves support a full ray cast.
func (t *Tree) QueryPoint(p geom.Point, filter Filter) (Hit, bool) {
	return t.queryPoint(t.root, p, filter)
}

func (t *Tree) queryPoint(n *node, p geom.Point, filter Filter) (Hit, bool) {
	if !n.bound.ContainsPoint(p) {
		return Hit{}, false
	}

	partials := make([]HazardKey, 0, 4)
	for _, key := range sortedTagKeys(n) {
		if !filter.allows(key, t.scopes[key]) {
			continue
		}
		tag := n.tags[key]
		if tag.kind == tagEntire {
			return Hit{Key: key, Scope: t.scopes[key]}, true
		}
		partials = append(partials, key)
	}

	if !n.isLeaf() {
		for _, c := range n.children {
			if hit, ok := t.queryPoint(c, p, filter); ok {
				return hit, true
			}
		}
	}

	sort.Slice(partials, func(i, j int) bool { return partials[i] < partials[j] })
	for _, key := range partials {
		shape := t.shapes[key]
		c := shape.Contains(p, t.tol)
		if t.modes[key].Triggers(c) {
			return Hit{Key: key, Scope: t.scopes[key]}, true
		}
	}
	return Hit{}, false
}

// QueryDisk reports the non-filtered hazards that the disk c touches
// (spec.md §4.E query_disk): rect×rect to prune, then Entire tags
// collide outright and Partial tags are resolved edge by edge against
// only the edges stored at the visited node, since visiting every node
// that overlaps the disk collectively covers every edge within reach.
// A Partial tag counts only when one of its stored edges touches the
// disk: a disk lying inside a hazard clear of all its edges is
// reported only where that hazard holds an Entire tag.
func (t *Tree) QueryDisk(c geom.Circle, filter Filter) []Hit {
	seen := map[HazardKey]bool{}
	var out []Hit
	t.queryDisk(t.root, c, filter, seen, &out)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func (t *Tree) queryDisk(n *node, c geom.Circle, filter Filter, seen map[HazardKey]bool, out *[]Hit) {
	if !geom.CircleRectCollide(c, n.bound) {
		return
	}
	for _, key := range sortedTagKeys(n) {
		if seen[key] || !filter.allows(key, t.scopes[key]) {
			continue
		}
		tag := n.tags[key]
		hit := false
		if tag.kind == tagEntire {
			hit = true
		} else {
			shape := t.shapes[key]
			for _, ei := range tag.edges {
				if geom.CircleEdgeCollide(c, shape.Edge(ei)) {
					hit = true
					break
				}
			}
		}
		if hit {
			seen[key] = true
			*out = append(*out, Hit{Key: key, Scope: t.scopes[key]})
		}
	}
	if !n.isLeaf() {
		for _, child := range n.children {
			t.queryDisk(child, c, filter, seen, out)
		}
	}
}

// QueryEdge reports the non-filtered hazards that edge e touches
// (spec.md §4.E query_edge), following the same node-local-edges
// strategy as QueryDisk: a hazard counts where it holds an Entire tag
// on a node e crosses, or where e touches one of its stored edges. An
// edge lying inside a hazard clear of all its edges is reported only
// through an Entire tag.
func (t *Tree) QueryEdge(e geom.Edge, filter Filter) []Hit {
	seen := map[HazardKey]bool{}
	var out []Hit
	t.queryEdge(t.root, e, filter, seen, &out)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func (t *Tree) queryEdge(n *node, e geom.Edge, filter Filter, seen map[HazardKey]bool, out *[]Hit) {
	if !geom.EdgeRectCollide(e, n.bound, t.tol) {
		return
	}
	for _, key := range sortedTagKeys(n) {
		if seen[key] || !filter.allows(key, t.scopes[key]) {
			continue
		}
		tag := n.tags[key]
		hit := false
		if tag.kind == tagEntire {
			hit = true
		} else {
			shape := t.shapes[key]
			for _, ei := range tag.edges {
				if geom.EdgesCollide(e, shape.Edge(ei), t.tol) {
					hit = true
					break
				}
			}
		}
		if hit {
			seen[key] = true
			*out = append(*out, Hit{Key: key, Scope: t.scopes[key]})
		}
	}
	if !n.isLeaf() {
		for _, child := range n.children {
			t.queryEdge(child, e, filter, seen, out)
		}
	}
}

// CollectAll reports every non-filtered hazard registered in the tree,
// in ascending key order, regardless of where it touches the bound.
func (t *Tree) CollectAll(filter Filter) []Hit {
	keys := make([]HazardKey, 0, len(t.shapes))
	for k := range t.shapes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]Hit, 0, len(keys))
	for _, k := range keys {
		if filter.allows(k, t.scopes[k]) {
			out = append(out, Hit{Key: k, Scope: t.scopes[k]})
		}
	}
	return out
}
