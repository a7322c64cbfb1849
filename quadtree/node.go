package quadtree

import "github.com/irregularpack/cde/geom"

// Quadrant indices match geom.Rect.Quadrants(): NW, NE, SW, SE.
const (
	quadNW = iota
	quadNE
	quadSW
	quadSE
	numQuadrants
)

// node is one cell of the region quadtree. A leaf has children ==
// [4]*node{}; an internal node's children are all non-nil (subdivision
// always creates all four at once, never fewer).
type node struct {
	bound    geom.Rect
	depth    int
	children [numQuadrants]*node

	tags      map[HazardKey]*presenceTag
	edgeCount int // sum of len(edges) across this node's own Partial tags
}

func newNode(bound geom.Rect, depth int) *node {
	return &node{bound: bound, depth: depth, tags: make(map[HazardKey]*presenceTag)}
}

func (n *node) isLeaf() bool { return n.children[quadNW] == nil }

// subdivide turns a leaf into an internal node with four empty
// children. It does not redistribute the leaf's existing tags; callers
// that need a node to accept more Partial edges push the edges into
// the freshly created children themselves.
func (n *node) subdivide() {
	quads := n.bound.Quadrants()
	for i := range n.children {
		n.children[i] = newNode(quads[i], n.depth+1)
	}
}

func (n *node) setEntire(key HazardKey) {
	n.tags[key] = &presenceTag{kind: tagEntire}
}

func (n *node) addPartial(key HazardKey, edges []int) {
	if len(edges) == 0 {
		return
	}
	if t, ok := n.tags[key]; ok && t.kind == tagPartial {
		t.edges = append(t.edges, edges...)
		n.edgeCount += len(edges)
		return
	}
	n.tags[key] = &presenceTag{kind: tagPartial, edges: append([]int(nil), edges...)}
	n.edgeCount += len(edges)
}

// clear drops every tag this node (not its children) holds for key.
func (n *node) clear(key HazardKey) {
	if t, ok := n.tags[key]; ok {
		if t.kind == tagPartial {
			n.edgeCount -= len(t.edges)
		}
		delete(n.tags, key)
	}
}

// empty reports whether this node (and, if internal, its whole
// subtree) carries no tags at all — used to coalesce a subtree back
// into a bare leaf after a Remove.
func (n *node) empty() bool {
	if len(n.tags) != 0 {
		return false
	}
	if n.isLeaf() {
		return true
	}
	for _, c := range n.children {
		if !c.empty() {
			return false
		}
	}
	return true
}

func (n *node) collapse() {
	for i := range n.children {
		n.children[i] = nil
	}
}
