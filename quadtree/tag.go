package quadtree

// tagKind distinguishes the three presence annotations a node can hold
// for a given hazard key (spec.md §3). None is never stored explicitly
// — absence from a node's tag map *is* None.
type tagKind int

const (
	tagEntire tagKind = iota
	tagPartial
)

// presenceTag is the annotation a node stores for one hazard key. A
// node must never hold both an Entire tag and Partial edges for the
// same hazard (spec.md §4.E invariant); the struct shape enforces this
// by construction since edges is only meaningful when kind==tagPartial.
type presenceTag struct {
	kind  tagKind
	edges []int // indices into the hazard's Edge(i), insertion order
}
