package quadtree

// HazardKey is a generational handle for a hazard held by a Tree. It
// packs a slot index in the low 32 bits and a generation counter in
// the high 32 bits, the same technique tiled spatial indices use to
// encode a stable reference without a pointer: reusing a slot after a
// Remove bumps the generation, so a key minted before the removal
// never aliases the new occupant (spec.md §3 "generational keys",
// §9 "Generational keys"). The registry (package hazard) owns slot
// allocation; this package only owns the encoding.
type HazardKey uint64

const keyIndexBits = 32
const keyIndexMask = uint64(1)<<keyIndexBits - 1

// NilKey is never assigned by a registry and never matches a live slot.
const NilKey HazardKey = 0

// NewHazardKey packs a slot index and generation into a HazardKey. A
// generation of 0 is reserved for NilKey; callers should start their
// generation counters at 1.
func NewHazardKey(index, generation uint32) HazardKey {
	return HazardKey(uint64(generation)<<keyIndexBits | uint64(index))
}

// Index returns the slot index packed into k.
func (k HazardKey) Index() uint32 {
	return uint32(uint64(k) & keyIndexMask)
}

// Generation returns the generation counter packed into k.
func (k HazardKey) Generation() uint32 {
	return uint32(uint64(k) >> keyIndexBits)
}
