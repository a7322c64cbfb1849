// Package surrogate builds a cheap stand-in for an item's exact shape
// (spec.md §4.D, component D): a bounding circle, a set of disjoint
// inscribed disks ("poles") covering most of the interior, and a set of
// boundary chords ("piers") covering the narrow reaches poles miss. A
// surrogate query (pole/pier vs. the quadtree) is a fail-fast pre-filter
// run before the exact edge-level sweep: poles lie inside the item and
// piers are the item's own edges, so if any fail-fast pole or pier
// collides, the item collides and the exact sweep is skipped; if every
// one is clear, the result is inconclusive and the exact sweep is run.
package surrogate
