// Package quadtree implements the region quadtree spatial index over a
// bin-sized rectangle (spec.md §4.E, component E). Each node stores,
// per hazard, a presence tag describing that hazard's relationship to
// the node's rectangle: absent, entirely forbidden, or partially
// crossing (with the crossing edges kept). Traversal order is fixed
// (NW, NE, SW, SE) and edges within a node are kept in insertion order,
// so every query is deterministic regardless of hash seeds, goroutine
// scheduling, or address layout (spec.md §5, §8 property 2).
package quadtree
