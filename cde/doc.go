// Package cde is the collision detection engine façade (spec.md §4.G):
// it owns a quadtree.Tree and a hazard.Registry, exposes the two-phase
// surrogate-then-exact placement query, and layers configuration
// (component I), snapshot/restore (component H) and diagnostics
// (component J) on top.
package cde
