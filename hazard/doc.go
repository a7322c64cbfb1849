// Package hazard implements the hazard registry (spec.md §4.F): the
// generational slot map that owns a hazard's shape, mode and scope and
// binds it into a quadtree.Tree only while the hazard is active. The
// registry is the only caller that ever invokes quadtree.Tree.Insert
// and quadtree.Tree.Remove; package quadtree never imports this
// package, so data flows registry -> quadtree, never back.
package hazard
