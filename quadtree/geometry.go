package quadtree

import "github.com/irregularpack/cde/geom"

// Geometry is the minimal surface a hazard's shape exposes to the
// index: its bound, its edges (in the fixed order the index will cite
// them by position), and a containment test used to resolve the
// Entire/None bulk classification and the fully-contained interior
// check. *geom.Shape satisfies this directly.
type Geometry interface {
	Bound() geom.Rect
	NumEdges() int
	Edge(i int) geom.Edge
	Contains(p geom.Point, tol geom.Tolerance) geom.Containment
}
