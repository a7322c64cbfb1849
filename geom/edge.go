package geom

// Edge is the fundamental boundary unit: an ordered pair of points.
// Direction matters for ring traversal (it determines interior side)
// but not for the symmetric collision predicates in predicates.go.
type Edge struct {
	A, B Point
}

// Vector returns the directed edge vector B-A.
func (e Edge) Vector() Point { return e.B.Sub(e.A) }

// Length returns the Euclidean length of the edge.
func (e Edge) Length() float64 { return e.A.Dist(e.B) }

// Bound returns the axis-aligned bounding rectangle of the edge.
func (e Edge) Bound() Rect { return RectFromPoints(e.A, e.B) }

// Degenerate reports whether the edge has (numerically) zero length.
func (e Edge) Degenerate(tol Tolerance) bool {
	return e.Length() <= tol.AbsEpsilon
}

// Midpoint returns the point halfway between A and B.
func (e Edge) Midpoint() Point { return e.A.Lerp(e.B, 0.5) }
