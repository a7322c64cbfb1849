package geom

// Ring is an ordered sequence of vertices forming an implicitly closed
// boundary: the last vertex connects back to the first. Exterior rings
// are oriented counter-clockwise, hole rings clockwise (spec.md §3).
type Ring []Point

// Edges returns the ring's boundary edges in insertion order, the last
// one closing back to the first vertex. Iteration order here is what
// the quadtree's deterministic edge ordering within a node is built on
// top of (spec.md §4.E).
func (r Ring) Edges() []Edge {
	if len(r) == 0 {
		return nil
	}
	edges := make([]Edge, len(r))
	for i := range r {
		edges[i] = Edge{A: r[i], B: r[(i+1)%len(r)]}
	}
	return edges
}

// SignedArea returns the ring's signed area via the shoelace formula:
// positive for counter-clockwise orientation, negative for clockwise.
func (r Ring) SignedArea() float64 {
	if len(r) < 3 {
		return 0
	}
	sum := 0.0
	for i := range r {
		a := r[i]
		b := r[(i+1)%len(r)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Area returns the unsigned area enclosed by the ring.
func (r Ring) Area() float64 {
	a := r.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

// IsCCW reports whether the ring is wound counter-clockwise.
func (r Ring) IsCCW() bool { return r.SignedArea() > 0 }

// Reversed returns a new ring with vertex order reversed, flipping its
// orientation.
func (r Ring) Reversed() Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

// Centroid returns the ring's area-weighted centroid. Degenerate
// (zero-area) rings fall back to the vertex average.
func (r Ring) Centroid() Point {
	area := r.SignedArea()
	if len(r) == 0 {
		return Point{}
	}
	if area == 0 {
		sum := Point{}
		for _, p := range r {
			sum = sum.Add(p)
		}
		return sum.Div(float64(len(r)))
	}
	cx, cy := 0.0, 0.0
	for i := range r {
		a := r[i]
		b := r[(i+1)%len(r)]
		cross := a.X*b.Y - b.X*a.Y
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	factor := 1 / (6 * area)
	return Point{X: cx * factor, Y: cy * factor}
}

// Bound returns the ring's axis-aligned bounding rectangle.
func (r Ring) Bound() Rect {
	bound := EmptyRect()
	for _, p := range r {
		bound = bound.AddPoint(p)
	}
	return bound
}

// Validate checks the load-time invariants from spec.md §7's "invalid
// geometry" taxonomy entry: at least 3 vertices, every coordinate
// finite, non-zero area, and no self-intersection between non-adjacent
// edges.
func (r Ring) Validate(tol Tolerance) error {
	if len(r) < 3 {
		return ErrTooFewVertices
	}
	for _, p := range r {
		if !IsFinite(p) {
			return ErrNonFiniteCoordinate
		}
	}
	if r.Area() <= tol.AbsEpsilon*tol.AbsEpsilon {
		return ErrZeroArea
	}
	edges := r.Edges()
	n := len(edges)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			adjacent := j == i+1 || (i == 0 && j == n-1)
			if adjacent {
				continue
			}
			if EdgesCollide(edges[i], edges[j], tol) {
				return ErrSelfIntersecting
			}
		}
	}
	if r.Area() <= tol.AbsEpsilon*tol.AbsEpsilon {
		return ErrZeroArea
	}
	return nil
}
