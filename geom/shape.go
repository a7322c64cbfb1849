package geom

// Shape is one exterior ring plus zero or more interior rings (holes),
// with its derived attributes (bound, area, centroid, edge count)
// cached at construction time. A Shape is immutable: build
// a new one rather than mutating vertices in place.
type Shape struct {
	Exterior Ring
	Holes    []Ring

	bound    Rect
	area     float64
	centroid Point
	numEdges int
	edges    []Edge
}

// NewShape validates and constructs a Shape from an exterior ring and
// its holes, normalizing orientation (CCW exterior, CW holes) and
// caching bound/area/centroid. It fails fatally on
// self-intersection, zero area, non-finite coordinates, or a hole that
// is not contained by the exterior.
func NewShape(exterior Ring, holes []Ring, tol Tolerance) (*Shape, error) {
	if err := exterior.Validate(tol); err != nil {
		return nil, err
	}
	ext := exterior
	if !ext.IsCCW() {
		ext = ext.Reversed()
	}

	extBound := ext.Bound()
	normHoles := make([]Ring, len(holes))
	area := ext.Area()
	numEdges := len(ext)
	for i, h := range holes {
		if err := h.Validate(tol); err != nil {
			return nil, err
		}
		nh := h
		if nh.IsCCW() {
			nh = nh.Reversed()
		}
		if !extBound.Expanded(tol.AbsEpsilon).ContainsRect(nh.Bound()) {
			// The hole's bound is not contained by the exterior's bound,
			// a necessary (if not sufficient) condition for containment.
			return nil, ErrHoleOutsideExterior
		}
		for _, v := range nh {
			if PointInRing(v, ext, tol) == Outside {
				return nil, ErrHoleOutsideExterior
			}
		}
		normHoles[i] = nh
		area -= nh.Area()
		numEdges += len(nh)
	}

	s := &Shape{
		Exterior: ext,
		Holes:    normHoles,
		bound:    extBound,
		area:     area,
		numEdges: numEdges,
	}
	s.centroid = ext.Centroid()
	s.edges = make([]Edge, 0, numEdges)
	s.edges = append(s.edges, ext.Edges()...)
	for _, h := range normHoles {
		s.edges = append(s.edges, h.Edges()...)
	}
	return s, nil
}

// Bound returns the shape's cached axis-aligned bounding rectangle
// (the exterior ring's bound; holes never enlarge it).
func (s *Shape) Bound() Rect { return s.bound }

// Area returns the shape's cached area (exterior area minus holes).
func (s *Shape) Area() float64 { return s.area }

// Centroid returns the shape's cached centroid (of the exterior ring).
func (s *Shape) Centroid() Point { return s.centroid }

// NumEdges returns the total number of edges across the exterior ring
// and all holes.
func (s *Shape) NumEdges() int { return s.numEdges }

// Edges returns every edge of the shape: the exterior ring's edges
// followed by each hole's edges in order, which is the same order
// Edge(i) below indexes into. The slice is cached at construction time
// and shared across calls; callers must not mutate it.
func (s *Shape) Edges() []Edge {
	return s.edges
}

// Edge returns the i-th edge in the same order Edges reports, indexing
// into the cached edge slice rather than rebuilding it.
func (s *Shape) Edge(i int) Edge {
	return s.edges[i]
}

// Contains classifies p against the shape as a whole: inside the
// exterior and outside every hole is Inside; on the exterior boundary
// or on any hole's boundary is Boundary; everything else is Outside.
func (s *Shape) Contains(p Point, tol Tolerance) Containment {
	if !s.bound.Expanded(tol.AbsEpsilon).ContainsPoint(p) {
		return Outside
	}
	switch PointInRing(p, s.Exterior, tol) {
	case Outside:
		return Outside
	case Boundary:
		return Boundary
	}
	for _, h := range s.Holes {
		switch PointInRing(p, h, tol) {
		case Inside:
			return Outside
		case Boundary:
			return Boundary
		}
	}
	return Inside
}

// Transform applies a rigid rotation about the origin followed by a
// translation to every vertex of the shape, returning a brand-new
// Shape. The CDE never mutates an item prototype's vertices in place;
// a Placement is applied lazily by calling Transform on demand
// (a Placement).
func (s *Shape) Transform(dx, dy, theta float64, tol Tolerance) (*Shape, error) {
	apply := func(r Ring) Ring {
		out := make(Ring, len(r))
		for i, v := range r {
			rv := v.Rotated(theta)
			out[i] = Point{X: rv.X + dx, Y: rv.Y + dy}
		}
		return out
	}
	holes := make([]Ring, len(s.Holes))
	for i, h := range s.Holes {
		holes[i] = apply(h)
	}
	return NewShape(apply(s.Exterior), holes, tol)
}
