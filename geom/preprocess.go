package geom

import "math"

// PreprocessConfig bundles the preprocessor's tunables (spec.md §4.C,
// exposed through spec.md §6's configuration table).
type PreprocessConfig struct {
	Tolerance Tolerance

	// ConcavityMouthWidth is the minimum mouth width a concavity must
	// have to survive pruning; concavities narrower than this are
	// filled in. Zero disables pruning. This step is lossy by
	// construction (spec.md §4.C.2, §9 open question): the mouth width
	// is measured as the straight-line distance between the two
	// vertices bracketing the concave run, which is the simplest
	// metric that is monotonic in "how hard this concavity is to nest
	// into" without requiring a local medial-axis computation.
	ConcavityMouthWidth float64

	// SimplifyTolerance is the area-fraction tolerance for area-bounded
	// simplification (spec.md §4.C.3): a vertex is removed only if
	// doing so changes the ring's area by less than this fraction of
	// the original area, and only in the direction that grows the
	// ring, never shrinks it.
	SimplifyTolerance float64

	// Inflate is the optional non-negative buffer distance
	// (min_item_separation, spec.md §6) applied by offsetting every
	// edge outward along its normal. Zero disables it.
	Inflate float64
}

// Preprocess runs the full preprocessing pipeline from spec.md §4.C in
// order: degenerate-edge elimination, concavity pruning, area-bounded
// simplification, (if configured) separation inflation, and finally
// orientation normalization in NewShape. It always expands or preserves the original
// footprint, never shrinks it, so every simplification is a
// conservative over-approximation of the input hazard.
func Preprocess(exterior Ring, holes []Ring, cfg PreprocessConfig) (*Shape, error) {
	ext := removeDegenerateEdges(exterior, cfg.Tolerance)
	if cfg.ConcavityMouthWidth > 0 {
		ext = pruneNarrowConcavities(ext, cfg.ConcavityMouthWidth, cfg.Tolerance)
	}
	if cfg.SimplifyTolerance > 0 {
		ext = simplifyAreaBounded(ext, cfg.SimplifyTolerance)
	}
	if cfg.Inflate > 0 {
		ext = inflate(ext, cfg.Inflate)
	}

	outHoles := make([]Ring, len(holes))
	for i, h := range holes {
		hr := removeDegenerateEdges(h, cfg.Tolerance)
		if cfg.SimplifyTolerance > 0 {
			hr = simplifyAreaBounded(hr, cfg.SimplifyTolerance)
		}
		if cfg.Inflate > 0 {
			// A hole is free space inside the hazard, so conservative
			// over-approximation of the hazard means shrinking the
			// hole's ring toward its centroid-facing normal — that is,
			// inflating it in the opposite sense of the exterior.
			hr = inflate(hr, -cfg.Inflate)
		}
		outHoles[i] = hr
	}

	return NewShape(ext, outHoles, cfg.Tolerance)
}

// removeDegenerateEdges drops zero-length edges and collinear vertices
// whose inner angle is within tol.AngleEpsilon of pi radians
// (spec.md §4.C.1).
func removeDegenerateEdges(ring Ring, tol Tolerance) Ring {
	if len(ring) < 3 {
		return ring
	}
	out := make(Ring, 0, len(ring))
	n := len(ring)
	for i := 0; i < n; i++ {
		prev := ring[(i-1+n)%n]
		cur := ring[i]
		next := ring[(i+1)%n]

		if cur.Dist(next) <= tol.AbsEpsilon {
			continue // zero-length edge ahead of cur
		}
		if isCollinear(prev, cur, next, tol) {
			continue // cur sits on the straight line from prev to next
		}
		out = append(out, cur)
	}
	if len(out) < 3 {
		return ring // pruning would degenerate the ring; keep as-is
	}
	return out
}

// isCollinear reports whether the interior angle at b, formed by a-b-c,
// is within tol.AngleEpsilon radians of pi (i.e. b is a straight-line
// pass-through vertex).
func isCollinear(a, b, c Point, tol Tolerance) bool {
	u := a.Sub(b)
	v := c.Sub(b)
	un, vn := u.Norm(), v.Norm()
	if un == 0 || vn == 0 {
		return true
	}
	cosAngle := u.Dot(v) / (un * vn)
	if cosAngle < -1 {
		cosAngle = -1
	} else if cosAngle > 1 {
		cosAngle = 1
	}
	angle := math.Acos(cosAngle)
	return math.Abs(math.Pi-angle) <= tol.AngleEpsilon
}

// pruneNarrowConcavities removes concave runs whose bracketing chord
// (the straight line between the vertices immediately before and after
// the concave run) is shorter than minMouth. Removing a concavity
// means replacing the run with that chord directly, which always
// grows the ring's area/footprint, keeping the result a conservative
// over-approximation (spec.md §4.C.2 — lossy by design).
func pruneNarrowConcavities(ring Ring, minMouth float64, tol Tolerance) Ring {
	if len(ring) < 4 {
		return ring
	}
	n := len(ring)
	signConvex := 1
	if !ring.IsCCW() {
		signConvex = -1
	}

	out := make(Ring, 0, len(ring))
	i := 0
	for i < n {
		cur := ring[i]
		prev := ring[(i-1+n)%n]
		next := ring[(i+1)%n]
		if Sign(prev, cur, next, tol)*signConvex < 0 {
			// cur is concave: look for where the concave run ends.
			j := i
			for {
				jn := (j + 1) % n
				a := ring[(j-1+n)%n]
				b := ring[j]
				c := ring[jn]
				if Sign(a, b, c, tol)*signConvex >= 0 {
					break
				}
				j = jn
				if j == i {
					break // entire ring is concave; nothing to prune
				}
			}
			// j is now the first non-concave vertex after the run.
			mouthStart := ring[(i-1+n)%n]
			mouthEnd := ring[j]
			if mouthStart.Dist(mouthEnd) < minMouth {
				out = append(out, mouthStart)
				if j <= i {
					break // the run wrapped past the end of the ring
				}
				i = j
				continue
			}
		}
		out = append(out, cur)
		i++
	}
	if len(out) < 3 {
		return ring
	}
	return dedupAdjacent(out, tol)
}

func dedupAdjacent(ring Ring, tol Tolerance) Ring {
	out := make(Ring, 0, len(ring))
	for _, p := range ring {
		if len(out) > 0 && out[len(out)-1].Dist(p) <= tol.AbsEpsilon {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && out[0].Dist(out[len(out)-1]) <= tol.AbsEpsilon {
		out = out[:len(out)-1]
	}
	return out
}

// simplifyAreaBounded iteratively removes the vertex whose removal
// changes the ring's area least, stopping once the cheapest remaining
// removal would change the area by more than tolerance times the
// original area. Only reflex (or collinear) vertices are candidates, so
// replacing one with the chord between its neighbors can only grow the
// ring, never shrink it (spec.md §4.C.3).
func simplifyAreaBounded(ring Ring, tolerance float64) Ring {
	if len(ring) <= 3 {
		return ring
	}
	original := ring.Area()
	if original == 0 {
		return ring
	}
	ccw := ring.IsCCW()
	budget := tolerance * original
	pts := append(Ring(nil), ring...)

	for len(pts) > 3 {
		n := len(pts)
		bestIdx := -1
		bestCost := math.Inf(1)
		for i := 0; i < n; i++ {
			prev := pts[(i-1+n)%n]
			cur := pts[i]
			next := pts[(i+1)%n]
			// Dropping a convex vertex would cut its corner off.
			if turn := cur.Sub(prev).Cross(next.Sub(prev)); turn != 0 && (turn > 0) == ccw {
				continue
			}
			cost := triangleArea(prev, cur, next)
			if cost < bestCost {
				bestCost = cost
				bestIdx = i
			}
		}
		if bestCost > budget {
			break
		}
		pts = append(pts[:bestIdx], pts[bestIdx+1:]...)
	}
	return pts
}

func triangleArea(a, b, c Point) float64 {
	area := b.Sub(a).Cross(c.Sub(a)) / 2
	if area < 0 {
		return -area
	}
	return area
}

// inflate offsets every edge of the ring outward along its normal by
// distance, then reconnects the offset edges at their new
// intersections. A negative distance insets the ring instead (used to
// keep a hole a conservative over-approximation of forbidden space
// when growing the hazard as a whole).
func inflate(ring Ring, distance float64) Ring {
	n := len(ring)
	if n < 3 || distance == 0 {
		return ring
	}
	sign := 1.0
	if !ring.IsCCW() {
		sign = -1.0
	}

	offsetEdge := func(a, b Point) (Point, Point) {
		dir := b.Sub(a).Normalize()
		normal := Point{X: dir.Y, Y: -dir.X}.Mul(sign * distance)
		return a.Add(normal), b.Add(normal)
	}

	out := make(Ring, 0, n)
	for i := 0; i < n; i++ {
		aPrev, bPrev := offsetEdge(ring[(i-1+n)%n], ring[i])
		aCur, bCur := offsetEdge(ring[i], ring[(i+1)%n])
		if p, ok := lineIntersection(aPrev, bPrev, aCur, bCur); ok {
			out = append(out, p)
		} else {
			out = append(out, bPrev)
		}
	}
	return out
}

// lineIntersection returns the intersection of infinite lines p1p2 and
// p3p4, or ok=false if they are (numerically) parallel.
func lineIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1.Cross(d2)
	if denom == 0 {
		return Point{}, false
	}
	t := p3.Sub(p1).Cross(d2) / denom
	return p1.Add(d1.Mul(t)), true
}
