package geom

import "math"

// Sign reports the orientation of the ordered triple (a, b, c): +1 if
// it turns counter-clockwise, -1 if clockwise, 0 if the three points
// are (numerically) collinear. It is the single primitive every other
// predicate in this file is built from, so its epsilon policy is the
// engine's one source of truth for "is this actually zero".
//
// The cross product (b-a) x (c-a) is computed directly; when its
// magnitude is at or below a bound derived from the operands'
// magnitudes and AbsEpsilon, the result is reported as collinear
// rather than trusting the sign of a near-zero float. This avoids
// dividing by a near-zero determinant anywhere downstream.
func Sign(a, b, c Point, tol Tolerance) int {
	ab := b.Sub(a)
	ac := c.Sub(a)
	cross := ab.Cross(ac)

	// A scale-aware bound: the cross product of two vectors of length
	// L has rounding error on the order of L^2 * epsilon, so the bound
	// grows with the operand magnitudes rather than staying fixed.
	scale := ab.Norm()*ac.Norm() + 1
	bound := tol.AbsEpsilon * scale
	if cross > bound {
		return 1
	}
	if cross < -bound {
		return -1
	}
	return 0
}

// EdgesCollide reports whether edges e1 and e2 collide: proper
// crossing, collinear overlap, and shared-endpoint touches are all
// collisions (spec.md §4.B). Any shared endpoint is reported as a
// collision; no exception is made for segments that meet only at a
// shared vertex, whichever side their other endpoints lie on.
func EdgesCollide(e1, e2 Edge, tol Tolerance) bool {
	a, b, c, d := e1.A, e1.B, e2.A, e2.B

	s1 := Sign(a, b, c, tol)
	s2 := Sign(a, b, d, tol)
	s3 := Sign(c, d, a, tol)
	s4 := Sign(c, d, b, tol)

	if s1 != s2 && s3 != s4 {
		// Proper crossing: c and d are on opposite sides of ab, and a
		// and b are on opposite sides of cd.
		return true
	}

	// Degenerate / touching cases: fall back to boundary containment,
	// which also handles collinear overlap.
	if s1 == 0 && pointOnSegment(c, a, b, tol) {
		return true
	}
	if s2 == 0 && pointOnSegment(d, a, b, tol) {
		return true
	}
	if s3 == 0 && pointOnSegment(a, c, d, tol) {
		return true
	}
	if s4 == 0 && pointOnSegment(b, c, d, tol) {
		return true
	}
	return false
}

// pointOnSegment reports whether p lies on the closed segment ab,
// given that p is already known (or suspected) to be collinear with
// a and b.
func pointOnSegment(p, a, b Point, tol Tolerance) bool {
	if Sign(a, b, p, tol) != 0 {
		return false
	}
	r := RectFromPoints(a, b).Expanded(tol.AbsEpsilon)
	return r.ContainsPoint(p)
}

// RectsCollide reports whether two axis-aligned rectangles overlap,
// including edge/corner touches (spec.md §4.B rect×rect).
func RectsCollide(a, b Rect) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	return a.X.Intersects(b.X) && a.Y.Intersects(b.Y)
}

// EdgeRectCollide reports whether edge e intersects rectangle r,
// counting an endpoint inside r as a collision (spec.md §4.B
// edge×rect). It trivially rejects on bounding-box overlap and then
// clips the segment against the rectangle using the Liang-Barsky
// parametric algorithm.
func EdgeRectCollide(e Edge, r Rect, tol Tolerance) bool {
	if !RectsCollide(e.Bound(), r) {
		return false
	}
	if r.ContainsPoint(e.A) || r.ContainsPoint(e.B) {
		return true
	}

	d := e.Vector()
	tMin, tMax := 0.0, 1.0

	clip := func(p, q float64) bool {
		if p == 0 {
			// Parallel to this axis: reject if outside on this axis.
			return q >= -tol.AbsEpsilon
		}
		t := q / p
		if p < 0 {
			if t > tMax {
				return false
			}
			if t > tMin {
				tMin = t
			}
		} else {
			if t < tMin {
				return false
			}
			if t < tMax {
				tMax = t
			}
		}
		return true
	}

	if !clip(-d.X, e.A.X-r.X.Lo) || !clip(d.X, r.X.Hi-e.A.X) {
		return false
	}
	if !clip(-d.Y, e.A.Y-r.Y.Lo) || !clip(d.Y, r.Y.Hi-e.A.Y) {
		return false
	}
	return tMin <= tMax
}

// CircleEdgeCollide reports whether circle c overlaps edge e, counting
// an endpoint inside the disk as a collision (spec.md §4.B
// circle×edge). It compares squared distances throughout to avoid an
// unnecessary square root.
func CircleEdgeCollide(c Circle, e Edge) bool {
	d := e.Vector()
	len2 := d.Norm2()
	if len2 == 0 {
		return c.ContainsPoint(e.A)
	}
	t := c.Center.Sub(e.A).Dot(d) / len2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := e.A.Add(d.Mul(t))
	return c.Center.Dist2(closest) <= c.Radius*c.Radius
}

// CircleRectCollide reports whether circle c overlaps rectangle r, by
// clamping the circle's center to the rectangle and comparing the
// squared distance to the radius (spec.md §4.B circle×rect).
func CircleRectCollide(c Circle, r Rect) bool {
	clampedX := clamp(c.Center.X, r.X.Lo, r.X.Hi)
	clampedY := clamp(c.Center.Y, r.Y.Lo, r.Y.Hi)
	dx := c.Center.X - clampedX
	dy := c.Center.Y - clampedY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PointInRing classifies p against the ring using ray casting: a
// horizontal ray from p is walked against every edge of the ring,
// counting crossings. Vertex grazes (the ray passing exactly through a
// vertex) are the classic failure mode of this algorithm, so on the
// ambiguity signal (an edge endpoint lying exactly on the ray) the cast
// direction is rotated and retried; this never loops more than once in
// practice because re-casting at a different angle almost surely
// avoids every vertex in a finite ring.
func PointInRing(p Point, ring Ring, tol Tolerance) Containment {
	if len(ring) < 3 {
		return Outside
	}
	for _, e := range ring.Edges() {
		if pointOnSegment(p, e.A, e.B, tol) {
			return Boundary
		}
	}

	angles := []float64{0, math.Pi / 7, math.Pi / 11}
	for _, angle := range angles {
		dir := Point{X: math.Cos(angle), Y: math.Sin(angle)}
		if c, ok := castRay(p, dir, ring, tol); ok {
			if c {
				return Inside
			}
			return Outside
		}
	}
	// Exceedingly unlikely: every retry grazed a vertex. Default to the
	// conservative answer.
	return Inside
}

// castRay counts crossings of the ray p + t*dir (t >= 0) against the
// ring's edges. The second return value is false if the ray grazed a
// vertex closely enough that the count might be unreliable, signalling
// the caller to retry with a different direction.
func castRay(p, dir Point, ring Ring, tol Tolerance) (inside bool, ok bool) {
	crossings := 0
	for _, e := range ring.Edges() {
		ay := e.A.Sub(p).Cross(dir)
		by := e.B.Sub(p).Cross(dir)
		// Vertex graze: an endpoint lies exactly on the ray line.
		if math.Abs(ay) <= tol.AbsEpsilon || math.Abs(by) <= tol.AbsEpsilon {
			return false, false
		}
		if (ay > 0) == (by > 0) {
			continue // both endpoints on the same side of the ray line
		}
		// The edge crosses the ray's line; check it crosses the
		// forward half (t >= 0), i.e. that the intersection is ahead
		// of p along dir.
		t := ay / (ay - by)
		hit := e.A.Lerp(e.B, t)
		if hit.Sub(p).Dot(dir) > 0 {
			crossings++
		}
	}
	return crossings%2 == 1, true
}
