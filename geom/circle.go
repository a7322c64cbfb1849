package geom

// Circle is a center point and a non-negative radius. It backs both
// the surrogate poles (component D) and disks queried directly against
// the quadtree (component E's query_disk).
type Circle struct {
	Center Point
	Radius float64
}

// Bound returns the axis-aligned bounding rectangle of the circle.
func (c Circle) Bound() Rect {
	return Rect{
		X: intervalAround(c.Center.X, c.Radius),
		Y: intervalAround(c.Center.Y, c.Radius),
	}
}

// ContainsPoint reports whether p lies within the closed disk.
func (c Circle) ContainsPoint(p Point) bool {
	return c.Center.Dist2(p) <= c.Radius*c.Radius
}

// DisjointFrom reports whether c and o do not overlap, not even at the
// boundary. Used by the surrogate builder to keep poles pairwise
// disjoint (spec.md §4.D, §8 property 5).
func (c Circle) DisjointFrom(o Circle) bool {
	rsum := c.Radius + o.Radius
	return c.Center.Dist2(o.Center) > rsum*rsum
}
