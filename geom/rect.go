package geom

import (
	"math"

	"github.com/irregularpack/cde/r1"
)

// Rect is an axis-aligned rectangle, stored as independent lo/hi
// intervals on each axis so that the clipping and overlap tests below
// can reuse r1.Interval's arithmetic directly.
type Rect struct {
	X, Y r1.Interval
}

// RectFromPoints returns the smallest Rect containing both points.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		X: r1.Interval{Lo: math.Min(a.X, b.X), Hi: math.Max(a.X, b.X)},
		Y: r1.Interval{Lo: math.Min(a.Y, b.Y), Hi: math.Max(a.Y, b.Y)},
	}
}

// EmptyRect returns the empty rectangle: it contains no points and
// unions with anything to produce that thing unchanged.
func EmptyRect() Rect {
	return Rect{X: r1.EmptyInterval(), Y: r1.EmptyInterval()}
}

// IsEmpty reports whether the rectangle is empty.
func (r Rect) IsEmpty() bool { return r.X.IsEmpty() || r.Y.IsEmpty() }

// Min returns the (x_min, y_min) corner.
func (r Rect) Min() Point { return Point{X: r.X.Lo, Y: r.Y.Lo} }

// Max returns the (x_max, y_max) corner.
func (r Rect) Max() Point { return Point{X: r.X.Hi, Y: r.Y.Hi} }

// Center returns the rectangle's center point.
func (r Rect) Center() Point { return Point{X: r.X.Center(), Y: r.Y.Center()} }

// Width returns x_max - x_min.
func (r Rect) Width() float64 { return r.X.Length() }

// Height returns y_max - y_min.
func (r Rect) Height() float64 { return r.Y.Length() }

// Diagonal returns the length of the rectangle's diagonal, used to
// scale the default geometry tolerance (spec.md §4.A).
func (r Rect) Diagonal() float64 {
	return math.Hypot(r.Width(), r.Height())
}

// Union returns the smallest Rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	return Rect{
		X: r1.Interval{Lo: math.Min(r.X.Lo, o.X.Lo), Hi: math.Max(r.X.Hi, o.X.Hi)},
		Y: r1.Interval{Lo: math.Min(r.Y.Lo, o.Y.Lo), Hi: math.Max(r.Y.Hi, o.Y.Hi)},
	}
}

// AddPoint returns the smallest Rect containing r and p.
func (r Rect) AddPoint(p Point) Rect {
	return r.Union(RectFromPoints(p, p))
}

// ContainsPoint reports whether p lies within the closed rectangle.
func (r Rect) ContainsPoint(p Point) bool {
	return r.X.Contains(p.X) && r.Y.Contains(p.Y)
}

// ContainsRect reports whether o lies entirely within r.
func (r Rect) ContainsRect(o Rect) bool {
	return r.X.ContainsInterval(o.X) && r.Y.ContainsInterval(o.Y)
}

// Expanded returns r padded by margin on every side. A negative margin
// shrinks the rectangle (and may make it empty).
func (r Rect) Expanded(margin float64) Rect {
	return Rect{X: r.X.Expanded(margin), Y: r.Y.Expanded(margin)}
}

func intervalAround(center, radius float64) r1.Interval {
	return r1.Interval{Lo: center - radius, Hi: center + radius}
}

// Quadrants splits r into four equal children in the fixed traversal
// order the quadtree uses everywhere: NW, NE, SW, SE.
func (r Rect) Quadrants() [4]Rect {
	cx, cy := r.X.Center(), r.Y.Center()
	return [4]Rect{
		{X: r1.Interval{Lo: r.X.Lo, Hi: cx}, Y: r1.Interval{Lo: cy, Hi: r.Y.Hi}}, // NW
		{X: r1.Interval{Lo: cx, Hi: r.X.Hi}, Y: r1.Interval{Lo: cy, Hi: r.Y.Hi}}, // NE
		{X: r1.Interval{Lo: r.X.Lo, Hi: cx}, Y: r1.Interval{Lo: r.Y.Lo, Hi: cy}}, // SW
		{X: r1.Interval{Lo: cx, Hi: r.X.Hi}, Y: r1.Interval{Lo: r.Y.Lo, Hi: cy}}, // SE
	}
}
