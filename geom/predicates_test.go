package geom

import "testing"

var tol = DefaultTolerance(100)

func TestSign(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 1, Y: 0}
	tests := []struct {
		c    Point
		want int
	}{
		{Point{X: 1, Y: 1}, 1},
		{Point{X: 1, Y: -1}, -1},
		{Point{X: 2, Y: 0}, 0},
	}
	for _, test := range tests {
		if got := Sign(a, b, test.c, tol); got != test.want {
			t.Errorf("Sign(%v, %v, %v) = %d, want %d", a, b, test.c, got, test.want)
		}
	}
}

func TestEdgesCollideProperCrossing(t *testing.T) {
	e1 := Edge{A: Point{X: 0, Y: 0}, B: Point{X: 10, Y: 10}}
	e2 := Edge{A: Point{X: 0, Y: 10}, B: Point{X: 10, Y: 0}}
	if !EdgesCollide(e1, e2, tol) {
		t.Error("crossing edges should collide")
	}
}

func TestEdgesCollideSeparate(t *testing.T) {
	e1 := Edge{A: Point{X: 0, Y: 0}, B: Point{X: 1, Y: 0}}
	e2 := Edge{A: Point{X: 0, Y: 5}, B: Point{X: 1, Y: 5}}
	if EdgesCollide(e1, e2, tol) {
		t.Error("parallel separated edges should not collide")
	}
}

func TestEdgesCollideSharedEndpoint(t *testing.T) {
	e1 := Edge{A: Point{X: 0, Y: 0}, B: Point{X: 5, Y: 0}}
	e2 := Edge{A: Point{X: 5, Y: 0}, B: Point{X: 5, Y: 5}}
	if !EdgesCollide(e1, e2, tol) {
		t.Error("edges sharing an endpoint should collide")
	}
}

func TestRectsCollide(t *testing.T) {
	a := RectFromPoints(Point{X: 0, Y: 0}, Point{X: 10, Y: 10})
	b := RectFromPoints(Point{X: 10, Y: 10}, Point{X: 20, Y: 20})
	if !RectsCollide(a, b) {
		t.Error("rects touching at a corner should collide")
	}
	c := RectFromPoints(Point{X: 11, Y: 11}, Point{X: 20, Y: 20})
	if RectsCollide(a, c) {
		t.Error("disjoint rects should not collide")
	}
}

func TestEdgeRectCollide(t *testing.T) {
	r := RectFromPoints(Point{X: 0, Y: 0}, Point{X: 10, Y: 10})
	inside := Edge{A: Point{X: 2, Y: 2}, B: Point{X: 8, Y: 8}}
	if !EdgeRectCollide(inside, r, tol) {
		t.Error("an edge wholly inside the rect should collide")
	}
	through := Edge{A: Point{X: -5, Y: 5}, B: Point{X: 15, Y: 5}}
	if !EdgeRectCollide(through, r, tol) {
		t.Error("an edge passing through the rect should collide")
	}
	outside := Edge{A: Point{X: 20, Y: 20}, B: Point{X: 30, Y: 30}}
	if EdgeRectCollide(outside, r, tol) {
		t.Error("a far edge should not collide")
	}
}

func TestCircleEdgeCollide(t *testing.T) {
	e := Edge{A: Point{X: 0, Y: 0}, B: Point{X: 10, Y: 0}}
	near := Circle{Center: Point{X: 5, Y: 1}, Radius: 2}
	if !CircleEdgeCollide(near, e) {
		t.Error("a circle overlapping the edge should collide")
	}
	far := Circle{Center: Point{X: 5, Y: 10}, Radius: 1}
	if CircleEdgeCollide(far, e) {
		t.Error("a far circle should not collide")
	}
}

func TestCircleRectCollide(t *testing.T) {
	r := RectFromPoints(Point{X: 0, Y: 0}, Point{X: 10, Y: 10})
	touching := Circle{Center: Point{X: -1, Y: 5}, Radius: 1}
	if !CircleRectCollide(touching, r) {
		t.Error("a circle touching the rect edge should collide")
	}
	far := Circle{Center: Point{X: -10, Y: -10}, Radius: 1}
	if CircleRectCollide(far, r) {
		t.Error("a far circle should not collide")
	}
}

func TestPointInRingSquare(t *testing.T) {
	ring := Ring{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	tests := []struct {
		p    Point
		want Containment
	}{
		{Point{X: 5, Y: 5}, Inside},
		{Point{X: 20, Y: 20}, Outside},
		{Point{X: 0, Y: 5}, Boundary},
		{Point{X: 10, Y: 10}, Boundary},
	}
	for _, test := range tests {
		if got := PointInRing(test.p, ring, tol); got != test.want {
			t.Errorf("PointInRing(%v) = %v, want %v", test.p, got, test.want)
		}
	}
}

func TestPointInRingWithHoleLikeConcavity(t *testing.T) {
	// A C-shaped ring (a square with a notch cut from the right side).
	ring := Ring{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 4}, {X: 4, Y: 4},
		{X: 4, Y: 6}, {X: 10, Y: 6}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	if got := PointInRing(Point{X: 8, Y: 5}, ring, tol); got != Outside {
		t.Errorf("point in the notch should be Outside, got %v", got)
	}
	if got := PointInRing(Point{X: 2, Y: 5}, ring, tol); got != Inside {
		t.Errorf("point in the solid part should be Inside, got %v", got)
	}
}
