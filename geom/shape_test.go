package geom

import "testing"

func squareRing(cx, cy, half float64) Ring {
	return Ring{
		{X: cx - half, Y: cy - half}, {X: cx + half, Y: cy - half},
		{X: cx + half, Y: cy + half}, {X: cx - half, Y: cy + half},
	}
}

func TestNewShapeNormalizesOrientation(t *testing.T) {
	cw := squareRing(5, 5, 5).Reversed()
	s, err := NewShape(cw, nil, tol)
	if err != nil {
		t.Fatalf("NewShape: %v", err)
	}
	if !s.Exterior.IsCCW() {
		t.Error("exterior should be normalized to CCW")
	}
}

func TestNewShapeRejectsHoleOutsideExterior(t *testing.T) {
	ext := squareRing(5, 5, 5)
	hole := squareRing(50, 50, 2)
	_, err := NewShape(ext, []Ring{hole}, tol)
	if err != ErrHoleOutsideExterior {
		t.Errorf("got %v, want ErrHoleOutsideExterior", err)
	}
}

func TestShapeContainsWithHole(t *testing.T) {
	ext := squareRing(5, 5, 5)
	hole := squareRing(5, 5, 1)
	s, err := NewShape(ext, []Ring{hole}, tol)
	if err != nil {
		t.Fatalf("NewShape: %v", err)
	}
	if got := s.Contains(Point{X: 5, Y: 5}, tol); got != Outside {
		t.Errorf("point inside the hole should be Outside, got %v", got)
	}
	if got := s.Contains(Point{X: 3, Y: 3}, tol); got != Inside {
		t.Errorf("point between hole and exterior should be Inside, got %v", got)
	}
	if got := s.Contains(Point{X: 100, Y: 100}, tol); got != Outside {
		t.Errorf("point outside exterior should be Outside, got %v", got)
	}
}

func TestShapeTransformPreservesArea(t *testing.T) {
	s, err := NewShape(squareRing(0, 0, 5), nil, tol)
	if err != nil {
		t.Fatalf("NewShape: %v", err)
	}
	moved, err := s.Transform(10, -5, 1.2, tol)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if diff := moved.Area() - s.Area(); diff > 1e-6 || diff < -1e-6 {
		t.Errorf("Transform changed area: %v vs %v", moved.Area(), s.Area())
	}
}

func TestShapeNumEdgesCountsHoles(t *testing.T) {
	ext := squareRing(5, 5, 5)
	hole := squareRing(5, 5, 1)
	s, err := NewShape(ext, []Ring{hole}, tol)
	if err != nil {
		t.Fatalf("NewShape: %v", err)
	}
	if s.NumEdges() != 8 {
		t.Errorf("NumEdges() = %d, want 8", s.NumEdges())
	}
}
