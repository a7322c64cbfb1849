package geom

import "testing"

func TestRemoveDegenerateEdgesDropsCollinearVertex(t *testing.T) {
	ring := Ring{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	out := removeDegenerateEdges(ring, tol)
	if len(out) != 4 {
		t.Fatalf("expected the straight-through vertex to be dropped, got %d vertices: %v", len(out), out)
	}
}

func TestInflateGrowsArea(t *testing.T) {
	square := Ring{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	grown := inflate(square, 1)
	if grown.Area() <= square.Area() {
		t.Errorf("inflate(1) should grow area, got %v <= %v", grown.Area(), square.Area())
	}
}

func TestInflateNegativeShrinksArea(t *testing.T) {
	square := Ring{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	shrunk := inflate(square, -1)
	if shrunk.Area() >= square.Area() {
		t.Errorf("inflate(-1) should shrink area, got %v >= %v", shrunk.Area(), square.Area())
	}
}

func TestSimplifyAreaBoundedStaysWithinBudget(t *testing.T) {
	// A near-collinear bump should be removed under a small budget.
	ring := Ring{
		{X: 0, Y: 0}, {X: 5, Y: 0.01}, {X: 10, Y: 0},
		{X: 10, Y: 10}, {X: 0, Y: 10},
	}
	original := ring.Area()
	out := simplifyAreaBounded(ring, 0.01)
	if len(out) >= len(ring) {
		t.Fatalf("expected simplification to remove a vertex, got %d vertices", len(out))
	}
	diff := out.Area() - original
	if diff < 0 {
		diff = -diff
	}
	if diff > 0.01*original {
		t.Errorf("simplification exceeded its area budget: diff %v, budget %v", diff, 0.01*original)
	}
}

func TestPruneNarrowConcavitiesFillsNarrowNotch(t *testing.T) {
	// A thin slot cut into the top edge of a square.
	ring := Ring{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10},
		{X: 6, Y: 10}, {X: 6, Y: 5}, {X: 4, Y: 5}, {X: 4, Y: 10},
		{X: 0, Y: 10},
	}
	before := ring.Area()
	out := pruneNarrowConcavities(ring, 5, tol)
	if out.Area() <= before {
		t.Errorf("pruning should grow the area by filling the notch, got %v <= %v", out.Area(), before)
	}
}

func TestPreprocessProducesValidShape(t *testing.T) {
	ring := Ring{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	cfg := PreprocessConfig{Tolerance: tol, SimplifyTolerance: 0.01}
	s, err := Preprocess(ring, nil, cfg)
	if err != nil {
		t.Fatalf("Preprocess: %v", err)
	}
	if s.Area() <= 0 {
		t.Error("preprocessed shape should have positive area")
	}
}
