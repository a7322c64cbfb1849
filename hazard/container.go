package hazard

import "github.com/irregularpack/cde/geom"

// ContainerShape builds the shape for an Enclosure hazard that models
// "stay inside bin": a rectangle well outside bin's own bound, with
// bin's exterior cut out as a hole. An Enclosure hazard's interior is
// its forbidden region (quadtree.Mode), so registering the result under
// quadtree.Enclosure forbids everything outside bin while leaving bin's
// own boundary touchable, matching spec.md §3's "Enclosure: inside is
// forbidden... bin outline" when read together with the Enclosure/
// Exclusion boundary convention in quadtree.Mode.Triggers. The CDE
// itself never special-cases a "container" hazard; this is purely a
// convenience for callers that want one.
func ContainerShape(bin *geom.Shape, tol geom.Tolerance) (*geom.Shape, error) {
	margin := bin.Bound().Diagonal()
	if margin <= 0 {
		margin = 1
	}
	outer := bin.Bound().Expanded(margin)
	ring := geom.Ring{outer.Min(), {X: outer.Max().X, Y: outer.Min().Y}, outer.Max(), {X: outer.Min().X, Y: outer.Max().Y}}
	return geom.NewShape(ring, []geom.Ring{bin.Exterior}, tol)
}
