package quadtree

import "github.com/irregularpack/cde/geom"

// Mode is a hazard's presence mode (spec.md §3). Both modes treat the
// hazard shape's geometric interior as the forbidden region; they
// differ only in whether the boundary itself is forbidden:
//
//   - Exclusion is closed: the boundary is forbidden too. Used for
//     placed items, so two items may not even touch (spec.md §8 S2).
//   - Enclosure is open: the boundary is not by itself forbidden. Used
//     for holes, quality zones, and (via a hazard shaped as a large
//     rectangle with the bin outline cut out as a hole) the bin
//     boundary itself, so an item may sit exactly flush against an
//     edge without colliding.
//
// See geom.Containment and Mode.Triggers for how a raw point-in-ring
// result is turned into a collision decision.
type Mode int

const (
	// Enclosure hazards forbid only their strict interior.
	Enclosure Mode = iota
	// Exclusion hazards forbid their interior and their boundary.
	Exclusion
)

func (m Mode) String() string {
	if m == Exclusion {
		return "exclusion"
	}
	return "enclosure"
}

// Triggers reports whether a raw point-in-ring result counts as a
// collision under this mode (spec.md §4.B's boundary bucketing:
// boundary counts as "inside" for exclusion hazards, as "outside" for
// enclosure hazards — which, combined with "Entire means collision
// wherever the point lands", resolves to: Exclusion triggers on
// Inside or Boundary; Enclosure triggers only on Inside).
func (m Mode) Triggers(c geom.Containment) bool {
	if m == Exclusion {
		return c == geom.Inside || c == geom.Boundary
	}
	return c == geom.Inside
}
