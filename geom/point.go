package geom

import (
	"math"

	"github.com/irregularpack/cde/r2"
)

// Point is a location in the plane. The CDE never needs a point type
// distinct from the vector arithmetic in r2, so Point is simply that
// vector under the name the rest of the spec uses.
type Point = r2.Vector

// Containment is the tri-state result of a point-in-ring test.
type Containment int

const (
	// Outside means the point is strictly outside the ring.
	Outside Containment = iota
	// Boundary means the point lies exactly on an edge or vertex of the ring.
	Boundary
	// Inside means the point is strictly inside the ring.
	Inside
)

func (c Containment) String() string {
	switch c {
	case Outside:
		return "outside"
	case Boundary:
		return "boundary"
	case Inside:
		return "inside"
	default:
		return "invalid"
	}
}

// Tolerance bundles the floating-point slack every predicate in this
// package is parameterized by. A single Tolerance value should be
// shared by every Shape built for the same bin, so that two hazards
// are judged by the same yardstick.
type Tolerance struct {
	// AbsEpsilon is the absolute distance/area epsilon. The default
	// recommended by spec.md §4.A is 1e-9 times the bin diagonal.
	AbsEpsilon float64
	// AngleEpsilon is the angular slack (radians) used by degenerate
	// collinear-triple elimination in the preprocessor.
	AngleEpsilon float64
}

// DefaultTolerance returns a Tolerance scaled to a bin whose diagonal is
// binDiagonal units long, per spec.md §4.A's default of 1e-9 × diagonal.
func DefaultTolerance(binDiagonal float64) Tolerance {
	return Tolerance{
		AbsEpsilon:   1e-9 * binDiagonal,
		AngleEpsilon: 1e-6,
	}
}

// IsFinite reports whether p has two finite coordinates.
func IsFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
