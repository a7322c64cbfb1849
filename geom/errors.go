package geom

import "errors"

// Sentinel errors for the "invalid geometry" taxonomy entry: these are
// fatal at load time. The engine refuses to build a Shape or Ring that
// trips any of them rather than register something it cannot reason
// about correctly.
var (
	// ErrTooFewVertices reports a ring with fewer than 3 vertices.
	ErrTooFewVertices = errors.New("geom: ring must have at least 3 vertices")
	// ErrNonFiniteCoordinate reports a NaN or infinite coordinate.
	ErrNonFiniteCoordinate = errors.New("geom: coordinate is not finite")
	// ErrZeroArea reports a ring whose signed area is (numerically) zero.
	ErrZeroArea = errors.New("geom: ring has zero area")
	// ErrSelfIntersecting reports a ring with two non-adjacent edges that cross.
	ErrSelfIntersecting = errors.New("geom: ring is self-intersecting")
	// ErrHoleOutsideExterior reports a hole ring not contained by the exterior ring.
	ErrHoleOutsideExterior = errors.New("geom: hole lies outside the exterior ring")
)
