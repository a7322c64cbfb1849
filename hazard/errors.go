package hazard

import "errors"

var (
	// ErrStaleKey is returned when a key refers to a slot that has been
	// deregistered and possibly reused under a new generation.
	ErrStaleKey = errors.New("hazard: key refers to a removed or reused slot")
)
