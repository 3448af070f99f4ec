package geom

import "errors"

// Sentinel errors for geom constructors.
var (
	// ErrInvalidDiff indicates a displacement violates its geometric class
	// (NearDiff, LinearDiff, ShortLinear, LongLinear or FarDiff).
	ErrInvalidDiff = errors.New("geom: displacement violates its geometric class")
)
