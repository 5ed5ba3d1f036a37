package dbm

import "errors"

// Sentinel errors for the dbm package. All algorithms return these via
// errors.Is-compatible wrapping; none of them panic on caller-triggered
// conditions. Mirrors the sentinel-error discipline of
// github.com/katalvlaran/lvlath's matrix package (matrix/errors.go).
var (
	// ErrBadDimension is returned when a non-positive dimension is requested.
	ErrBadDimension = errors.New("dbm: dimension must be > 0")

	// ErrDimensionMismatch is returned when two DBMs of different dimension
	// are combined (e.g. IsLE, IsALULe, IsAMLe).
	ErrDimensionMismatch = errors.New("dbm: dimension mismatch")

	// ErrOutOfRange is returned when a clock index is outside [0, dim).
	ErrOutOfRange = errors.New("dbm: clock index out of range")

	// ErrBoundVectorLength is returned when a clock-bound vector (M, or the
	// L/U pair) does not have exactly dim entries.
	ErrBoundVectorLength = errors.New("dbm: bound vector length mismatch")
)
