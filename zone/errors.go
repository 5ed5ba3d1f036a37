package zone

import "errors"

// ErrDimensionMismatch is returned when two zones of different dimension
// are compared or combined.
var ErrDimensionMismatch = errors.New("zone: dimension mismatch")
