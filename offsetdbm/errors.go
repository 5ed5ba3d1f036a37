package offsetdbm

import "errors"

// Sentinel errors for the offsetdbm package, following the same
// errors.Is-friendly discipline as dbm and lvlath's core/matrix packages.
var (
	// ErrBadRefcount is returned when refcount is not in [1, dim].
	ErrBadRefcount = errors.New("offsetdbm: refcount must be in [1, dim]")

	// ErrBadRefmap is returned when refmap has the wrong length or maps an
	// offset variable to an index that is not a reference clock.
	ErrBadRefmap = errors.New("offsetdbm: refmap invalid")

	// ErrOutOfRange is returned when a clock/offset index is outside the
	// matrix's dimension.
	ErrOutOfRange = errors.New("offsetdbm: index out of range")

	// ErrNotSynchronized is returned by ToDBM when called on a non-
	// synchronized offset-DBM (spec.md §4.2 "to_dbm" precondition).
	ErrNotSynchronized = errors.New("offsetdbm: not synchronized")

	// ErrBadSpread is returned when a negative spread bound is requested.
	ErrBadSpread = errors.New("offsetdbm: spread must be >= 0")
)
