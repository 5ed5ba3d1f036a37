package pool

import "errors"

// Sentinel errors for the pool package.
var (
	// ErrStopped names an allocator that has been stopped. No function in
	// this package returns it: Alloc has no error result and keeps
	// allocating after Stop.
	ErrStopped = errors.New("pool: allocator stopped")

	// ErrNegativeRefCount is returned by Release when a record's
	// reference count would drop below zero, indicating a double-release.
	ErrNegativeRefCount = errors.New("pool: reference count dropped below zero")
)
