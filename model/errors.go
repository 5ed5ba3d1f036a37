package model

import "errors"

// Sentinel errors for the model package, following lvlath's core/matrix
// convention (errors.Is-matched, never panicking on caller-triggered
// conditions).
var (
	// ErrEmptyName is returned when a process, location or event is given
	// an empty name.
	ErrEmptyName = errors.New("model: empty name")

	// ErrDuplicateName is returned when two processes, or two locations
	// within one process, or two events, share a name.
	ErrDuplicateName = errors.New("model: duplicate name")

	// ErrUnknownProcess is returned when a synchronization vector or edge
	// references a process that was not declared.
	ErrUnknownProcess = errors.New("model: unknown process")

	// ErrUnknownLocation is returned when an edge references a location
	// not declared within its process.
	ErrUnknownLocation = errors.New("model: unknown location")

	// ErrUnknownEvent is returned when an edge or synchronization vector
	// references an event that was not declared.
	ErrUnknownEvent = errors.New("model: unknown event")

	// ErrNoInitialLocation is returned when a process declares no initial
	// location.
	ErrNoInitialLocation = errors.New("model: process has no initial location")

	// ErrEmptySyncVector is returned when a synchronization vector has no
	// entries.
	ErrEmptySyncVector = errors.New("model: synchronization vector has no entries")

	// ErrDuplicateProcessInSync is returned when a synchronization vector
	// names the same process twice.
	ErrDuplicateProcessInSync = errors.New("model: process appears twice in synchronization vector")

	// ErrNoServerProcess is returned by ClientServer when the named server
	// process does not exist.
	ErrNoServerProcess = errors.New("model: no such server process")

	// ErrNotClientServer is a model-structural refusal (spec.md §7): the
	// system shape does not satisfy the client/server predicate required
	// by a cs-family POR policy.
	ErrNotClientServer = errors.New("model: system is not client/server shaped")

	// ErrNotGlobalLocal is a model-structural refusal: the system shape
	// does not satisfy the global/local predicate required by the gl
	// POR policy.
	ErrNotGlobalLocal = errors.New("model: system is not global/local shaped")
)
