package ts

import "errors"

// Sentinel errors for the ts package.
var (
	// ErrNoInitialConfiguration names a model without an initial
	// configuration. No function in this package returns it: TA.Initial
	// returns no state when a process has no initial location, and a
	// single state with an empty location tuple for a system without
	// processes.
	ErrNoInitialConfiguration = errors.New("ts: model has no initial configuration")

	// ErrUnknownSemantics names an unrecognized graph/semantics
	// configuration. No function in this package returns it; the command
	// line rejects such configurations with its own errors.
	ErrUnknownSemantics = errors.New("ts: unrecognized graph/semantics configuration")
)
