package por

import "errors"

// Sentinel errors for the por package.
var (
	// ErrPor4Unsupported is the model-structural refusal --source-set por4
	// produces (spec.md §9 Open Question 1): the original source's por4
	// builder never compiled, and this reimplementation does not
	// re-derive it from scratch. The CLI flag is still accepted, per
	// spec.md §6's stable command-line surface.
	ErrPor4Unsupported = errors.New("por: por4 source-set policy is not implemented (original source prototype never compiled)")

	// ErrServerRequired is returned when a server process name is
	// required by a policy's Validate but none was supplied.
	ErrServerRequired = errors.New("por: policy requires --server")

	// ErrUnknownPolicy is returned by By for an unrecognized --source-set
	// value.
	ErrUnknownPolicy = errors.New("por: unknown source-set policy")
)
