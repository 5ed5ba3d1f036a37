package covreach

import "errors"

// Sentinel errors for the covreach package.
var (
	// ErrNilNode names a nil node produced by expansion. Run does not
	// return it: graph operations on a nil node report
	// subsumption.ErrNilNode instead.
	ErrNilNode = errors.New("covreach: nil node produced by expansion")
)
