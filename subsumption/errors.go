package subsumption

import "errors"

// Sentinel errors for the subsumption package.
var (
	// ErrNilNode is returned when a nil *Node is passed to a graph
	// operation.
	ErrNilNode = errors.New("subsumption: nil node")

	// ErrNodeNotFound is returned when an operation references a node not
	// present in the graph.
	ErrNodeNotFound = errors.New("subsumption: node not found")

	// ErrEmptyProjection is returned by CoverSyncInclusion when
	// synchronizing an offset-DBM to project its synchronous zone yields
	// the empty zone.
	ErrEmptyProjection = errors.New("subsumption: empty synchronous projection")
)
