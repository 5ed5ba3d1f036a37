// Package model defines the compiled network-of-timed-automata (NTA) that
// the ts, por and covreach packages consume: processes, locations (with
// initial/final/committed/urgent flags), edges carrying clock and integer
// guards/resets, events, and synchronization vectors (spec.md §3 "Model &
// static analysis", §4.5).
//
// Parsing of a textual system declaration into this structure is out of
// scope (spec.md §1); callers build a System with Builder, the staged
// "Validate → Prepare → Execute → Finalize → Return" constructor pattern
// used throughout github.com/katalvlaran/lvlath's matrix package
// (matrix/builder.go), generalized from graphs to timed-automata networks.
//
// Once built, a System is immutable and its static-analysis maps
// (PureLocal, Mixed, LocationNextSyncs, ProcessEvents, GlobalLocal) are
// computed once and shared by read-only reference; the ClientServer
// predicate takes the server's name and is evaluated on each call.
package model
