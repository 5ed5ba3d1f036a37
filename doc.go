// Package tchecker implements the symbolic covering-reachability engine
// at the core of a network-of-timed-automata model checker: zone-based
// (and asynchronous, per-reference-clock) successor computation,
// extrapolation for termination, a pool-allocated subsumption graph, and
// the partial-order-reduction source-set constructions that plug into
// it.
//
// Parsing of the input model, the front-end FSM/TA representation, and
// output formatting beyond a DOT/raw graph sink are out of scope; the
// packages below interact only through the interfaces that scope
// describes.
//
// Packages, leaves first:
//
//	dbm/         difference bound matrices: canonical form, abstraction, extrapolation
//	offsetdbm/   offset-DBMs for the asynchronous (per-reference-clock) semantics
//	zone/        Zone/AsyncZone: DBMs wrapped with Semantics.Next's guard/reset/invariant pipeline
//	intstmt/     bytecode VM for integer-variable guards and statements
//	model/       the compiled system: processes, locations, edges, synchronization vectors
//	ts/          transition-system layers: TA, ZG, AZG, AZG-sync-zones
//	pool/        slab-allocated, reference-counted node records with background GC
//	subsumption/ the covering graph: hash-bucketed nodes, cover predicates, actual/abstract edges
//	por/         partial-order-reduction policies wrapping a TS layer
//	covreach/    the covering-reachability algorithm itself
//	label/       accepting label-set matching against a discrete state
//	sink/        DOT and raw graph output
//	cmd/tchecker/ command-line entry point
package tchecker
