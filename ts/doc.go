// Package ts implements the layered transition-system contract of spec.md
// §4.4: a bottom TA (discrete) layer, wrapped by a ZG (zone-graph) layer
// or an AZG (asynchronous zone-graph) family, each exposing the same three
// operations — Initial, OutgoingEdges, Next — so the
// covreach and por packages can be written once against the TS interface
// and plugged with whichever concrete layer the command line selects
// (spec.md §6 flag `-m`). Initial returns states that are already
// initialized; there is no separate Initialize operation.
//
// A vedge (spec.md §3 "grouped synchronized edges") is the unit of
// transition: either a single process firing an edge whose event is not
// named by any synchronization vector, or the tuple of edges a
// synchronization vector fires together. OutgoingEdges yields the finite
// set of vedges enabled at a discrete state; Next computes the symbolic
// successor for one of them.
package ts
