// Package sink implements the graph sink spec.md §1 lists as one of the
// three external interfaces the core consumes: a destination for the
// final subsumption graph, in either DOT (Graphviz) or a flat "raw" edge
// listing (spec.md §6 "-f dot / raw").
//
// Both writers are read-only over subsumption.Graph: they call its
// exported AllNodes/Outgoing accessors and never mutate it, matching
// spec.md §5's "no operation blocks on I/O except the optional final
// graph output".
package sink
