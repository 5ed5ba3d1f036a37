// Package subsumption implements the covering-reachability algorithm's
// node table and edge graph (spec.md §4.7 "Subsumption graph"): a
// hash-indexed table of Node records bucketed by a discrete signature
// key, with exact and abstraction-modulo-(M,LU) cover predicates used to
// prune the explored state space, and ACTUAL/ABSTRACT edges recording why
// each node entered the graph.
//
// Grounded on github.com/katalvlaran/lvlath's core.Graph (core/types.go,
// core/methods.go): one sync.RWMutex guarding the node table, a second
// guarding edges/adjacency, matching its "separate locks for separate
// mutable structures" convention.
package subsumption
