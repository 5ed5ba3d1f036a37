// Package covreach implements the covering-reachability algorithm of
// spec.md §4.8: a waiting-set exploration over a ts.TS transition system,
// pruned by a subsumption.Graph's covering predicate, with pluggable BFS/
// DFS waiting policies and per-run statistics.
//
// Grounded on original_source/include/tchecker/algorithms/covreach/run.hh
// and algorithm.hh, which separate a builder (constructs initial and
// successor nodes) from the algorithm proper (the waiting-set loop); this
// package keeps that split as Run's node-expansion helpers versus its main
// loop, rather than as two exported types, since the Go port has no
// template-specialized builder hierarchy to mirror one-for-one.
//
// Waiting-policy ordering and the doc-comment/options-struct/sentinel-error
// convention are grounded on the teacher's dijkstra package
// (dijkstra/dijkstra.go): a plain-struct Config, a documented
// complexity note, and numbered validation stages in Run's doc comment.
package covreach
