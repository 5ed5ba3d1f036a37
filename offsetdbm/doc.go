// Package offsetdbm implements the offset-DBM kernel: an extension of the
// dbm package to N reference clocks plus M offset variables, each assigned
// to exactly one reference clock by a refmap (spec.md §3 "Offset-DBM",
// §4.2). Offset-DBMs let the async-zone-graph layer (ts package) track
// clocks that drift relative to per-process reference clocks instead of a
// single global zero clock.
//
// OffsetDBM wraps a *dbm.DBM of dimension refcount+clockcount and adds the
// operations spec.md §4.2 enumerates: Synchronize (collapse all reference
// clocks), BoundSpread (bound reference-clock skew), AsynchronousOpenUp
// (let reference clocks elapse independently) and ToDBM (project onto a
// single-reference view once synchronized).
package offsetdbm
