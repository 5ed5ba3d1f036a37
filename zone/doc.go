// Package zone wraps the dbm and offsetdbm kernels into the Zone value
// spec.md §3 describes, and implements the zone-semantics objects of
// spec.md §4.3: the six-step "apply a transition to a zone" pipeline
// (source invariant, optional time-elapse, guard, resets, target
// invariant, extrapolation) shared by every transition-system layer in the
// ts package.
//
// Two zone flavors exist:
//
//   - Zone, backed by a dbm.DBM: used by the TA/ZG layers (a single global
//     zero clock).
//   - AsyncZone, backed by an offsetdbm.OffsetDBM: used by the AZG layers
//     (one reference clock per process).
//
// Both accept the same Constraint/Reset vocabulary so the ts package can
// share edge-guard/reset translation code across layers; AsyncZone's
// Next additionally accepts the set of reference clocks a firing
// synchronization vector spans, to intersect the "reference-clock
// synchronization" constraint spec.md §4.3 names.
//
// Extrapolation parameters (clock-bound vectors) are supplied per call via
// Bounds rather than baked into the Semantics value: whether bounds are
// "global" (spec.md §4.3 "extraM_global") or "local" ("extraM_local") is
// entirely a property of what the ts layer passes in, computed by the
// command line's computeGlobalBounds (cmd/tchecker/model.go) — Semantics
// itself only needs to know which extrapolation operator family to apply.
package zone
