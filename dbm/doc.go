// Package dbm implements difference-bound matrices: the canonical
// representation of a conjunction of difference constraints x−y ≺ k over a
// fixed set of clocks (clock 0 is always the zero clock).
//
// The package provides:
//
//   - Bound, a single (≺, k) entry, ordered and closed under addition.
//   - DBM, a square matrix of Bound entries with canonicalization
//     (Floyd–Warshall tightening), constraint intersection, clock reset,
//     time-elapse, exact and abstraction-modulo-(M)/(L,U) inclusion tests,
//     hashing and lexical ordering.
//   - Destructive extrapolation operators (ExtraM, ExtraM+, ExtraLU,
//     ExtraLU+) used by the zone package to guarantee termination of the
//     symbolic exploration.
//
// Every exported operation documents whether it preserves the "tight and
// consistent" canonical invariant required by spec.md §3: non-empty DBMs
// are always tight (closed under the triangle inequality) and consistent
// (zero diagonal) after returning from any operation other than the
// explicitly-named raw constructors.
//
// Layout follows github.com/katalvlaran/lvlath's matrix package: a flat
// row-major []Bound buffer (matrix/dense.go's Dense.data), and
// Floyd-Warshall tightening with the same fixed k→i→j loop order as
// matrix/impl_floydwarshall.go, generalized from float64 distances to
// Bound entries.
package dbm
