package dbm

import "math"

// Bound is a single difference-constraint entry: either +∞ or a pair
// (strict, value) meaning "x−y < value" (strict) or "x−y ≤ value"
// (non-strict). Spec.md §3 "Bound entry".
//
// The zero Value of Bound is the non-strict, non-infinite bound (≤0), which
// is also the multiplicative identity used by Zero/Reset.
type Bound struct {
	Infinite bool
	Strict   bool
	Value    int64
}

// LE constructs a non-strict bound x−y ≤ k.
func LE(k int64) Bound { return Bound{Value: k} }

// LT constructs a strict bound x−y < k.
func LT(k int64) Bound { return Bound{Value: k, Strict: true} }

// Inf is the +∞ bound: no constraint.
var Inf = Bound{Infinite: true}

// LEZero is the (≤0) bound: the multiplicative identity, and the required
// value of every diagonal entry in a consistent DBM.
var LEZero = LE(0)

// Less reports whether a is strictly tighter than b: spec.md §3's total
// order (≺₁,k₁) < (≺₂,k₂) iff k₁<k₂, or k₁=k₂ and ≺₁ is < while ≺₂ is ≤.
func Less(a, b Bound) bool {
	if b.Infinite {
		return !a.Infinite
	}
	if a.Infinite {
		return false
	}
	if a.Value != b.Value {
		return a.Value < b.Value
	}
	return a.Strict && !b.Strict
}

// LessEqual reports whether a is at least as tight as b (a ≤ b in the bound
// order), i.e. !Less(b, a).
func LessEqual(a, b Bound) bool { return !Less(b, a) }

// Equal reports whether a and b denote the same bound.
func Equal(a, b Bound) bool {
	if a.Infinite || b.Infinite {
		return a.Infinite == b.Infinite
	}
	return a.Value == b.Value && a.Strict == b.Strict
}

// Min returns the tighter (smaller) of a and b.
func Min(a, b Bound) Bound {
	if Less(a, b) {
		return a
	}
	return b
}

// Add sums two bounds, saturating at +∞: spec.md §3 "Addition saturates at
// +∞; adding to anything with one operand = +∞ is +∞."
func Add(a, b Bound) Bound {
	if a.Infinite || b.Infinite {
		return Inf
	}
	sum := a.Value + b.Value
	if sum > math.MaxInt32 {
		return Inf
	}
	return Bound{Value: sum, Strict: a.Strict || b.Strict}
}

// Negate returns the opposite of a pure coefficient, e.g. turning a lower
// bound L into the coefficient −L of the entry D(0,i) that encodes x_i ≥ L.
func Negate(k int64) int64 { return -k }
