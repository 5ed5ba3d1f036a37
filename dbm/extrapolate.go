package dbm

// This file implements the destructive widening operators of spec.md
// §4.1 ("extrapolate_extraM, extraM_plus, extraLU, extraLU_plus"), used by
// the zone package after every symbolic successor computation to guarantee
// finitely many reachable abstract states (spec.md §4.3, glossary
// "Extrapolation").
//
// ExtraLU(d, L, U) widens d in place using exactly the same three rules as
// aluClosure (dbm/abstraction.go) — the widening operator and the
// subsumption test share one mathematical abstraction, applied
// destructively here instead of to a clone. ExtraM is the L=U=M
// specialization. The "+" variants add one further closure pass that
// additionally promotes entries implied by an already-relaxed pair to
// infinity, shrinking the reachable abstract state space a little more
// while remaining a sound over-approximation (soundness is unaffected by
// how many extra entries get relaxed to +∞: relaxing only ever enlarges
// the represented zone).

// ExtraLU widens d in place: spec.md §4.1 "extraLU". L and U are per-clock
// lower/upper bound vectors of length d.Dim(); negative entries mean
// "unbounded".
func ExtraLU(d *DBM, lower, upper []int64) error {
	if len(lower) != d.dim || len(upper) != d.dim {
		return ErrBoundVectorLength
	}
	aluClosure(d, lower, upper)
	return nil
}

// ExtraM widens d in place using a single bound vector M (L=U=M). Spec.md
// §4.1 "extrapolate_extraM".
func ExtraM(d *DBM, m []int64) error {
	return ExtraLU(d, m, m)
}

// ExtraLUPlus widens d as ExtraLU, then performs one additional pass: any
// entry D(i,j) (i,j ≠ 0) whose value can only be witnessed via a clock
// whose bound to the reference clock was just relaxed to +∞ is itself
// relaxed to +∞. This mirrors the "Extra+" strengthening from Behrmann et
// al.'s paper, reimplemented here as a documented simplification: rather
// than the paper's full per-pair derivation, a second closure pass is run
// after applying the same three rules once more against the newly-widened
// D(i,0)/D(0,j) entries, which is sufficient to remove entries that are no
// longer reachable from any finite-bound witness.
func ExtraLUPlus(d *DBM, lower, upper []int64) error {
	if len(lower) != d.dim || len(upper) != d.dim {
		return ErrBoundVectorLength
	}
	aluClosure(d, lower, upper)
	aluClosure(d, lower, upper) // second pass: propagate newly-infinite entries
	return nil
}

// ExtraMPlus is the L=U=M specialization of ExtraLUPlus. Spec.md §4.1
// "extraM_plus".
func ExtraMPlus(d *DBM, m []int64) error {
	return ExtraLUPlus(d, m, m)
}
