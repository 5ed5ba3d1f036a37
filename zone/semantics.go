package zone

import (
	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/status"
)

// ExtraKind selects which extrapolation operator family a Semantics value
// applies. Spec.md §4.3 lists NoExtrapolation, extraM/extraM+, extraLU/
// extraLU+, each separately parameterizable by global or local bounds —
// the global/local axis is a property of the Bounds a caller supplies, not
// of ExtraKind itself (see package doc).
type ExtraKind int

const (
	NoExtrapolation ExtraKind = iota
	ExtraM
	ExtraMPlus
	ExtraLU
	ExtraLUPlus
)

// Bounds carries the clock-bound vector(s) an extrapolation operator
// needs. Only the fields relevant to the Semantics' ExtraKind are read.
type Bounds struct {
	M     []int64 // for ExtraM / ExtraMPlus
	Lower []int64 // for ExtraLU / ExtraLUPlus
	Upper []int64
}

func (b Bounds) apply(d *dbm.DBM, kind ExtraKind) error {
	switch kind {
	case NoExtrapolation:
		return nil
	case ExtraM:
		return dbm.ExtraM(d, b.M)
	case ExtraMPlus:
		return dbm.ExtraMPlus(d, b.M)
	case ExtraLU:
		return dbm.ExtraLU(d, b.Lower, b.Upper)
	case ExtraLUPlus:
		return dbm.ExtraLUPlus(d, b.Lower, b.Upper)
	default:
		return nil
	}
}

// Semantics parameterizes the ts package's ZG layer: whether time elapses
// before or after the discrete step (Elapsed), and which extrapolation
// operator terminates the symbolic exploration. Spec.md §4.3.
type Semantics struct {
	Elapsed bool
	Extra   ExtraKind
}

// Initial sets z to the single point where every clock is 0, ready for the
// caller (ts.TA/ZG) to intersect the initial location's invariant.
// Spec.md §4.3 "initial(zone)".
func (s Semantics) Initial(z *Zone) status.Status {
	z.d.Zero()
	return status.OK
}

// Next applies the six-step pipeline of spec.md §4.3 to z in place,
// returning the first failing step's status, or status.OK on success.
func (s Semantics) Next(z *Zone, srcInv, guard []Constraint, resets []Reset, tgtInv []Constraint, bounds Bounds) status.Status {
	if !applyConstraints(z.d, srcInv) {
		return status.ClocksSrcInvariantViolated
	}
	if s.Elapsed {
		z.d.OpenUp()
	}
	if !applyConstraints(z.d, guard) {
		return status.ClocksGuardViolated
	}
	if err := applyResets(z.d, resets); err != nil {
		return status.EmptyZone
	}
	if !s.Elapsed {
		// Non-elapsed semantics: time-elapse happens after the discrete
		// step (guard+reset), bounded by the target invariant below.
		z.d.OpenUp()
	}
	if !applyConstraints(z.d, tgtInv) {
		return status.ClocksTgtInvariantViolated
	}
	if err := bounds.apply(z.d, s.Extra); err != nil {
		return status.EmptyZone
	}
	if z.d.IsEmptyZero() {
		return status.EmptyZone
	}
	return status.OK
}
