package zone

import (
	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/offsetdbm"
	"github.com/tchecker-go/tchecker/status"
)

// AsyncZone is an offset-DBM-backed symbolic clock valuation set, used by
// the AZG family of transition-system layers (spec.md §4.4 items 3-5).
type AsyncZone struct {
	o *offsetdbm.OffsetDBM
}

// NewAsyncZone allocates an async zone with the given reference-clock
// count and refmap (see offsetdbm.New).
func NewAsyncZone(dim, refcount int, refmap []int) (*AsyncZone, error) {
	o, err := offsetdbm.New(dim, refcount, refmap)
	if err != nil {
		return nil, err
	}
	return &AsyncZone{o: o}, nil
}

// OffsetDBM exposes the underlying matrix.
func (z *AsyncZone) OffsetDBM() *offsetdbm.OffsetDBM { return z.o }

// Clone returns an independent deep copy.
func (z *AsyncZone) Clone() *AsyncZone { return &AsyncZone{o: z.o.Clone()} }

// AsyncSemantics implements the six-step pipeline of spec.md §4.3 on an
// offset-DBM: reference-clock asynchronous time-elapse replaces the single
// zero-clock time-elapse of Semantics, and a firing synchronization vector
// additionally intersects the "reference-clock synchronization" constraint
// (Ri = Rj for every pair of participating processes). Extrapolation is
// intentionally absent here: spec.md §4.4 layer 5 (AZG sync-zones) derives
// a plain DBM via OffsetDBM.ToDBM and extrapolates that, which the ts
// package's azg_sync.go performs after calling Next.
type AsyncSemantics struct{}

// Initial sets z to universal-positive then collapses every offset
// variable onto its reference clock (all clocks start at their process's
// reference-clock value, i.e. 0), ready for the caller to intersect the
// initial location's invariant.
func (s AsyncSemantics) Initial(z *AsyncZone) status.Status {
	z.o.UniversalPositive()
	n := z.o.Dim()
	for i := z.o.Refcount(); i < n; i++ {
		if err := z.o.ResetToRefclock(i); err != nil {
			return status.EmptyZone
		}
	}
	return status.OK
}

// Next runs the six-step pipeline using offset-variable-indexed
// Constraints/Resets (index translation from model clocks to offset
// variables is the ts layer's responsibility). If syncRefClocks is
// non-empty, the reference clocks it names are additionally equated
// (spec.md §4.3 "reference-clock synchronization"). A nil delayAllowed
// lets every reference clock delay.
func (s AsyncSemantics) Next(z *AsyncZone, srcInv, guard []Constraint, resets []Reset, tgtInv []Constraint, delayAllowed []bool, syncRefClocks []int) status.Status {
	d := z.o.DBM()
	if !applyConstraints(d, srcInv) {
		return status.ClocksSrcInvariantViolated
	}
	var err error
	if delayAllowed == nil {
		_, err = z.o.AsynchronousOpenUp()
	} else {
		_, err = z.o.AsynchronousOpenUpDelay(delayAllowed)
	}
	if err != nil {
		return status.EmptyZone
	}
	if !applyConstraints(d, guard) {
		return status.ClocksGuardViolated
	}
	for _, r := range resets {
		if err := z.o.ResetToRefclock(r.Clock); err != nil {
			return status.EmptyZone
		}
	}
	if !applyConstraints(d, tgtInv) {
		return status.ClocksTgtInvariantViolated
	}
	if len(syncRefClocks) > 1 {
		for _, r := range syncRefClocks[1:] {
			if _, err := d.Constrain(syncRefClocks[0], r, dbm.LEZero); err != nil {
				return status.EmptyZone
			}
			if _, err := d.Constrain(r, syncRefClocks[0], dbm.LEZero); err != nil {
				return status.EmptyZone
			}
		}
	}
	if d.IsEmptyZero() {
		return status.EmptyZone
	}
	return status.OK
}
