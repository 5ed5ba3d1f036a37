package subsumption

import (
	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/offsetdbm"
	"github.com/tchecker-go/tchecker/ts"
	"github.com/tchecker-go/tchecker/zone"
)

// discreteMatch reports whether n and c carry the same discrete state.
// Every cover predicate below checks this first: covering never crosses
// a difference in (vloc, intvars_val), only the symbolic clock part may
// be abstracted away (spec.md §4.7, GLOSSARY "Subsumption (covering)").
// Key equality is necessary but not sufficient on its own (a hash
// collision is possible); Vloc/IntVal equality settles it exactly.
func discreteMatch(a, b *ts.DiscreteState) bool {
	if a == b {
		return true
	}
	if !a.Vloc.Equal(b.Vloc) {
		return false
	}
	return a.IntVal.Equal(b.IntVal)
}

// CoverInclusion is the exact zone-inclusion cover predicate
// (spec.md §4.7 "cover_inclusion"): n is covered by c iff they share a
// discrete state and n's zone is included in c's zone.
func CoverInclusion(n, c *Node[*ts.ZGState]) bool {
	if !discreteMatch(n.State.Discrete, c.State.Discrete) {
		return false
	}
	le, err := dbm.IsLE(n.State.Zone.DBM(), c.State.Zone.DBM())
	return err == nil && le
}

// CoverAMGlobal is the aM-abstraction cover predicate with a single
// clock-bound vector shared by every location (spec.md §4.7
// "cover_am_global"): n is covered by c iff aM(n.zone) ⊆ aM(c.zone)
// under the global M vector.
func CoverAMGlobal(m []int64) Cover[*ts.ZGState] {
	return func(n, c *Node[*ts.ZGState]) bool {
		if !discreteMatch(n.State.Discrete, c.State.Discrete) {
			return false
		}
		le, err := dbm.IsAMLe(n.State.Zone.DBM(), c.State.Zone.DBM(), m)
		return err == nil && le
	}
}

// CoverAMLocal is the aM-abstraction cover predicate with a per-location
// clock-bound vector (spec.md §4.7 "cover_am_local"): boundsOf selects M
// from n's own target location, since n and c share a discrete state.
func CoverAMLocal(boundsOf func(d *ts.DiscreteState) []int64) Cover[*ts.ZGState] {
	return func(n, c *Node[*ts.ZGState]) bool {
		if !discreteMatch(n.State.Discrete, c.State.Discrete) {
			return false
		}
		m := boundsOf(n.State.Discrete)
		le, err := dbm.IsAMLe(n.State.Zone.DBM(), c.State.Zone.DBM(), m)
		return err == nil && le
	}
}

// CoverALUGlobal is the aLU-abstraction cover predicate with a single
// (lower, upper) pair shared by every location (spec.md §4.7
// "cover_alu_global").
func CoverALUGlobal(lower, upper []int64) Cover[*ts.ZGState] {
	return func(n, c *Node[*ts.ZGState]) bool {
		if !discreteMatch(n.State.Discrete, c.State.Discrete) {
			return false
		}
		le, err := dbm.IsALULe(n.State.Zone.DBM(), c.State.Zone.DBM(), lower, upper)
		return err == nil && le
	}
}

// CoverALULocal is the aLU-abstraction cover predicate with per-location
// (lower, upper) bounds (spec.md §4.7 "cover_alu_local").
func CoverALULocal(boundsOf func(d *ts.DiscreteState) zone.Bounds) Cover[*ts.ZGState] {
	return func(n, c *Node[*ts.ZGState]) bool {
		if !discreteMatch(n.State.Discrete, c.State.Discrete) {
			return false
		}
		b := boundsOf(n.State.Discrete)
		le, err := dbm.IsALULe(n.State.Zone.DBM(), c.State.Zone.DBM(), b.Lower, b.Upper)
		return err == nil && le
	}
}

// CoverAsyncInclusion is the exact offset-DBM inclusion cover predicate
// for the asynchronous zone graph (spec.md §4.7 "cover_async_inclusion"):
// compares the raw offset-DBM matrices, not a projected synchronous
// zone.
func CoverAsyncInclusion(n, c *Node[*ts.AZGState]) bool {
	if !discreteMatch(n.State.Discrete, c.State.Discrete) {
		return false
	}
	le, err := dbm.IsLE(n.State.Zone.OffsetDBM().DBM(), c.State.Zone.OffsetDBM().DBM())
	return err == nil && le
}

// CoverAsyncAM is the aM-abstraction cover predicate over offset-DBMs
// (spec.md §4.7 "cover_async_am"), delegating to offsetdbm's own
// abstraction-aware comparison since an offset-DBM's reference clocks
// must stay unabstracted.
func CoverAsyncAM(m []int64) Cover[*ts.AZGState] {
	return func(n, c *Node[*ts.AZGState]) bool {
		if !discreteMatch(n.State.Discrete, c.State.Discrete) {
			return false
		}
		le, err := offsetdbm.IsAMLe(n.State.Zone.OffsetDBM(), c.State.Zone.OffsetDBM(), m)
		return err == nil && le
	}
}

// CoverSyncInclusion is spec.md §4.7 "cover_sync_inclusion": two
// asynchronous states are compared after projecting each to its
// synchronous zone (every reference clock forced equal), which is
// coarser than comparing the raw offset-DBMs and admits coverings
// CoverAsyncInclusion would miss.
func CoverSyncInclusion(n, c *Node[*ts.AZGState]) bool {
	if !discreteMatch(n.State.Discrete, c.State.Discrete) {
		return false
	}
	nd, err := projectSync(n.State.Zone)
	if err != nil {
		return false
	}
	cd, err := projectSync(c.State.Zone)
	if err != nil {
		return false
	}
	le, err := dbm.IsLE(nd, cd)
	return err == nil && le
}

func projectSync(z *zone.AsyncZone) (*dbm.DBM, error) {
	o := z.OffsetDBM().Clone()
	if st, err := o.Synchronize(); err != nil {
		return nil, err
	} else if st == dbm.Empty {
		return nil, ErrEmptyProjection
	}
	return o.ToDBM()
}
