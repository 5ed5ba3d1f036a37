package offsetdbm

import (
	"fmt"

	"github.com/tchecker-go/tchecker/dbm"
)

// OffsetDBM is a (refcount+clockcount)×(refcount+clockcount) offset-DBM.
// The first refcount rows/columns are reference clocks R0..R(refcount-1);
// the remaining clockcount rows/columns are offset variables, each mapped
// to exactly one reference clock by Refmap. Spec.md §3 "Offset-DBM".
type OffsetDBM struct {
	refcount int
	refmap   []int // length == Dim(); refmap[i] for i<refcount is i itself
	d        *dbm.DBM
}

// Dim returns refcount+clockcount.
func (o *OffsetDBM) Dim() int { return o.d.Dim() }

// Refcount returns the number of reference clocks.
func (o *OffsetDBM) Refcount() int { return o.refcount }

// Refmap returns the reference clock index for offset variable i
// (0 <= i < Dim()); for i < Refcount() this is i itself.
func (o *OffsetDBM) Refmap(i int) int { return o.refmap[i] }

// DBM exposes the underlying matrix for operations shared with the plain
// DBM kernel (At, Hash, Clone, Tighten, IsEmptyZero, ...).
func (o *OffsetDBM) DBM() *dbm.DBM { return o.d }

// New allocates an offset-DBM with refcount reference clocks and the given
// refmap (length == dim; refmap[i] == i for i < refcount).
func New(dim, refcount int, refmap []int) (*OffsetDBM, error) {
	if refcount < 1 || refcount > dim {
		return nil, ErrBadRefcount
	}
	if len(refmap) != dim {
		return nil, fmt.Errorf("offsetdbm.New: %w", ErrBadRefmap)
	}
	for i := 0; i < refcount; i++ {
		if refmap[i] != i {
			return nil, fmt.Errorf("offsetdbm.New: reference clock %d must map to itself: %w", i, ErrBadRefmap)
		}
	}
	for i := refcount; i < dim; i++ {
		if refmap[i] < 0 || refmap[i] >= refcount {
			return nil, fmt.Errorf("offsetdbm.New: offset %d maps outside reference clocks: %w", i, ErrBadRefmap)
		}
	}
	inner, err := dbm.New(dim)
	if err != nil {
		return nil, fmt.Errorf("offsetdbm.New: %w", err)
	}
	rm := make([]int, dim)
	copy(rm, refmap)
	return &OffsetDBM{refcount: refcount, refmap: rm, d: inner}, nil
}

// Clone returns an independent deep copy.
func (o *OffsetDBM) Clone() *OffsetDBM {
	return &OffsetDBM{refcount: o.refcount, refmap: append([]int(nil), o.refmap...), d: o.d.Clone()}
}

// UniversalPositive sets o to +∞ everywhere except the diagonal (≤0) and,
// for every offset variable i, m[refmap(i)][i] = (≤0) — the "positive"
// invariant of spec.md §3: x_i ≥ 0 expressed relative to its reference
// clock. Spec.md §4.2 "universal_positive".
func (o *OffsetDBM) UniversalPositive() {
	o.d.Universal()
	for i := o.refcount; i < o.Dim(); i++ {
		_ = o.d.SetRaw(o.refmap[i], i, dbm.LEZero)
	}
}

// IsPositive reports whether the "positive" invariant of spec.md §3 holds:
// for every offset i, m[refmap(i)][i] ≤ (≤0).
func (o *OffsetDBM) IsPositive() bool {
	for i := o.refcount; i < o.Dim(); i++ {
		if dbm.Less(dbm.LEZero, o.d.At(o.refmap[i], i)) {
			return false
		}
	}
	return true
}
