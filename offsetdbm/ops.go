package offsetdbm

import (
	"fmt"

	"github.com/tchecker-go/tchecker/dbm"
)

// Synchronize intersects o with Ri = Rj for every pair of reference clocks
// (collapsing them to a single value) and re-tightens. Spec.md §4.2
// "synchronize(od, N)".
func (o *OffsetDBM) Synchronize() (dbm.Status, error) {
	for i := 0; i < o.refcount; i++ {
		for j := 0; j < o.refcount; j++ {
			if i == j {
				continue
			}
			if err := o.d.SetRaw(i, j, dbm.Min(o.d.At(i, j), dbm.LEZero)); err != nil {
				return dbm.Empty, fmt.Errorf("offsetdbm.Synchronize: %w", err)
			}
		}
	}
	return o.d.Tighten(), nil
}

// BoundSpread intersects o with |Ri − Rj| ≤ s for every pair of reference
// clocks. Spec.md §4.2 "bound_spread(od, N, s)".
func (o *OffsetDBM) BoundSpread(s int64) (dbm.Status, error) {
	if s < 0 {
		return dbm.Empty, ErrBadSpread
	}
	bound := dbm.LE(s)
	for i := 0; i < o.refcount; i++ {
		for j := 0; j < o.refcount; j++ {
			if i == j {
				continue
			}
			if err := o.d.SetRaw(i, j, dbm.Min(o.d.At(i, j), bound)); err != nil {
				return dbm.Empty, fmt.Errorf("offsetdbm.BoundSpread: %w", err)
			}
		}
	}
	return o.d.Tighten(), nil
}

// IsSpreadBounded reports whether every pair of reference clocks already
// satisfies |Ri − Rj| ≤ s, without mutating o.
func (o *OffsetDBM) IsSpreadBounded(s int64) bool {
	bound := dbm.LE(s)
	for i := 0; i < o.refcount; i++ {
		for j := 0; j < o.refcount; j++ {
			if i == j {
				continue
			}
			if dbm.Less(bound, o.d.At(i, j)) {
				return false
			}
		}
	}
	return true
}

// IsSynchronized is IsSpreadBounded(0). Spec.md §4.2 "is_synchronized ≡
// is_spread_bounded(0)".
func (o *OffsetDBM) IsSynchronized() bool { return o.IsSpreadBounded(0) }

// AsynchronousOpenUp lets every clock elapse independently of every
// reference clock: for each reference clock r, sets m[i][r] = +∞ for all
// i. Spec.md §4.2 "asynchronous_open_up(od)".
func (o *OffsetDBM) AsynchronousOpenUp() (dbm.Status, error) {
	return o.asynchronousOpenUp(nil)
}

// AsynchronousOpenUpDelay restricts AsynchronousOpenUp to the reference
// clocks whose bit is set in delayAllowed (length Refcount()), modelling
// locations that forbid delay for some processes. Spec.md §4.2 overload.
func (o *OffsetDBM) AsynchronousOpenUpDelay(delayAllowed []bool) (dbm.Status, error) {
	if len(delayAllowed) != o.refcount {
		return dbm.Empty, fmt.Errorf("offsetdbm.AsynchronousOpenUpDelay: %w", ErrBadRefmap)
	}
	return o.asynchronousOpenUp(delayAllowed)
}

func (o *OffsetDBM) asynchronousOpenUp(delayAllowed []bool) (dbm.Status, error) {
	n := o.Dim()
	for r := 0; r < o.refcount; r++ {
		if delayAllowed != nil && !delayAllowed[r] {
			continue
		}
		for i := 0; i < n; i++ {
			if i == r {
				continue
			}
			if err := o.d.SetRaw(i, r, dbm.Inf); err != nil {
				return dbm.Empty, fmt.Errorf("offsetdbm.asynchronousOpenUp: %w", err)
			}
		}
	}
	return o.d.Tighten(), nil
}

// ResetToRefclock models x := 0 for offset variable x by copying the row
// and column of its reference clock into x, then pinning the diagonal.
// Spec.md §4.2 "reset_to_refclock(od, x)".
func (o *OffsetDBM) ResetToRefclock(x int) error {
	if x < o.refcount || x >= o.Dim() {
		return fmt.Errorf("offsetdbm.ResetToRefclock(%d): %w", x, ErrOutOfRange)
	}
	r := o.refmap[x]
	n := o.Dim()
	for k := 0; k < n; k++ {
		if k == x {
			continue
		}
		if err := o.d.SetRaw(x, k, o.d.At(r, k)); err != nil {
			return fmt.Errorf("offsetdbm.ResetToRefclock: %w", err)
		}
		if err := o.d.SetRaw(k, x, o.d.At(k, r)); err != nil {
			return fmt.Errorf("offsetdbm.ResetToRefclock: %w", err)
		}
	}
	if err := o.d.SetRaw(x, x, dbm.LEZero); err != nil {
		return fmt.Errorf("offsetdbm.ResetToRefclock: %w", err)
	}
	o.d.Tighten()
	return nil
}

// ToDBM projects a synchronized offset-DBM onto the single-reference view:
// a dbm.DBM of dimension (Dim() − Refcount() + 1), where index 0 is the
// (now-unique) reference clock value and index 1+k is offset variable k.
// Precondition: o.IsSynchronized(). Spec.md §4.2 "to_dbm".
func (o *OffsetDBM) ToDBM() (*dbm.DBM, error) {
	if !o.IsSynchronized() {
		return nil, ErrNotSynchronized
	}
	n := o.Dim()
	offsetCount := n - o.refcount
	outDim := offsetCount + 1
	out, err := dbm.New(outDim)
	if err != nil {
		return nil, fmt.Errorf("offsetdbm.ToDBM: %w", err)
	}
	out.Universal()

	// Index 0 of the output corresponds to reference clock 0 (any reference
	// clock would do, since the offset-DBM is synchronized).
	toOut := func(idx int) int {
		if idx < o.refcount {
			return 0
		}
		return idx - o.refcount + 1
	}
	for i := 0; i < n; i++ {
		oi := toOut(i)
		for j := 0; j < n; j++ {
			oj := toOut(j)
			if oi == oj {
				continue // collapsed reference clocks: keep the diagonal (≤0)
			}
			if err := out.SetRaw(oi, oj, dbm.Min(out.At(oi, oj), o.d.At(i, j))); err != nil {
				return nil, fmt.Errorf("offsetdbm.ToDBM: %w", err)
			}
		}
	}
	out.Tighten()
	return out, nil
}
