package offsetdbm

import "github.com/tchecker-go/tchecker/dbm"

// IsAMLe lifts dbm.IsAMLe to offset-DBMs (spec.md §4.2 "is_am_le"):
// inter-reference entries are compared pointwise (no abstraction — skew
// between reference clocks is always tracked exactly), while entries
// touching an offset variable x use the same three-way relaxation as
// dbm.IsAMLe, with refmap(x) playing the role clock 0 plays in the plain
// DBM abstraction.
func IsAMLe(d, other *OffsetDBM, m []int64) (bool, error) {
	if d.Dim() != other.Dim() || d.refcount != other.refcount {
		return false, ErrBadRefmap
	}
	if len(m) != d.Dim() {
		return false, ErrBadRefmap
	}

	abstracted := other.Clone()
	n := abstracted.Dim()

	for i := abstracted.refcount; i < n; i++ {
		r := abstracted.refmap[i]
		if m[i] < 0 {
			continue
		}
		if dbm.Less(dbm.LE(m[i]), abstracted.d.At(i, r)) {
			_ = abstracted.d.SetRaw(i, r, dbm.Inf)
		}
		// The lower-bound entry relaxes to (<, −m[i]), not all the way to
		// ∞: a guard can never compare x against anything tighter than
		// m[i], but the entry still distinguishes x from that point.
		if dbm.Less(abstracted.d.At(r, i), dbm.LE(-m[i])) {
			_ = abstracted.d.SetRaw(r, i, dbm.LT(-m[i]))
		}
	}
	for i := abstracted.refcount; i < n; i++ {
		for j := abstracted.refcount; j < n; j++ {
			if i == j {
				continue
			}
			switch {
			case m[i] >= 0 && dbm.Less(dbm.LE(m[i]), abstracted.d.At(i, j)):
				_ = abstracted.d.SetRaw(i, j, dbm.Inf)
			case m[j] >= 0 && dbm.Less(abstracted.d.At(i, j), dbm.LE(-m[j])):
				_ = abstracted.d.SetRaw(i, j, dbm.LT(-m[j]))
			}
		}
	}
	abstracted.d.Tighten()

	return dbm.IsLE(d.d, abstracted.d)
}
