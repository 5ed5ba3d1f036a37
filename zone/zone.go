package zone

import (
	"github.com/tchecker-go/tchecker/dbm"
)

// Constraint is a single clock constraint xi − xj ≺ k, indexed the same
// way a DBM entry is (spec.md §3 "DBM"). A pure upper bound "x ≺ k" is
// expressed with J=0 (the zero clock); a pure lower bound "x ≻ k" is
// expressed with I=0, J=x and B bounding −k.
type Constraint struct {
	I, J int
	B    dbm.Bound
}

// Reset models "clock X := 0" (spec.md §3: the DBM kernel only exposes
// reset-to-zero; resets to another clock's value are not part of this
// engine's scope).
type Reset struct {
	Clock int
}

// Zone is a dbm-backed symbolic clock valuation set, used by the TA/ZG
// transition-system layers. Spec.md §3 "Zone".
type Zone struct {
	d *dbm.DBM
}

// NewZone allocates a zone over dim clocks (including the zero clock).
func NewZone(dim int) (*Zone, error) {
	d, err := dbm.New(dim)
	if err != nil {
		return nil, err
	}
	return &Zone{d: d}, nil
}

// DBM exposes the underlying matrix.
func (z *Zone) DBM() *dbm.DBM { return z.d }

// Clone returns an independent deep copy.
func (z *Zone) Clone() *Zone { return &Zone{d: z.d.Clone()} }

// Equal reports bitwise equality of the canonical forms (spec.md §3
// "Equality is bitwise on the canonical form").
func (z *Zone) Equal(other *Zone) bool {
	if z.d.Dim() != other.d.Dim() {
		return false
	}
	return z.d.Hash() == other.d.Hash() && equalEntries(z.d, other.d)
}

func equalEntries(a, b *dbm.DBM) bool {
	n := a.Dim()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !dbm.Equal(a.At(i, j), b.At(i, j)) {
				return false
			}
		}
	}
	return true
}

// Hash delegates to the underlying DBM's canonical hash.
func (z *Zone) Hash() uint64 { return z.d.Hash() }

func applyConstraints(d *dbm.DBM, cs []Constraint) bool {
	for _, c := range cs {
		st, err := d.Constrain(c.I, c.J, c.B)
		if err != nil || st == dbm.Empty {
			return false
		}
	}
	return true
}

func applyResets(d *dbm.DBM, resets []Reset) error {
	for _, r := range resets {
		if err := d.Reset(r.Clock); err != nil {
			return err
		}
	}
	return nil
}
