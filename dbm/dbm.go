package dbm

import (
	"fmt"
	"hash/fnv"
)

// Status reports whether an operation left the DBM empty or non-empty.
// Spec.md §4.1 "Failure mode: all constraint-intersecting operations
// return a status EMPTY | NON_EMPTY; callers propagate."
type Status int

const (
	// NonEmpty indicates the DBM still represents a non-empty zone.
	NonEmpty Status = iota
	// Empty indicates the DBM's represented zone is empty.
	Empty
)

// DBM is a square matrix of Bound entries representing a conjunction of
// difference constraints over dim clocks (clock 0 is the zero clock).
// Spec.md §3 "DBM". Row-major flat buffer, mirroring
// github.com/katalvlaran/lvlath's matrix.Dense layout (matrix/dense.go).
type DBM struct {
	dim   int
	data  []Bound
	empty bool
}

// Dim returns the dimension (number of clocks, including the zero clock).
func (d *DBM) Dim() int { return d.dim }

// IsEmpty reports the cached emptiness flag maintained by Tighten/Constrain.
func (d *DBM) IsEmpty() bool { return d.empty }

func checkDim(dim int) error {
	if dim <= 0 {
		return ErrBadDimension
	}
	return nil
}

func (d *DBM) index(i, j int) int { return i*d.dim + j }

// At returns the entry at (i,j).
func (d *DBM) At(i, j int) Bound {
	return d.data[d.index(i, j)]
}

// set writes the entry at (i,j) without touching canonicity bookkeeping.
func (d *DBM) set(i, j int, b Bound) {
	d.data[d.index(i, j)] = b
}

// SetRaw writes the entry at (i,j) without re-tightening. Intended for
// kernel-internal callers (e.g. the offsetdbm package) building up a matrix
// entry-by-entry before calling Tighten themselves; ordinary callers should
// use Constrain to preserve the canonical-form contract.
func (d *DBM) SetRaw(i, j int, b Bound) error {
	if i < 0 || i >= d.dim || j < 0 || j >= d.dim {
		return fmt.Errorf("dbm.SetRaw(%d,%d): %w", i, j, ErrOutOfRange)
	}
	d.set(i, j, b)
	return nil
}

// New allocates a zero-valued dim×dim DBM; callers should immediately call
// Universal, UniversalPositive or Zero before using it — the zero value of
// Bound ((≤0)) alone is not a meaningful zone.
func New(dim int) (*DBM, error) {
	if err := checkDim(dim); err != nil {
		return nil, fmt.Errorf("dbm.New: %w", err)
	}
	return &DBM{dim: dim, data: make([]Bound, dim*dim)}, nil
}

// Universal sets d to the universal zone: +∞ everywhere except the
// diagonal, which holds (≤0). Spec.md §4.1 "universal(d)".
func (d *DBM) Universal() {
	for i := 0; i < d.dim; i++ {
		for j := 0; j < d.dim; j++ {
			switch {
			case i == j:
				d.set(i, j, LEZero)
			default:
				d.set(i, j, Inf)
			}
		}
	}
	d.empty = false
}

// UniversalPositive sets d to the universal zone intersected with "every
// clock ≥ 0": additionally sets m[0][i] = (≤0) for every clock i.
// Spec.md §4.1 "universal_positive(d)".
func (d *DBM) UniversalPositive() {
	d.Universal()
	for i := 1; i < d.dim; i++ {
		d.set(0, i, LEZero)
	}
}

// Zero sets d to the single point where every clock equals 0: all entries
// (≤0). Spec.md §4.1 "zero(d)".
func (d *DBM) Zero() {
	for i := range d.data {
		d.data[i] = LEZero
	}
	d.empty = false
}

// Clone returns an independent deep copy of d.
func (d *DBM) Clone() *DBM {
	cp := &DBM{dim: d.dim, data: make([]Bound, len(d.data)), empty: d.empty}
	copy(cp.data, d.data)
	return cp
}

// Constrain intersects d with the constraint xi − xj ≺ k (encoded as
// Bound b), re-tightening the result. Spec.md §4.1 "constrain".
//
// Implementation note: the canonical TChecker algorithm restarts
// Floyd-Warshall incrementally from the changed entry for O(dim²) cost;
// this implementation instead performs a full O(dim³) re-tightening for
// clarity and to keep the canonicalization trivially equal-by-construction
// to Tighten's result (testable property #1). The asymptotic difference
// does not affect any observable behavior.
func (d *DBM) Constrain(i, j int, b Bound) (Status, error) {
	if i < 0 || i >= d.dim || j < 0 || j >= d.dim {
		return Empty, fmt.Errorf("dbm.Constrain(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if LessEqual(d.At(i, j), b) {
		// Already at least as tight; no-op per spec.
		return statusOf(d), nil
	}
	d.set(i, j, b)
	return d.Tighten(), nil
}

// Tighten runs full Floyd-Warshall closure in place and reports the
// resulting status. Spec.md §4.1 "tighten(d)".
//
// Loop order k→i→j mirrors
// github.com/katalvlaran/lvlath's matrix/impl_floydwarshall.go
// floydWarshallInPlace, generalized from float64 distances to Bound
// entries via Add/Min instead of +/min.
func (d *DBM) Tighten() Status {
	n := d.dim
	data := d.data

	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := data[i*n+k]
			if ik.Infinite {
				continue // no path via k can improve row i
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := data[baseK+j]
				if kj.Infinite {
					continue
				}
				cand := Add(ik, kj)
				if Less(cand, data[baseI+j]) {
					data[baseI+j] = cand
				}
			}
		}
	}

	d.empty = d.IsEmptyZero()
	if d.empty {
		// The matrix is left as the closure produced it: any diagonal entry
		// below (≤0), which IsEmptyZero looks for, marks it empty.
		return Empty
	}
	return NonEmpty
}

// IsEmptyZero reports whether the diagonal exhibits (<≤0): a tight DBM
// represents the empty zone iff some m[i][i] < (≤0). Spec.md §4.1
// "is_empty_0(d)".
func (d *DBM) IsEmptyZero() bool {
	for i := 0; i < d.dim; i++ {
		if Less(d.At(i, i), LEZero) {
			return true
		}
	}
	return false
}

// Reset sets clock x to 0: copies row/column 0 into row/column x, except
// the diagonal, which stays (≤0). Spec.md §4.1 "reset(d, x)".
func (d *DBM) Reset(x int) error {
	if x <= 0 || x >= d.dim {
		return fmt.Errorf("dbm.Reset(%d): %w", x, ErrOutOfRange)
	}
	for k := 0; k < d.dim; k++ {
		if k == x {
			continue
		}
		d.set(x, k, d.At(0, k))
		d.set(k, x, d.At(k, 0))
	}
	d.set(x, x, LEZero)
	d.empty = d.IsEmptyZero()
	return nil
}

// OpenUp performs the time-elapse operation: removes the upper bound on
// every non-zero clock. Spec.md §4.1 "open_up(d)".
func (d *DBM) OpenUp() {
	for x := 1; x < d.dim; x++ {
		d.set(x, 0, Inf)
	}
	// Re-tightening is trivial (relaxing an upper bound cannot introduce new
	// tighter constraints elsewhere), but is performed for documented
	// uniformity with other destructive operators.
	d.Tighten()
}

// IsLE reports exact inclusion: d ⊆ other, i.e. every entry of d is at
// least as tight as the corresponding entry of other. Spec.md §4.1
// "is_le(d₁, d₂)". Both DBMs must already be canonical.
func IsLE(d, other *DBM) (bool, error) {
	if d.dim != other.dim {
		return false, ErrDimensionMismatch
	}
	for idx := range d.data {
		if !LessEqual(d.data[idx], other.data[idx]) {
			return false, nil
		}
	}
	return true, nil
}

// Hash returns a hash of the canonical form, commuting with equality of
// tight DBMs. Spec.md §4.1 "hash(d)".
func (d *DBM) Hash() uint64 {
	h := fnv.New64a()
	var buf [9]byte
	for _, b := range d.data {
		if b.Infinite {
			buf[0] = 1
		} else {
			buf[0] = 0
			v := uint64(b.Value)
			for i := 0; i < 8; i++ {
				buf[1+i] = byte(v >> (8 * i))
			}
			if b.Strict {
				buf[0] |= 2
			}
		}
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// Less implements the lexical ordering over canonical DBMs used for
// deterministic container keys (e.g. sorted test fixtures).
func (d *DBM) Less(other *DBM) bool {
	n := len(d.data)
	if m := len(other.data); n != m {
		return n < m
	}
	for i := 0; i < n; i++ {
		if Less(d.data[i], other.data[i]) {
			return true
		}
		if Less(other.data[i], d.data[i]) {
			return false
		}
	}
	return false
}

func statusOf(d *DBM) Status {
	if d.empty {
		return Empty
	}
	return NonEmpty
}
