package dbm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/dbm"
)

func newUniversalPositive(t *testing.T, dim int) *dbm.DBM {
	t.Helper()
	d, err := dbm.New(dim)
	require.NoError(t, err)
	d.UniversalPositive()
	return d
}

func TestUniversalPositiveIsNonEmpty(t *testing.T) {
	d := newUniversalPositive(t, 3)
	require.False(t, d.IsEmptyZero())
}

func TestConstrainThenTightenMatchesCanonicalForm(t *testing.T) {
	// x ≤ 3, y ≤ 3, x − y ≤ 0, y − x ≤ 0: a single diagonal slice of the
	// plane, expressed via a sequence of Constrain calls.
	d := newUniversalPositive(t, 3)
	_, err := d.Constrain(1, 0, dbm.LE(3))
	require.NoError(t, err)
	_, err = d.Constrain(2, 0, dbm.LE(3))
	require.NoError(t, err)
	_, err = d.Constrain(1, 2, dbm.LE(0))
	require.NoError(t, err)
	st, err := d.Constrain(2, 1, dbm.LE(0))
	require.NoError(t, err)
	require.Equal(t, dbm.NonEmpty, st)

	// The closure must equal re-running full Floyd-Warshall from scratch
	// (testable property #1).
	clone := d.Clone()
	clone.Tighten()
	require.Equal(t, d.At(0, 1), clone.At(0, 1))
	require.Equal(t, d.At(1, 2), clone.At(1, 2))
	require.Equal(t, d.At(2, 1), clone.At(2, 1))
}

func TestConstrainDetectsEmptiness(t *testing.T) {
	d := newUniversalPositive(t, 2)
	_, err := d.Constrain(1, 0, dbm.LE(1)) // x ≤ 1
	require.NoError(t, err)
	st, err := d.Constrain(0, 1, dbm.LE(-2)) // x ≥ 2, contradiction
	require.NoError(t, err)
	require.Equal(t, dbm.Empty, st)
	require.True(t, d.IsEmptyZero())
}

func TestIsLEReflexiveAndZeroIncludedInUniversal(t *testing.T) {
	d := newUniversalPositive(t, 3)
	ok, err := dbm.IsLE(d, d)
	require.NoError(t, err)
	require.True(t, ok)

	z, err := dbm.New(3)
	require.NoError(t, err)
	z.Zero()
	ok, err = dbm.IsLE(z, d)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestResetClockToZero(t *testing.T) {
	d := newUniversalPositive(t, 2)
	_, err := d.Constrain(1, 0, dbm.LE(5))
	require.NoError(t, err)
	require.NoError(t, d.Reset(1))
	require.Equal(t, dbm.LEZero, d.At(1, 0))
	require.Equal(t, dbm.LEZero, d.At(0, 1))
}

func TestOpenUpRemovesUpperBound(t *testing.T) {
	d := newUniversalPositive(t, 2)
	_, err := d.Constrain(1, 0, dbm.LE(5))
	require.NoError(t, err)
	d.OpenUp()
	require.Equal(t, dbm.Inf, d.At(1, 0))
}

func TestHashCommutesWithEquality(t *testing.T) {
	a := newUniversalPositive(t, 2)
	b := newUniversalPositive(t, 2)
	require.Equal(t, a.Hash(), b.Hash())

	_, err := a.Constrain(1, 0, dbm.LE(5))
	require.NoError(t, err)
	require.NotEqual(t, a.Hash(), b.Hash())
}

// TestAbstractionSoundness checks testable property #3: exact inclusion
// implies both aM and aLU inclusion.
func TestAbstractionSoundness(t *testing.T) {
	d1 := newUniversalPositive(t, 2)
	_, err := d1.Constrain(1, 0, dbm.LE(2))
	require.NoError(t, err)

	d2 := newUniversalPositive(t, 2)
	_, err = d2.Constrain(1, 0, dbm.LE(5))
	require.NoError(t, err)

	le, err := dbm.IsLE(d1, d2)
	require.NoError(t, err)
	require.True(t, le)

	m := []int64{0, 10}
	amLE, err := dbm.IsAMLe(d1, d2, m)
	require.NoError(t, err)
	require.True(t, amLE)

	aluLE, err := dbm.IsALULe(d1, d2, m, m)
	require.NoError(t, err)
	require.True(t, aluLE)
}

// TestALUScenarioS6 reproduces spec.md §8 scenario S6 exactly.
func TestALUScenarioS6(t *testing.T) {
	build := func(xBound, yBound int64) *dbm.DBM {
		d := newUniversalPositive(t, 3) // clocks 0 (zero), 1 (x), 2 (y)
		_, err := d.Constrain(1, 0, dbm.LE(xBound))
		require.NoError(t, err)
		_, err = d.Constrain(2, 0, dbm.LE(yBound))
		require.NoError(t, err)
		_, err = d.Constrain(1, 2, dbm.LE(0))
		require.NoError(t, err)
		_, err = d.Constrain(2, 1, dbm.LE(0))
		require.NoError(t, err)
		return d
	}
	d1 := build(3, 3)
	d2 := build(5, 5)

	lowU := []int64{0, 2, 2}
	aluLE, err := dbm.IsALULe(d1, d2, lowU, lowU)
	require.NoError(t, err)
	require.True(t, aluLE)

	exactLE, err := dbm.IsLE(d1, d2)
	require.NoError(t, err)
	require.True(t, exactLE)

	highU := []int64{0, 4, 4}
	aluLE, err = dbm.IsALULe(d1, d2, highU, highU)
	require.NoError(t, err)
	require.True(t, aluLE)

	exactLE, err = dbm.IsLE(d1, d2)
	require.NoError(t, err)
	require.True(t, exactLE)

	// Swapped: exact inclusion fails, aLU remains true.
	exactLE, err = dbm.IsLE(d2, d1)
	require.NoError(t, err)
	require.False(t, exactLE)

	aluLE, err = dbm.IsALULe(d2, d1, lowU, lowU)
	require.NoError(t, err)
	require.True(t, aluLE)
}

// TestALUAbstractionUsesUpperNotLowerForTheLowerFacet guards against
// swapping L and U when relaxing D[0][j]: only U[j] governs how far the
// lower-bound facet of clock j can be relaxed, so an asymmetric L must
// not affect the result.
func TestALUAbstractionUsesUpperNotLowerForTheLowerFacet(t *testing.T) {
	other := newUniversalPositive(t, 2) // clocks 0 (zero), 1 (x)
	_, err := other.Constrain(0, 1, dbm.LE(-6)) // x >= 6, unbounded above
	require.NoError(t, err)

	point := newUniversalPositive(t, 2)
	_, err = point.Constrain(1, 0, dbm.LE(4)) // x <= 4
	require.NoError(t, err)
	_, err = point.Constrain(0, 1, dbm.LE(-4)) // x >= 4
	require.NoError(t, err)

	lower := []int64{0, 2}
	upper := []int64{0, 10}
	aluLE, err := dbm.IsALULe(point, other, lower, upper)
	require.NoError(t, err)
	require.False(t, aluLE, "L=2 must not relax the x>=6 lower facet when U=10 keeps it exact")
}

// TestAMAbstractionRelaxesLowerFacetToBoundNotInfinity guards against
// relaxing the lower facet of α_M all the way to +∞ instead of to
// (<, −M[x]): under M=[0,5], abstracting {x>=7} must yield {x>5}, which
// does not subsume {x=3}.
func TestAMAbstractionRelaxesLowerFacetToBoundNotInfinity(t *testing.T) {
	c := newUniversalPositive(t, 2) // clocks 0 (zero), 1 (x)
	_, err := c.Constrain(0, 1, dbm.LE(-7)) // x >= 7
	require.NoError(t, err)

	n := newUniversalPositive(t, 2)
	_, err = n.Constrain(1, 0, dbm.LE(3)) // x <= 3
	require.NoError(t, err)
	_, err = n.Constrain(0, 1, dbm.LE(-3)) // x >= 3
	require.NoError(t, err)

	m := []int64{0, 5}
	amLE, err := dbm.IsAMLe(n, c, m)
	require.NoError(t, err)
	require.False(t, amLE, "x=3 must not be covered by an over-relaxed abstraction of x>=7")
}

func TestExtrapolationIdempotent(t *testing.T) {
	d := newUniversalPositive(t, 2)
	_, err := d.Constrain(1, 0, dbm.LE(100))
	require.NoError(t, err)

	m := []int64{0, 5}
	require.NoError(t, dbm.ExtraM(d, m))
	once := d.Clone()
	require.NoError(t, dbm.ExtraM(d, m))
	require.Equal(t, once.Hash(), d.Hash())
}
