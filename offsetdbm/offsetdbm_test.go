package offsetdbm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/offsetdbm"
)

// Two processes, each with one reference clock (R0, R1) and one clock
// offset (X0 -> R0, X1 -> R1): refcount=2, dim=4, refmap=[0,1,0,1].
func newFixture(t *testing.T) *offsetdbm.OffsetDBM {
	t.Helper()
	o, err := offsetdbm.New(4, 2, []int{0, 1, 0, 1})
	require.NoError(t, err)
	o.UniversalPositive()
	return o
}

func TestUniversalPositiveIsPositive(t *testing.T) {
	o := newFixture(t)
	require.True(t, o.IsPositive())
}

func TestSynchronizeThenIsSynchronized(t *testing.T) {
	o := newFixture(t)
	st, err := o.Synchronize()
	require.NoError(t, err)
	require.Equal(t, dbm.NonEmpty, st)
	require.True(t, o.IsSynchronized())
}

func TestBoundSpread(t *testing.T) {
	o := newFixture(t)
	st, err := o.BoundSpread(3)
	require.NoError(t, err)
	require.Equal(t, dbm.NonEmpty, st)
	require.True(t, o.IsSpreadBounded(3))
}

func TestAsynchronousOpenUpIdempotent(t *testing.T) {
	o := newFixture(t)
	st1, err := o.AsynchronousOpenUp()
	require.NoError(t, err)
	require.Equal(t, dbm.NonEmpty, st1)
	h1 := o.DBM().Hash()

	st2, err := o.AsynchronousOpenUp()
	require.NoError(t, err)
	require.Equal(t, dbm.NonEmpty, st2)
	require.Equal(t, h1, o.DBM().Hash())
}

// TestToDBMOnUniversalPositive reproduces spec.md §8 property #6: the
// projection of a synchronized, refcount=1 universal-positive offset-DBM
// equals the universal-positive DBM of the same dimension.
func TestToDBMOnUniversalPositive(t *testing.T) {
	o, err := offsetdbm.New(3, 1, []int{0, 0, 0})
	require.NoError(t, err)
	o.UniversalPositive()
	_, err = o.Synchronize()
	require.NoError(t, err)

	projected, err := o.ToDBM()
	require.NoError(t, err)

	want, err := dbm.New(3)
	require.NoError(t, err)
	want.UniversalPositive()

	le1, err := dbm.IsLE(projected, want)
	require.NoError(t, err)
	le2, err := dbm.IsLE(want, projected)
	require.NoError(t, err)
	require.True(t, le1)
	require.True(t, le2)
}

func TestResetToRefclock(t *testing.T) {
	o := newFixture(t)
	require.NoError(t, o.ResetToRefclock(2)) // X0 := 0 relative to R0
	require.Equal(t, dbm.LEZero, o.DBM().At(2, 0))
	require.Equal(t, dbm.LEZero, o.DBM().At(0, 2))
}
