package zone_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/status"
	"github.com/tchecker-go/tchecker/zone"
)

func TestElapsedSemanticsNext(t *testing.T) {
	z, err := zone.NewZone(2) // clock 0 (zero), clock 1 (x)
	require.NoError(t, err)

	sem := zone.Semantics{Elapsed: true, Extra: zone.NoExtrapolation}
	require.Equal(t, status.OK, sem.Initial(z))

	// src invariant: x <= 10; guard: x >= 2; reset x; tgt invariant: x <= 5.
	st := sem.Next(z,
		[]zone.Constraint{{I: 1, J: 0, B: dbm.LE(10)}},
		[]zone.Constraint{{I: 0, J: 1, B: dbm.LE(-2)}},
		[]zone.Reset{{Clock: 1}},
		[]zone.Constraint{{I: 1, J: 0, B: dbm.LE(5)}},
		zone.Bounds{},
	)
	require.Equal(t, status.OK, st)
}

func TestNextReportsPreciseFailure(t *testing.T) {
	z, err := zone.NewZone(2)
	require.NoError(t, err)
	sem := zone.Semantics{Elapsed: false}
	sem.Initial(z)

	st := sem.Next(z,
		[]zone.Constraint{{I: 1, J: 0, B: dbm.LE(-1)}}, // x <= -1 while x=0: violated
		nil, nil, nil, zone.Bounds{},
	)
	require.Equal(t, status.ClocksSrcInvariantViolated, st)
}

func TestExtraMIsAppliedDuringNext(t *testing.T) {
	z, err := zone.NewZone(2)
	require.NoError(t, err)
	sem := zone.Semantics{Elapsed: true, Extra: zone.ExtraM}
	sem.Initial(z)

	st := sem.Next(z, nil, nil, nil, nil, zone.Bounds{M: []int64{0, 1}})
	require.Equal(t, status.OK, st)
	// after elapse clock 1 is unbounded above already; extrapolation must
	// not introduce emptiness.
	require.False(t, z.DBM().IsEmptyZero())
}

func TestAsyncSemanticsInitialAndNext(t *testing.T) {
	z, err := zone.NewAsyncZone(4, 2, []int{0, 1, 0, 1})
	require.NoError(t, err)
	sem := zone.AsyncSemantics{}
	require.Equal(t, status.OK, sem.Initial(z))

	st := sem.Next(z, nil, nil, []zone.Reset{{Clock: 2}}, nil, nil, []int{0, 1})
	require.Equal(t, status.OK, st)
	require.True(t, z.OffsetDBM().IsSynchronized())
}
