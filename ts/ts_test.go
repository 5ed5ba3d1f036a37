package ts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/ts"
	"github.com/tchecker-go/tchecker/zone"
)

// buildPingPong builds a 2-process synchronous model: process "a" moves
// idle -> sent on event "go" guarded by x>=2, resetting x; process "b"
// moves idle -> got on the same synchronization. No integer variables.
func buildPingPong(t *testing.T) *model.System {
	t.Helper()
	b := model.NewBuilder()
	b.DeclareEvent("go")

	pa := b.DeclareProcess("a", 1)
	a0 := pa.AddLocation("idle", true, false, false, false)
	a1 := pa.AddLocation("sent", false, false, false, false)
	pa.AddEdge(a0, a1, "go", []zone.Constraint{{I: 0, J: 1, B: dbm.LE(-2)}}, []zone.Reset{{Clock: 1}}, nil, nil)

	pb := b.DeclareProcess("b", 0)
	b0 := pb.AddLocation("idle", true, false, false, false)
	b1 := pb.AddLocation("got", false, false, false, false)
	pb.AddEdge(b0, b1, "go", nil, nil, nil, nil)

	b.DeclareSync(
		model.SyncEntryRef{Process: "a", Event: "go", Strength: model.Strong},
		model.SyncEntryRef{Process: "b", Event: "go", Strength: model.Strong},
	)

	sys, err := b.Build()
	require.NoError(t, err)
	return sys
}

func TestTAInitialAndOutgoingEdges(t *testing.T) {
	sys := buildPingPong(t)
	ta := ts.NewTA(sys)
	initial := ta.Initial()
	require.Len(t, initial, 1)

	edges := ta.OutgoingEdges(initial[0])
	require.Len(t, edges, 1)
	require.Equal(t, 0, edges[0].SyncID)
	require.Len(t, edges[0].Edges, 2)
}

func TestTANextMovesBothParticipants(t *testing.T) {
	sys := buildPingPong(t)
	ta := ts.NewTA(sys)
	s := ta.Initial()[0]
	edges := ta.OutgoingEdges(s)
	st := ta.Next(s, edges[0])
	require.True(t, st.OK(), st.String())
	require.Equal(t, ts.Vloc{1, 1}, s.Vloc)
}

func TestZGElapsedSemanticsSatisfiesLowerBoundGuard(t *testing.T) {
	sys := buildPingPong(t)
	zg := ts.NewZG(sys, zone.Semantics{Elapsed: true}, nil)
	states := zg.Initial()
	require.Len(t, states, 1)

	s := states[0]
	edges := zg.OutgoingEdges(s)
	require.Len(t, edges, 1)

	// At time 0, x<2 so the guard x>=2 cannot yet be satisfied without
	// elapsing; Elapsed semantics lets time pass before the guard, so the
	// transition succeeds once the zone is unbounded above.
	st := zg.Next(s, edges[0])
	require.True(t, st.OK(), st.String())
	require.Equal(t, ts.Vloc{1, 1}, s.Discrete.Vloc)
}
