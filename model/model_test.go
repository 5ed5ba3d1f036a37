package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/zone"
)

// buildTwoProcessCS builds a minimal two-process client/server system: a
// client process with one clock, a server process with one clock, and one
// synchronization vector on event "req".
func buildTwoProcessCS(t *testing.T) *model.System {
	t.Helper()
	b := model.NewBuilder()
	b.DeclareEvent("req")
	b.DeclareEvent("tick")

	client := b.DeclareProcess("client", 1)
	c0 := client.AddLocation("idle", true, false, false, false)
	c1 := client.AddLocation("wait", false, false, false, false)
	client.AddEdge(c0, c1, "req", nil, nil, nil, nil)
	client.AddEdge(c1, c0, "tick", nil, nil, nil, nil)

	server := b.DeclareProcess("server", 1)
	s0 := server.AddLocation("ready", true, false, false, false)
	s1 := server.AddLocation("busy", false, false, false, false)
	server.AddEdge(s0, s1, "req", []zone.Constraint{{I: 1, J: 0, B: dbm.LE(5)}}, []zone.Reset{{Clock: 1}}, nil, nil)

	b.DeclareSync(
		model.SyncEntryRef{Process: "client", Event: "req", Strength: model.Strong},
		model.SyncEntryRef{Process: "server", Event: "req", Strength: model.Strong},
	)

	sys, err := b.Build()
	require.NoError(t, err)
	return sys
}

func TestBuilderBuildsClientServerSystem(t *testing.T) {
	sys := buildTwoProcessCS(t)
	require.Len(t, sys.Processes, 2)
	require.Equal(t, 3, sys.ClockCount) // zero clock + 1 client clock + 1 server clock

	_, ok := sys.ProcessByName("client")
	require.True(t, ok)
	_, ok = sys.ProcessByName("nonexistent")
	require.False(t, ok)
}

func TestBuilderRejectsMissingInitialLocation(t *testing.T) {
	b := model.NewBuilder()
	p := b.DeclareProcess("p", 0)
	p.AddLocation("a", false, false, false, false)
	_, err := b.Build()
	require.ErrorIs(t, err, model.ErrNoInitialLocation)
}

func TestBuilderRejectsDuplicateProcessName(t *testing.T) {
	b := model.NewBuilder()
	b.DeclareProcess("p", 0)
	b.DeclareProcess("p", 0)
	_, err := b.Build()
	require.ErrorIs(t, err, model.ErrDuplicateName)
}

func TestBuilderRejectsUnknownEventInSync(t *testing.T) {
	b := model.NewBuilder()
	b.DeclareProcess("p", 0).AddLocation("a", true, false, false, false)
	b.DeclareSync(model.SyncEntryRef{Process: "p", Event: "missing", Strength: model.Strong})
	_, err := b.Build()
	require.ErrorIs(t, err, model.ErrUnknownEvent)
}

func TestClientServerPredicate(t *testing.T) {
	sys := buildTwoProcessCS(t)
	require.NoError(t, sys.ClientServer("server"))
	require.ErrorIs(t, sys.ClientServer("nosuch"), model.ErrNoServerProcess)
}

func TestGlobalLocalPredicateTrueForTwoProcessClientServer(t *testing.T) {
	// A 2-participant sync in a 2-process system is also "global" since
	// it covers every process: global_local should accept it.
	sys := buildTwoProcessCS(t)
	require.True(t, sys.GlobalLocal)
	require.NoError(t, sys.RequireGlobalLocal())
}

func TestGlobalLocalPredicateFalseForPartialSync(t *testing.T) {
	b := model.NewBuilder()
	b.DeclareEvent("e")
	p1 := b.DeclareProcess("p1", 0)
	p1.AddLocation("a", true, false, false, false)
	p2 := b.DeclareProcess("p2", 0)
	p2.AddLocation("a", true, false, false, false)
	p3 := b.DeclareProcess("p3", 0)
	p3.AddLocation("a", true, false, false, false)

	b.DeclareSync(
		model.SyncEntryRef{Process: "p1", Event: "e", Strength: model.Strong},
		model.SyncEntryRef{Process: "p2", Event: "e", Strength: model.Strong},
	)
	sys, err := b.Build()
	require.NoError(t, err)
	require.False(t, sys.GlobalLocal)
	require.ErrorIs(t, sys.RequireGlobalLocal(), model.ErrNotGlobalLocal)
}

func TestPureLocalAndMixedLocations(t *testing.T) {
	sys := buildTwoProcessCS(t)
	server, _ := sys.ProcessByName("server")
	ready, _ := server.LocationByName("ready")
	busy, _ := server.LocationByName("busy")

	// "ready" has only the synchronized "req" edge outgoing: not
	// pure-local, not mixed.
	require.False(t, sys.IsPureLocal(server.ID, ready.ID))
	require.False(t, sys.IsMixed(server.ID, ready.ID))

	// "busy" has no outgoing edges at all, so it is vacuously neither
	// pure-local (no asynchronous edge to qualify it) nor mixed.
	require.False(t, sys.IsMixed(server.ID, busy.ID))

	client, _ := sys.ProcessByName("client")
	wait, _ := client.LocationByName("wait")
	// "wait" -> "tick" is never named in a sync vector, so it is
	// asynchronous only: pure-local.
	require.True(t, sys.IsPureLocal(client.ID, wait.ID))
}

func TestLocationNextSyncsLocal(t *testing.T) {
	sys := buildTwoProcessCS(t)
	client, _ := sys.ProcessByName("client")
	idle, _ := client.LocationByName("idle")

	syncs := sys.LocationNextSyncs(client.ID, idle.ID, model.LocationKind)
	require.Len(t, syncs, 1)
}
