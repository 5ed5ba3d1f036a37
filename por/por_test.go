package por_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/por"
	"github.com/tchecker-go/tchecker/ts"
)

// buildClientServer builds a 2-process system: server "srv" with a
// single edge on "req" (client/server sync), client "c" with locations
// a(initial) -req-> b -think-> c2, where b is the only pure-local
// location.
func buildClientServer(t *testing.T) *model.System {
	t.Helper()
	b := model.NewBuilder()
	b.DeclareEvent("req")
	b.DeclareEvent("think")

	srv := b.DeclareProcess("srv", 0)
	idle := srv.AddLocation("idle", true, false, false, false)
	busy := srv.AddLocation("busy", false, false, false, false)
	srv.AddEdge(idle, busy, "req", nil, nil, nil, nil)

	cli := b.DeclareProcess("c", 0)
	a := cli.AddLocation("a", true, false, false, false)
	bLoc := cli.AddLocation("b", false, false, false, false)
	c2 := cli.AddLocation("c2", false, false, false, false)
	cli.AddEdge(a, bLoc, "req", nil, nil, nil, nil)
	cli.AddEdge(bLoc, c2, "think", nil, nil, nil, nil)

	b.DeclareSync(
		model.SyncEntryRef{Process: "c", Event: "req", Strength: model.Strong},
		model.SyncEntryRef{Process: "srv", Event: "req", Strength: model.Strong},
	)

	sys, err := b.Build()
	require.NoError(t, err)
	return sys
}

func TestPureLocalPolicyTracksFirstPureLocalProcess(t *testing.T) {
	sys := buildClientServer(t)
	p := por.PureLocal{}

	require.Equal(t, por.NoPureLocal, p.InitialMemory(sys, ts.Vloc{0, 0}))

	ta := ts.NewTA(sys)
	w := por.New[*ts.DiscreteState](ta.AsTS(), p, sys, func(s *ts.DiscreteState) ts.Vloc { return s.Vloc })
	states := w.Initial()
	require.Len(t, states, 1)

	edges := w.OutgoingEdges(states[0])
	require.Len(t, edges, 1)

	st := w.Next(states[0], edges[0])
	require.True(t, st.OK(), st.String())
	require.Equal(t, 1, states[0].Memory) // process "c" (pid 1) is now at pure-local location b

	edges = w.OutgoingEdges(states[0])
	require.Len(t, edges, 1)
	require.Equal(t, -1, edges[0].SyncID) // the async "think" vedge
}

func TestClientServerSourceSetRestrictsToRankedClient(t *testing.T) {
	sys := buildClientServer(t)
	p := por.NewClientServer("srv")
	require.NoError(t, p.Validate(sys))

	vloc := ts.Vloc{0, 1} // srv=idle, c=b
	vedges := []ts.Vedge{
		{SyncID: -1, Edges: []ts.EdgeRef{{ProcessID: 1, EdgeID: 1}}}, // think
	}
	out := p.SourceSet(sys, vloc, 1, vedges)
	require.Len(t, out, 1)

	out = p.SourceSet(sys, vloc, por.NewClientServer("srv").InitialMemory(sys, vloc).(int), vedges)
	require.Len(t, out, 1) // communication rank explores everything too, same set here
}

func TestClientServerNextMemoryRanksSingleMover(t *testing.T) {
	p := por.NewClientServer("srv")
	require.NoError(t, p.Validate(buildClientServer(t)))
	sys := buildClientServer(t)

	sync := ts.Vedge{SyncID: 0, Edges: []ts.EdgeRef{{ProcessID: 0, EdgeID: 0}, {ProcessID: 1, EdgeID: 0}}}
	mem := p.NextMemory(sys, ts.Vloc{0, 0}, ts.Vloc{1, 1}, -1, sync)
	require.Equal(t, -1, mem) // communication: two-party sync

	local := ts.Vedge{SyncID: -1, Edges: []ts.EdgeRef{{ProcessID: 1, EdgeID: 1}}}
	mem = p.NextMemory(sys, ts.Vloc{1, 1}, ts.Vloc{1, 2}, -1, local)
	require.Equal(t, 1, mem)
}

func TestClientServerMemoryCover(t *testing.T) {
	p := por.NewClientServer("srv")
	require.True(t, p.MemoryCover(1, -1)) // communication covers everything
	require.True(t, p.MemoryCover(1, 1))  // equal ranks
	require.False(t, p.MemoryCover(1, 2)) // different ranks
}

func TestGlobalLocalValidateAcceptsFullSync(t *testing.T) {
	sys := buildClientServer(t) // "req" sync covers only 2 of 2 processes, so this one IS global/local
	require.NoError(t, sys.RequireGlobalLocal())

	gl := por.GlobalLocal{}
	require.NoError(t, gl.Validate(sys))
}

func TestPor4AlwaysRefuses(t *testing.T) {
	sys := buildClientServer(t)
	require.ErrorIs(t, por.Por4{}.Validate(sys), por.ErrPor4Unsupported)
}

func TestByResolvesKnownPolicies(t *testing.T) {
	for _, name := range []string{"cs", "gl", "por1", "por2", "por3", "por4", "por5", "mag", "pure_local", "rr"} {
		p, err := por.By(name, "srv")
		require.NoError(t, err)
		require.Equal(t, name, p.Name())
	}
	_, err := por.By("nope", "srv")
	require.ErrorIs(t, err, por.ErrUnknownPolicy)
}
