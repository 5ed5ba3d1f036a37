package subsumption_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/intstmt"
	"github.com/tchecker-go/tchecker/subsumption"
	"github.com/tchecker-go/tchecker/ts"
	"github.com/tchecker-go/tchecker/zone"
)

func newZGNode(t *testing.T, vloc ts.Vloc, upperBound int64) *subsumption.Node[*ts.ZGState] {
	t.Helper()
	z, err := zone.NewZone(2)
	require.NoError(t, err)
	z.DBM().UniversalPositive()
	if upperBound >= 0 {
		st, err := z.DBM().Constrain(1, 0, dbm.LE(upperBound))
		require.NoError(t, err)
		require.NotEqual(t, dbm.Empty, st)
	}
	d := &ts.DiscreteState{Vloc: vloc, IntVal: &intstmt.Valuation{}}
	n := &subsumption.Node[*ts.ZGState]{
		Key:    d.Key(),
		State:  &ts.ZGState{Discrete: d, Zone: z},
		Active: true,
	}
	return n
}

func TestGraphAddNodeAndCount(t *testing.T) {
	g := subsumption.NewGraph(subsumption.CoverInclusion)
	n := newZGNode(t, ts.Vloc{0, 0}, 5)
	require.NoError(t, g.AddNode(n))
	require.Equal(t, 1, g.NodesCount())
}

func TestGraphAddNodeRejectsNil(t *testing.T) {
	g := subsumption.NewGraph(subsumption.CoverInclusion)
	require.ErrorIs(t, g.AddNode(nil), subsumption.ErrNilNode)
}

func TestCoverInclusionCoversTighterZone(t *testing.T) {
	g := subsumption.NewGraph(subsumption.CoverInclusion)
	wide := newZGNode(t, ts.Vloc{0, 0}, 10)
	require.NoError(t, g.AddNode(wide))

	tight := newZGNode(t, ts.Vloc{0, 0}, 3)
	covering, ok := g.IsCovered(tight)
	require.True(t, ok)
	require.Same(t, wide, covering)
}

func TestCoverInclusionRejectsDifferentDiscreteState(t *testing.T) {
	g := subsumption.NewGraph(subsumption.CoverInclusion)
	other := newZGNode(t, ts.Vloc{1, 0}, 10)
	require.NoError(t, g.AddNode(other))

	n := newZGNode(t, ts.Vloc{0, 0}, 3)
	_, ok := g.IsCovered(n)
	require.False(t, ok)
}

func TestCoveredNodesReturnsDominatedNodes(t *testing.T) {
	g := subsumption.NewGraph(subsumption.CoverInclusion)
	wide := newZGNode(t, ts.Vloc{0, 0}, 10)
	tight := newZGNode(t, ts.Vloc{0, 0}, 3)
	require.NoError(t, g.AddNode(wide))
	require.NoError(t, g.AddNode(tight))

	dominated := g.CoveredNodes(wide)
	require.Len(t, dominated, 1)
	require.Same(t, tight, dominated[0])
}

func TestIsCoveredIgnoresInactiveNodes(t *testing.T) {
	g := subsumption.NewGraph(subsumption.CoverInclusion)
	wide := newZGNode(t, ts.Vloc{0, 0}, 10)
	wide.Active = false
	require.NoError(t, g.AddNode(wide))

	tight := newZGNode(t, ts.Vloc{0, 0}, 3)
	_, ok := g.IsCovered(tight)
	require.False(t, ok)
}

func TestAddEdgeAndRemoveNodeDetachesAdjacency(t *testing.T) {
	g := subsumption.NewGraph(subsumption.CoverInclusion)
	a := newZGNode(t, ts.Vloc{0, 0}, 10)
	b := newZGNode(t, ts.Vloc{1, 0}, 10)
	require.NoError(t, g.AddNode(a))
	require.NoError(t, g.AddNode(b))
	g.AddEdge(a, b, subsumption.Actual)

	require.Len(t, g.Outgoing(a), 1)
	require.Len(t, g.Incoming(b), 1)

	require.NoError(t, g.RemoveNode(b))
	require.Len(t, g.Outgoing(a), 0)
	require.Equal(t, 1, g.NodesCount())
}

func TestRemoveNodeUnknownReturnsErrNodeNotFound(t *testing.T) {
	g := subsumption.NewGraph(subsumption.CoverInclusion)
	a := newZGNode(t, ts.Vloc{0, 0}, 10)
	require.ErrorIs(t, g.RemoveNode(a), subsumption.ErrNodeNotFound)
}

func TestMoveIncomingEdgesRedirectsTarget(t *testing.T) {
	g := subsumption.NewGraph(subsumption.CoverInclusion)
	a := newZGNode(t, ts.Vloc{0, 0}, 10)
	b := newZGNode(t, ts.Vloc{1, 0}, 10)
	c := newZGNode(t, ts.Vloc{2, 0}, 10)
	require.NoError(t, g.AddNode(a))
	require.NoError(t, g.AddNode(b))
	require.NoError(t, g.AddNode(c))
	g.AddEdge(a, b, subsumption.Actual)

	g.MoveIncomingEdges(b, c, subsumption.Abstract)
	require.Len(t, g.Incoming(b), 0)
	redirected := g.Incoming(c)
	require.Len(t, redirected, 1)
	require.Equal(t, subsumption.Abstract, redirected[0].Kind)
	require.Same(t, a, redirected[0].Src)
}

func TestCoverAMGlobalAbstractsBoundedDifference(t *testing.T) {
	// With M=2, any clock value above 2 is abstracted to the same class,
	// so a zone bounded by 10 is covered by one bounded by 3 even though
	// plain inclusion would reject it.
	narrow := newZGNode(t, ts.Vloc{0, 0}, 3)
	loose := newZGNode(t, ts.Vloc{0, 0}, 10)
	cover := subsumption.CoverAMGlobal([]int64{0, 2})
	require.True(t, cover(loose, narrow))
}
