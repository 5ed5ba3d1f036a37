package sink_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/examples"
	"github.com/tchecker-go/tchecker/sink"
	"github.com/tchecker-go/tchecker/subsumption"
	"github.com/tchecker-go/tchecker/ts"
	"github.com/tchecker-go/tchecker/zone"
)

func buildSmallGraph(t *testing.T) *subsumption.Graph[*ts.ZGState] {
	t.Helper()
	sys, err := examples.ABCD(false)
	require.NoError(t, err)

	zg := ts.NewZG(sys, zone.Semantics{Elapsed: true, Extra: zone.NoExtrapolation}, nil)
	g := subsumption.NewGraph[*ts.ZGState](subsumption.CoverInclusion)

	init := zg.Initial()
	require.Len(t, init, 1)
	n0 := &subsumption.Node[*ts.ZGState]{Key: init[0].Discrete.Key(), State: init[0], Active: true}
	require.NoError(t, g.AddNode(n0))

	edges := zg.OutgoingEdges(init[0])
	require.NotEmpty(t, edges)
	succ := init[0].Clone()
	st := zg.Next(succ, edges[0])
	require.True(t, st.OK())
	n1 := &subsumption.Node[*ts.ZGState]{Key: succ.Discrete.Key(), State: succ, Active: true}
	require.NoError(t, g.AddNode(n1))
	g.AddEdge(n0, n1, subsumption.Actual)

	return g
}

func label(s *ts.ZGState) string {
	out := "vloc="
	for _, l := range s.Discrete.Vloc {
		out += string(rune('0' + l))
	}
	return out
}

func TestWriteDOT(t *testing.T) {
	g := buildSmallGraph(t)
	var buf bytes.Buffer
	require.NoError(t, sink.WriteDOT(&buf, g, label))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "digraph tchecker {"))
	require.Contains(t, out, "->")
	require.Contains(t, out, "style=solid")
}

func TestWriteRaw(t *testing.T) {
	g := buildSmallGraph(t)
	var buf bytes.Buffer
	require.NoError(t, sink.WriteRaw(&buf, g, label))
	out := buf.String()
	require.Contains(t, out, "NODE 0")
	require.Contains(t, out, "EDGE ACTUAL")
}
