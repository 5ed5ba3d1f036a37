package label_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/label"
	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/ts"
)

func buildLabeledSystem(t *testing.T) *model.System {
	t.Helper()
	b := model.NewBuilder()
	b.DeclareEvent("go")
	p := b.DeclareProcess("p", 0)
	idle := p.AddLocation("idle", true, false, false, false)
	done := p.AddLocation("done", false, false, false, false)
	p.SetLabels(done, "ACC")
	p.AddEdge(idle, done, "go", nil, nil, nil, nil)
	sys, err := b.Build()
	require.NoError(t, err)
	return sys
}

func TestParseSplitsColonList(t *testing.T) {
	s := label.Parse("ACC:DONE")
	require.False(t, s.Empty())
	require.True(t, s.Matches(map[string]struct{}{"ACC": {}, "DONE": {}}))
	require.False(t, s.Matches(map[string]struct{}{"ACC": {}}))
}

func TestParseEmptyStringYieldsEmptySet(t *testing.T) {
	require.True(t, label.Parse("").Empty())
}

func TestAcceptsVlocMatchesLocationLabel(t *testing.T) {
	sys := buildLabeledSystem(t)
	s := label.Parse("ACC")
	require.False(t, s.AcceptsVloc(sys, ts.Vloc{0}))
	require.True(t, s.AcceptsVloc(sys, ts.Vloc{1}))
}

func TestEmptySetNeverAccepts(t *testing.T) {
	sys := buildLabeledSystem(t)
	s := label.NewSet()
	require.False(t, s.AcceptsVloc(sys, ts.Vloc{1}))
}
