package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/covreach"
	"github.com/tchecker-go/tchecker/label"
)

func baseOptions() options {
	return options{
		cover:     "inclusion",
		format:    "raw",
		model:     "zg:elapsed:NOextra",
		order:     "bfs",
		blockSize: 64,
		tableSize: 1024,
		spread:    -1,
	}
}

func TestRunZGReachesAcceptingLabel(t *testing.T) {
	sys, err := resolveModel("abcd")
	require.NoError(t, err)

	o := baseOptions()
	out, err := runZG(sys, "elapsed", "NOextra", label.Parse("ACC"), o, covreach.BFS, 64)
	require.NoError(t, err)
	require.Equal(t, covreach.Reachable, out.verdict)

	var buf bytes.Buffer
	require.NoError(t, out.render(&buf, "raw"))
	require.Contains(t, buf.String(), "NODE")
}

func TestRunZGUnreachableLabel(t *testing.T) {
	sys, err := resolveModel("abcd-unreachable")
	require.NoError(t, err)

	o := baseOptions()
	out, err := runZG(sys, "elapsed", "NOextra", label.Parse("ACC"), o, covreach.DFS, 64)
	require.NoError(t, err)
	require.Equal(t, covreach.Unreachable, out.verdict)
}

func TestRunAsyncZGPlainLayer(t *testing.T) {
	sys, err := resolveModel("fischer:2")
	require.NoError(t, err)

	o := baseOptions()
	o.spread = -1
	out, err := runAsyncZG(sys, "", label.Parse("cs"), o, covreach.BFS, 64)
	require.NoError(t, err)
	require.Equal(t, covreach.Reachable, out.verdict)
}

func TestRunAsyncZGSynchronized(t *testing.T) {
	sys, err := resolveModel("clientserver:2")
	require.NoError(t, err)

	o := baseOptions()
	o.spread = 0
	out, err := runAsyncZG(sys, "extraLUg", label.Parse("served"), o, covreach.BFS, 64)
	require.NoError(t, err)
	require.Equal(t, covreach.Reachable, out.verdict)
}

func TestRunZGWithClientServerPOR(t *testing.T) {
	sys, err := resolveModel("clientserver:3")
	require.NoError(t, err)

	o := baseOptions()
	o.sourceSet = "cs"
	o.server = "S"
	out, err := runZG(sys, "elapsed", "NOextra", label.Parse("served"), o, covreach.BFS, 64)
	require.NoError(t, err)
	require.Equal(t, covreach.Reachable, out.verdict)
}

func TestRunZGRejectsPor4(t *testing.T) {
	sys, err := resolveModel("clientserver:2")
	require.NoError(t, err)

	o := baseOptions()
	o.sourceSet = "por4"
	o.server = "S"
	_, err = runZG(sys, "elapsed", "NOextra", label.Parse("served"), o, covreach.BFS, 64)
	require.Error(t, err)
}

func TestParseModelFlagRejectsEmptyExtrapolationForZG(t *testing.T) {
	_, _, _, err := parseModelFlag("zg:elapsed")
	require.Error(t, err)
}

func TestParseModelFlagAllowsEmptyExtrapolationForAsyncZG(t *testing.T) {
	graph, sem, extra, err := parseModelFlag("async_zg:elapsed")
	require.NoError(t, err)
	require.Equal(t, "async_zg", graph)
	require.Equal(t, "elapsed", sem)
	require.Empty(t, extra)
}

func TestResolveModelRejectsUnknownName(t *testing.T) {
	_, err := resolveModel("nonsense")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "unknown MODEL"))
}
