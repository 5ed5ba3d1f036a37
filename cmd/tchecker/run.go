package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tchecker-go/tchecker/covreach"
	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/label"
	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/pool"
	"github.com/tchecker-go/tchecker/por"
	"github.com/tchecker-go/tchecker/sink"
	"github.com/tchecker-go/tchecker/subsumption"
	"github.com/tchecker-go/tchecker/ts"
	"github.com/tchecker-go/tchecker/zone"
)

// outcome is what every graph-kind branch of run produces: a verdict, its
// statistics, and a closure able to render the graph it built without
// leaking that graph's concrete state type out of this file.
type outcome struct {
	verdict covreach.Verdict
	stats   covreach.Stats
	render  func(w io.Writer, format string) error
}

func run(o options, modelArg string) error {
	sys, err := resolveModel(modelArg)
	if err != nil {
		return fmt.Errorf("model: %w", err)
	}

	var order covreach.Order
	switch o.order {
	case "bfs":
		order = covreach.BFS
	case "dfs":
		order = covreach.DFS
	default:
		return fmt.Errorf("invalid -s waiting policy %q: want bfs or dfs", o.order)
	}

	graphKind, semKind, extraTok, err := parseModelFlag(o.model)
	if err != nil {
		return err
	}

	blockSize := o.blockSize
	if blockSize <= 0 {
		blockSize = 10000
	}
	accept := label.Parse(o.labels)

	var out outcome
	switch graphKind {
	case "zg":
		out, err = runZG(sys, semKind, extraTok, accept, o, order, blockSize)
	case "async_zg":
		out, err = runAsyncZG(sys, extraTok, accept, o, order, blockSize)
	default:
		return fmt.Errorf("invalid -m graph %q", graphKind)
	}
	if err != nil {
		return err
	}

	w := os.Stdout
	if o.output != "" {
		f, ferr := os.Create(o.output)
		if ferr != nil {
			return fmt.Errorf("open -o output: %w", ferr)
		}
		defer f.Close()
		w = f
	}

	fmt.Fprintln(w, out.verdict.String())
	if o.stats {
		fmt.Fprintf(w, "STATES %d\n", out.stats.Visited)
		fmt.Fprintf(w, "COVERED_LEAF %d\n", out.stats.CoveredLeaf)
		fmt.Fprintf(w, "COVERED_NONLEAF %d\n", out.stats.CoveredNonLeaf)
		slog.Info("covreach run complete",
			"verdict", out.verdict.String(),
			"visited", out.stats.Visited,
			"covered_leaf", out.stats.CoveredLeaf,
			"covered_nonleaf", out.stats.CoveredNonLeaf)
	}

	switch o.format {
	case "dot", "raw":
		if err := out.render(w, o.format); err != nil {
			return fmt.Errorf("write -f %s graph: %w", o.format, err)
		}
	default:
		return fmt.Errorf("invalid -f output format %q: want dot or raw", o.format)
	}
	return nil
}

// runGeneric owns the part of a run common to every graph/POR
// combination: graph+pool setup, the covreach.Run call, and the
// cancellation protocol (spec.md §5) on failure.
func runGeneric[S any](
	tsys ts.TS[S],
	cover subsumption.Cover[S],
	keyOf func(S) uint64,
	clone func(S) S,
	accepting func(S) bool,
	order covreach.Order,
	blockSize int,
	label sink.NodeLabeler[S],
) (outcome, error) {
	graph := subsumption.NewGraph[S](cover)
	p := pool.New[*subsumption.Node[S]](blockSize, func() *subsumption.Node[S] {
		return &subsumption.Node[S]{}
	})
	p.Start()

	res, err := covreach.Run(covreach.Config[S]{
		TS:        tsys,
		Graph:     graph,
		Pool:      p,
		Clone:     clone,
		KeyOf:     keyOf,
		Accepting: accepting,
		Order:     order,
	})
	if err != nil {
		p.Stop()
		p.FreeAll()
		graph.Clear()
		return outcome{}, err
	}
	p.Stop()

	return outcome{
		verdict: res.Verdict,
		stats:   res.Stats,
		render: func(w io.Writer, format string) error {
			if format == "dot" {
				return sink.WriteDOT(w, graph, label)
			}
			return sink.WriteRaw(w, graph, label)
		},
	}, nil
}

func zgCover(name string, bounds zone.Bounds) (subsumption.Cover[*ts.ZGState], error) {
	switch name {
	case "inclusion":
		return subsumption.CoverInclusion, nil
	case "aMg":
		return subsumption.CoverAMGlobal(bounds.M), nil
	case "aMl":
		return subsumption.CoverAMLocal(func(*ts.DiscreteState) []int64 { return bounds.M }), nil
	case "aLUg":
		return subsumption.CoverALUGlobal(bounds.Lower, bounds.Upper), nil
	case "aLUl":
		return subsumption.CoverALULocal(func(*ts.DiscreteState) zone.Bounds { return bounds }), nil
	default:
		return nil, fmt.Errorf("invalid -c cover predicate %q", name)
	}
}

func azgCover(name string, bounds zone.Bounds) (subsumption.Cover[*ts.AZGState], error) {
	switch name {
	case "inclusion":
		return subsumption.CoverAsyncInclusion, nil
	case "aMg":
		return subsumption.CoverAsyncAM(bounds.M), nil
	default:
		return nil, fmt.Errorf("-c %q is not wired for async_zg without synchronized-zone tracking (only inclusion/aMg)", name)
	}
}

// azgSyncCoverInclusion compares two AZGSyncState nodes' already-projected
// Sync DBMs directly (spec.md §4.7 "cover_sync_inclusion"), rather than
// re-synchronizing from the offset-DBM the way subsumption.CoverSyncInclusion
// does for bare AZGState — the AZGSync layer has already paid that cost.
func azgSyncCoverInclusion(n, c *subsumption.Node[*ts.AZGSyncState]) bool {
	if n.State.Sync == nil || c.State.Sync == nil {
		return false
	}
	nd, cd := n.State.AZG.Discrete, c.State.AZG.Discrete
	if !nd.Vloc.Equal(cd.Vloc) || !nd.IntVal.Equal(cd.IntVal) {
		return false
	}
	le, err := dbm.IsLE(n.State.Sync, c.State.Sync)
	return err == nil && le
}

func runZG(sys *model.System, semKind, extraTok string, accept label.Set, o options, order covreach.Order, blockSize int) (outcome, error) {
	extra, _, err := parseExtra(extraTok)
	if err != nil {
		return outcome{}, err
	}
	bounds := computeGlobalBounds(sys)
	boundsFn := func(ts.Vloc) zone.Bounds { return bounds }

	sem := zone.Semantics{Elapsed: semKind == "elapsed", Extra: extra}
	zg := ts.NewZG(sys, sem, boundsFn)

	cover, err := zgCover(o.cover, bounds)
	if err != nil {
		return outcome{}, err
	}

	vlocOf := func(s *ts.ZGState) ts.Vloc { return s.Discrete.Vloc }
	keyOf := func(s *ts.ZGState) uint64 { return s.Discrete.Key() }
	clone := func(s *ts.ZGState) *ts.ZGState { return s.Clone() }
	accepting := func(s *ts.ZGState) bool { return accept.AcceptsVloc(sys, s.Discrete.Vloc) }
	lbl := func(s *ts.ZGState) string { return formatVloc(sys, s.Discrete.Vloc) }

	if o.sourceSet == "" {
		return runGeneric[*ts.ZGState](zg.AsTS(), cover, keyOf, clone, accepting, order, blockSize, lbl)
	}

	policy, err := por.By(o.sourceSet, o.server)
	if err != nil {
		return outcome{}, err
	}
	if err := policy.Validate(sys); err != nil {
		return outcome{}, fmt.Errorf("--source-set: %w", err)
	}

	wrapped := por.New[*ts.ZGState](zg.AsTS(), policy, sys, vlocOf)
	wCover := por.WrapCover[*ts.ZGState](cover, policy)
	wKeyOf := func(s *por.PState[*ts.ZGState]) uint64 { return keyOf(s.Base) }
	wClone := func(s *por.PState[*ts.ZGState]) *por.PState[*ts.ZGState] {
		return &por.PState[*ts.ZGState]{Base: clone(s.Base), Memory: s.Memory}
	}
	wAccepting := func(s *por.PState[*ts.ZGState]) bool { return accepting(s.Base) }
	wLabel := func(s *por.PState[*ts.ZGState]) string { return lbl(s.Base) }

	return runGeneric[*por.PState[*ts.ZGState]](wrapped, wCover, wKeyOf, wClone, wAccepting, order, blockSize, wLabel)
}

// refMapFor builds the global-clock -> owning-process-ID table an AZG
// layer needs, from the offsets model.Builder.Build already assigned
// (spec.md §4.4 "reference clocks ... one per process").
func refMapFor(sys *model.System) (refCount int, refMap []int) {
	refMap = make([]int, sys.ClockCount-1)
	for _, p := range sys.Processes {
		for i := 0; i < p.ClockCount; i++ {
			refMap[p.ClockOffset-1+i] = p.ID
		}
	}
	return len(sys.Processes), refMap
}

func runAsyncZG(sys *model.System, extraTok string, accept label.Set, o options, order covreach.Order, blockSize int) (outcome, error) {
	refCount, refMap := refMapFor(sys)
	azg := ts.NewAZG(sys, refCount, refMap, o.spread)
	bounds := computeGlobalBounds(sys)

	if extraTok == "" {
		cover, err := azgCover(o.cover, bounds)
		if err != nil {
			return outcome{}, err
		}

		vlocOf := func(s *ts.AZGState) ts.Vloc { return s.Discrete.Vloc }
		keyOf := func(s *ts.AZGState) uint64 { return s.Discrete.Key() }
		clone := func(s *ts.AZGState) *ts.AZGState { return s.Clone() }
		accepting := func(s *ts.AZGState) bool { return accept.AcceptsVloc(sys, s.Discrete.Vloc) }
		lbl := func(s *ts.AZGState) string { return formatVloc(sys, s.Discrete.Vloc) }

		if o.sourceSet == "" {
			return runGeneric[*ts.AZGState](azg.AsTS(), cover, keyOf, clone, accepting, order, blockSize, lbl)
		}

		policy, err := por.By(o.sourceSet, o.server)
		if err != nil {
			return outcome{}, err
		}
		if err := policy.Validate(sys); err != nil {
			return outcome{}, fmt.Errorf("--source-set: %w", err)
		}

		wrapped := por.New[*ts.AZGState](azg.AsTS(), policy, sys, vlocOf)
		wCover := por.WrapCover[*ts.AZGState](cover, policy)
		wKeyOf := func(s *por.PState[*ts.AZGState]) uint64 { return keyOf(s.Base) }
		wClone := func(s *por.PState[*ts.AZGState]) *por.PState[*ts.AZGState] {
			return &por.PState[*ts.AZGState]{Base: clone(s.Base), Memory: s.Memory}
		}
		wAccepting := func(s *por.PState[*ts.AZGState]) bool { return accepting(s.Base) }
		wLabel := func(s *por.PState[*ts.AZGState]) string { return lbl(s.Base) }

		return runGeneric[*por.PState[*ts.AZGState]](wrapped, wCover, wKeyOf, wClone, wAccepting, order, blockSize, wLabel)
	}

	extra, _, err := parseExtra(extraTok)
	if err != nil {
		return outcome{}, err
	}
	boundsFn := func(ts.Vloc) zone.Bounds { return bounds }
	azgSync := ts.NewAZGSync(sys, azg, extra, boundsFn)

	if o.cover != "inclusion" {
		return outcome{}, fmt.Errorf("-c %q is not wired for synchronized async_zg (only inclusion)", o.cover)
	}
	cover := azgSyncCoverInclusion

	vlocOf := func(s *ts.AZGSyncState) ts.Vloc { return s.AZG.Discrete.Vloc }
	keyOf := func(s *ts.AZGSyncState) uint64 { return s.AZG.Discrete.Key() }
	clone := func(s *ts.AZGSyncState) *ts.AZGSyncState { return s.Clone() }
	accepting := func(s *ts.AZGSyncState) bool { return accept.AcceptsVloc(sys, vlocOf(s)) }
	lbl := func(s *ts.AZGSyncState) string { return formatVloc(sys, vlocOf(s)) }

	if o.sourceSet == "" {
		return runGeneric[*ts.AZGSyncState](azgSync.AsTS(), cover, keyOf, clone, accepting, order, blockSize, lbl)
	}

	policy, err := por.By(o.sourceSet, o.server)
	if err != nil {
		return outcome{}, err
	}
	if err := policy.Validate(sys); err != nil {
		return outcome{}, fmt.Errorf("--source-set: %w", err)
	}

	wrapped := por.New[*ts.AZGSyncState](azgSync.AsTS(), policy, sys, vlocOf)
	wCover := por.WrapCover[*ts.AZGSyncState](cover, policy)
	wKeyOf := func(s *por.PState[*ts.AZGSyncState]) uint64 { return keyOf(s.Base) }
	wClone := func(s *por.PState[*ts.AZGSyncState]) *por.PState[*ts.AZGSyncState] {
		return &por.PState[*ts.AZGSyncState]{Base: clone(s.Base), Memory: s.Memory}
	}
	wAccepting := func(s *por.PState[*ts.AZGSyncState]) bool { return accepting(s.Base) }
	wLabel := func(s *por.PState[*ts.AZGSyncState]) string { return lbl(s.Base) }

	return runGeneric[*por.PState[*ts.AZGSyncState]](wrapped, wCover, wKeyOf, wClone, wAccepting, order, blockSize, wLabel)
}
