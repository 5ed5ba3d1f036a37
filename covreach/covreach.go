package covreach

import (
	"github.com/tchecker-go/tchecker/pool"
	"github.com/tchecker-go/tchecker/subsumption"
	"github.com/tchecker-go/tchecker/ts"
)

// Verdict is the two-outcome result of a covering-reachability run
// (spec.md §4.8 "Verdict: REACHABLE iff some accepting node was dequeued;
// UNREACHABLE iff waiting empties without such a dequeue").
type Verdict int

const (
	Unreachable Verdict = iota
	Reachable
)

// String renders a Verdict the way spec.md §6's stdout contract prints it:
// "REACHABLE true|false".
func (v Verdict) String() string {
	if v == Reachable {
		return "REACHABLE true"
	}
	return "REACHABLE false"
}

// Stats accumulates the run's statistics, emitted when the CLI's -S flag
// is set (spec.md §6).
type Stats struct {
	Visited        int
	CoveredLeaf    int
	CoveredNonLeaf int
}

// Result is Run's return value.
type Result[S any] struct {
	Verdict Verdict
	Stats   Stats
	// Accepting holds the accepting node's state when Verdict is
	// Reachable, nil otherwise. Spec.md §1 scopes witness extraction
	// beyond this reach/unreach verdict as a non-goal, so no trace is
	// reconstructed from it.
	Accepting S
}

// Config configures one Run, following the teacher's functional-options-
// adjacent "validate up front, documented defaults" convention
// (dijkstra.Options/DefaultOptions) generalized to a plain struct since
// every field here is mandatory — a covering-reachability run has no
// sensible default transition system or graph.
type Config[S any] struct {
	// TS is the (possibly POR-wrapped) transition system to explore.
	TS ts.TS[S]

	// Graph is the subsumption graph nodes are inserted into; its Cover
	// predicate determines what "covered" means for this run (spec.md
	// §4.7).
	Graph *subsumption.Graph[S]

	// Pool allocates and reclaims subsumption.Node[S] records (spec.md
	// §4.6); Run neither starts nor stops its GC goroutine — the caller
	// owns the pool's lifecycle (see spec.md §5 "Cancellation").
	Pool *pool.Pool[*subsumption.Node[S]]

	// Clone returns an independent deep copy of a state, used before
	// calling TS.Next (which mutates in place) so the predecessor state
	// the graph already holds is never overwritten.
	Clone func(S) S

	// KeyOf computes a Node's discrete-signature bucket key from a state
	// (spec.md §3 "Node ... key (hash of (vloc, intvars_val) only — not
	// the zone)"); its exact shape (whether POR memory participates) is a
	// property of the layer, not of Run.
	KeyOf func(S) uint64

	// Accepting reports whether a state satisfies the query's accepting
	// condition. Must be monotone with respect to Graph.Cover (spec.md
	// §4.8 invariant 4): if Accepting(n) then Accepting(n') for every n'
	// covering n would cover n's successor.
	Accepting func(S) bool

	// Order selects the waiting-set discipline (spec.md §4.8).
	Order Order
}

// Run executes the covering-reachability algorithm of spec.md §4.8 to
// termination (or divergence, if the chosen extrapolation admits
// infinitely many abstract states — spec.md §4.8 "Termination").
//
// Complexity: O(V + E) symbolic steps where V is the number of nodes
// admitted into the graph and E the number of vedges explored from them,
// plus O(V) amortized waiting-set operations per spec.md §4.8's "remove(c)
// must operate in O(log N) or amortized constant" requirement — satisfied
// here by waitingSet's linked hash-set backing.
//
// Preconditions and validation, in order, mirroring the teacher's staged
// numbered-comment convention (dijkstra.Dijkstra):
//  1. cfg.TS, cfg.Graph, cfg.Pool, cfg.Clone, cfg.KeyOf and cfg.Accepting
//     must all be non-nil — Run panics on a nil Config field rather than
//     returning an error, since this is a caller-assembled wiring mistake,
//     not a runtime condition (spec.md §7 distinguishes model-structural
//     refusals, which the por/cmd packages report, from programmer error).
func Run[S any](cfg Config[S]) (Result[S], error) {
	requireConfig(cfg)

	var stats Stats
	waiting := newWaitingSet[*subsumption.Node[S]](cfg.Order)

	// expand_initial(nodes); waiting.insert_all(nodes) (spec.md §4.8).
	var initial []*subsumption.Node[S]
	for _, s := range cfg.TS.Initial() {
		n := cfg.Pool.Alloc()
		n.Key = cfg.KeyOf(s)
		n.State = s
		n.Active = true
		if err := cfg.Graph.AddNode(n); err != nil {
			return Result[S]{}, err
		}
		initial = append(initial, n)
	}
	insertBatch(waiting, initial)

	for waiting.Len() > 0 {
		n := waiting.Pop()
		stats.Visited++

		if cfg.Accepting(n.State) {
			return Result[S]{Verdict: Reachable, Stats: stats, Accepting: n.State}, nil
		}

		nodes, err := expand(cfg, n)
		if err != nil {
			return Result[S]{}, err
		}

		var survivors []*subsumption.Node[S]
		for _, m := range nodes {
			if !m.Active {
				continue // killed by an earlier m' in this same batch
			}
			if c, ok := cfg.Graph.IsCovered(m); ok {
				if err := coverNode(cfg.Graph, cfg.Pool, m, c); err != nil {
					return Result[S]{}, err
				}
				stats.CoveredLeaf++
				continue
			}
			survivors = append(survivors, m)
			for _, c := range cfg.Graph.CoveredNodes(m) {
				waiting.Remove(c)
				if err := coverNode(cfg.Graph, cfg.Pool, c, m); err != nil {
					return Result[S]{}, err
				}
				stats.CoveredNonLeaf++
			}
		}
		active := survivors[:0]
		for _, s := range survivors {
			if s.Active {
				active = append(active, s) // drop survivors a later batch-mate covered
			}
		}
		insertBatch(waiting, active)
	}

	return Result[S]{Verdict: Unreachable, Stats: stats}, nil
}

// expand computes every successor of n and adds the resulting nodes and
// ACTUAL edges to the graph (spec.md §4.8 "expand(n, nodes) # adds ACTUAL
// edges to graph"). A vedge whose TS.Next fails with a non-OK status is
// silently dropped — spec.md §7 "Local recovery: ... recovered locally as
// well — they are expected and frequent."
func expand[S any](cfg Config[S], n *subsumption.Node[S]) ([]*subsumption.Node[S], error) {
	var nodes []*subsumption.Node[S]
	for _, vedge := range cfg.TS.OutgoingEdges(n.State) {
		succ := cfg.Clone(n.State)
		if st := cfg.TS.Next(succ, vedge); !st.OK() {
			continue
		}
		m := cfg.Pool.Alloc()
		m.Key = cfg.KeyOf(succ)
		m.State = succ
		m.Active = true
		if err := cfg.Graph.AddNode(m); err != nil {
			return nil, err
		}
		cfg.Graph.AddEdge(n, m, subsumption.Actual)
		nodes = append(nodes, m)
	}
	return nodes, nil
}

// coverNode records that winner covers loser (spec.md §4.8 "cover(m, c,
// ABSTRACT)"): loser's incoming edges are redirected onto winner as
// ABSTRACT edges, loser is deactivated, detached from the graph and
// released back to the pool (spec.md §4.6 — reclaimed asynchronously by
// the GC goroutine, not freed here).
func coverNode[S any](g *subsumption.Graph[S], p *pool.Pool[*subsumption.Node[S]], loser, winner *subsumption.Node[S]) error {
	g.MoveIncomingEdges(loser, winner, subsumption.Abstract)
	loser.Active = false
	if err := g.RemoveNode(loser); err != nil {
		return err
	}
	return p.Release(loser)
}

func requireConfig[S any](cfg Config[S]) {
	if cfg.TS == nil || cfg.Graph == nil || cfg.Pool == nil || cfg.Clone == nil || cfg.KeyOf == nil || cfg.Accepting == nil {
		panic("covreach.Run: incomplete Config")
	}
}
