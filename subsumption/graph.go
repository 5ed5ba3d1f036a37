package subsumption

import (
	"sync"

	"github.com/tchecker-go/tchecker/pool"
)

// EdgeKind distinguishes a transition actually computed by the TS from
// one introduced by the covering engine itself (spec.md §3 "Edge").
type EdgeKind int

const (
	// Actual marks an edge that corresponds to a successfully computed TS
	// transition.
	Actual EdgeKind = iota
	// Abstract marks an edge introduced when a successor was subsumed by
	// an existing node.
	Abstract
)

// Node is a single covering-reachability graph vertex: a symbolic state
// of type S (typically *ts.ZGState or *ts.AZGState), a discrete signature
// Key used for hash-bucketing (spec.md §3 "Node ... key (hash of (vloc,
// intvars_val) only — not the zone)"), the Active flag cleared when the
// node is removed by subsumption, and an opaque POR-memory slot. Nothing
// in this module sets that slot: the por package keeps a policy's memory
// in por.PState instead.
//
// Node embeds pool.Handle and implements pool.Record so a Graph's nodes
// can be owned by a pool.Pool[*Node[S]] (spec.md §4.6).
type Node[S any] struct {
	pool.Handle

	Key       uint64
	State     S
	Active    bool
	PORMemory any
}

// Reset clears a Node before its slot is reused from a pool free-list.
func (n *Node[S]) Reset() {
	var zero S
	n.Key = 0
	n.State = zero
	n.Active = false
	n.PORMemory = nil
}

// Edge is a single graph edge, stored on both endpoints' adjacency lists
// (spec.md §3 "Edge ... stored both as adjacency out of source and into
// target").
type Edge[S any] struct {
	Src, Tgt *Node[S]
	Kind     EdgeKind
}

// Cover reports whether c covers n (storing c is sufficient for
// exploring n, spec.md GLOSSARY "Subsumption (covering)"): n ⊆ α(c) under
// whichever inclusion/abstraction the concrete predicate implements.
// Implementations must compare discrete equality (Key) themselves when
// the policy in use requires it (spec.md §9 design note 4).
type Cover[S any] func(n, c *Node[S]) bool

// Graph is the hash-indexed subsumption graph of spec.md §4.7. Nodes are
// bucketed by Key; within a bucket, Cover decides inclusion. Grounded on
// lvlath's core.Graph (core/types.go): a sync.RWMutex guarding the node
// table, a second guarding edges/adjacency — the same "one lock per
// independently-mutable structure" split.
type Graph[S any] struct {
	muNodes sync.RWMutex
	buckets map[uint64][]*Node[S]
	count   int

	muEdges sync.RWMutex
	out     map[*Node[S]][]*Edge[S]
	in      map[*Node[S]][]*Edge[S]

	cover Cover[S]
}

// NewGraph returns an empty Graph using cover as its covering predicate.
func NewGraph[S any](cover Cover[S]) *Graph[S] {
	return &Graph[S]{
		buckets: make(map[uint64][]*Node[S]),
		out:     make(map[*Node[S]][]*Edge[S]),
		in:      make(map[*Node[S]][]*Edge[S]),
		cover:   cover,
	}
}

// AddNode inserts n into the bucket for its key. No covering decision is
// made here; the algorithm in the covreach package invokes IsCovered
// separately (spec.md §4.7 "add_node ... makes no covering decision
// here"). Thread-safe: acquires a write lock.
func (g *Graph[S]) AddNode(n *Node[S]) error {
	if n == nil {
		return ErrNilNode
	}
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	g.buckets[n.Key] = append(g.buckets[n.Key], n)
	g.count++
	return nil
}

// IsCovered reports whether some active stored node c in n's bucket
// satisfies cover(n, c); when true, c is returned (spec.md §4.7
// "is_covered(n, &covering)"). Thread-safe: acquires a read lock.
//
// Complexity: O(bucket size).
func (g *Graph[S]) IsCovered(n *Node[S]) (*Node[S], bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	for _, c := range g.buckets[n.Key] {
		if c == n || !c.Active {
			continue
		}
		if g.cover(n, c) {
			return c, true
		}
	}
	return nil, false
}

// CoveredNodes emits every active stored node c in n's bucket such that
// cover(c, n) — nodes n dominates (spec.md §4.7 "covered_nodes(n, out)").
// Thread-safe: acquires a read lock.
func (g *Graph[S]) CoveredNodes(n *Node[S]) []*Node[S] {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	var out []*Node[S]
	for _, c := range g.buckets[n.Key] {
		if c == n || !c.Active {
			continue
		}
		if g.cover(c, n) {
			out = append(out, c)
		}
	}
	return out
}

// AddEdge appends an edge to both src's outgoing and tgt's incoming
// adjacency lists (spec.md §4.7 "add_edge(src, tgt, kind)"). Thread-safe:
// acquires the edges write lock.
func (g *Graph[S]) AddEdge(src, tgt *Node[S], kind EdgeKind) {
	e := &Edge[S]{Src: src, Tgt: tgt, Kind: kind}
	g.muEdges.Lock()
	defer g.muEdges.Unlock()
	g.out[src] = append(g.out[src], e)
	g.in[tgt] = append(g.in[tgt], e)
}

// MoveIncomingEdges redirects every edge into from so it instead points
// into to, relabelling it newKind (spec.md §4.7 "move_incoming_edges
// ... used when subsuming"). Thread-safe: acquires the edges write lock.
func (g *Graph[S]) MoveIncomingEdges(from, to *Node[S], newKind EdgeKind) {
	g.muEdges.Lock()
	defer g.muEdges.Unlock()
	edges := g.in[from]
	delete(g.in, from)
	for _, e := range edges {
		e.Tgt = to
		e.Kind = newKind
		g.in[to] = append(g.in[to], e)
		// Keep the source's outgoing list pointing at the same *Edge
		// value, which already reflects the new target via the shared
		// pointer — no separate update needed there.
	}
}

// RemoveEdges detaches every edge touching n, from both adjacency sides.
// Thread-safe: acquires the edges write lock.
func (g *Graph[S]) RemoveEdges(n *Node[S]) {
	g.muEdges.Lock()
	defer g.muEdges.Unlock()
	for _, e := range g.out[n] {
		g.in[e.Tgt] = removeEdge(g.in[e.Tgt], e)
	}
	for _, e := range g.in[n] {
		g.out[e.Src] = removeEdge(g.out[e.Src], e)
	}
	delete(g.out, n)
	delete(g.in, n)
}

func removeEdge[S any](edges []*Edge[S], target *Edge[S]) []*Edge[S] {
	out := edges[:0]
	for _, e := range edges {
		if e != target {
			out = append(out, e)
		}
	}
	return out
}

// RemoveNode detaches n's edges and removes it from its bucket; it does
// not release n back to a pool (spec.md §4.7 "remove_node(n)" pairs with
// a pool Release at the call site, not here). Thread-safe: acquires both
// locks in sequence.
func (g *Graph[S]) RemoveNode(n *Node[S]) error {
	g.RemoveEdges(n)

	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	bucket := g.buckets[n.Key]
	for i, c := range bucket {
		if c == n {
			g.buckets[n.Key] = append(bucket[:i], bucket[i+1:]...)
			g.count--
			return nil
		}
	}
	return ErrNodeNotFound
}

// NodesCount returns the number of nodes currently stored. Thread-safe:
// acquires a read lock.
func (g *Graph[S]) NodesCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return g.count
}

// Outgoing returns n's outgoing edges.
func (g *Graph[S]) Outgoing(n *Node[S]) []*Edge[S] {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	return append([]*Edge[S](nil), g.out[n]...)
}

// Incoming returns n's incoming edges.
func (g *Graph[S]) Incoming(n *Node[S]) []*Edge[S] {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	return append([]*Edge[S](nil), g.in[n]...)
}

// AllNodes returns every stored node across all buckets, for final graph
// output (spec.md §6 "-f dot / raw").
func (g *Graph[S]) AllNodes() []*Node[S] {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	var out []*Node[S]
	for _, bucket := range g.buckets {
		out = append(out, bucket...)
	}
	return out
}

// Clear empties the graph of every node and edge. Used by the cancellation
// protocol (spec.md §5): a run() that raises an error discards every
// partial node/edge it built before the error reaches the caller, so no
// half-explored graph is ever mistaken for a complete one.
func (g *Graph[S]) Clear() {
	g.muNodes.Lock()
	g.buckets = make(map[uint64][]*Node[S])
	g.count = 0
	g.muNodes.Unlock()

	g.muEdges.Lock()
	g.out = make(map[*Node[S]][]*Edge[S])
	g.in = make(map[*Node[S]][]*Edge[S])
	g.muEdges.Unlock()
}
