package por

import (
	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/status"
	"github.com/tchecker-go/tchecker/subsumption"
	"github.com/tchecker-go/tchecker/ts"
)

// Policy is a partial-order-reduction policy (spec.md §4.9): a rule for
// cutting down the vedges explored at a state (the source set), a rule
// for how taking a vedge updates the policy's own memory, and a rule for
// comparing two memory values during covering. Policies operate purely
// on (vloc, memory) — the clock/zone part of a state is opaque to them,
// which is why one Policy value works across the ZG, AZG and AZG-sync
// layers alike.
type Policy interface {
	// Name identifies the policy as named on the --source-set flag.
	Name() string

	// Validate reports a model-structural mismatch (spec.md §7) between
	// this policy and sys, e.g. cs/gl/por* on a system that is not
	// client/server or global/local.
	Validate(sys *model.System) error

	// InitialMemory returns the POR memory of an initial state.
	InitialMemory(sys *model.System, vloc ts.Vloc) any

	// SourceSet filters vedges down to the subset this policy requires
	// exploring from (vloc, memory).
	SourceSet(sys *model.System, vloc ts.Vloc, memory any, vedges []ts.Vedge) []ts.Vedge

	// NextMemory computes the memory that results from firing taken;
	// before and after are the discrete location tuples immediately
	// before and after the step.
	NextMemory(sys *model.System, before, after ts.Vloc, memory any, taken ts.Vedge) any

	// MemoryCover reports whether memory value c covers memory value n,
	// independent of whatever the base layer's own cover predicate
	// decides about the clock/zone part.
	MemoryCover(n, c any) bool
}

// PState decorates a base transition-system state with POR memory.
type PState[S any] struct {
	Base   S
	Memory any
}

// Wrapped composes a base ts.TS[S] layer with a Policy, implementing
// ts.TS[*PState[S]] (spec.md §4.9 "plugged into the TS layer").
type Wrapped[S any] struct {
	Base   ts.TS[S]
	Policy Policy
	Sys    *model.System
	VlocOf func(S) ts.Vloc
}

// New wraps base with policy. vlocOf extracts the discrete location
// tuple from a layer's state (e.g. func(s *ts.ZGState) ts.Vloc { return
// s.Discrete.Vloc }).
func New[S any](base ts.TS[S], policy Policy, sys *model.System, vlocOf func(S) ts.Vloc) *Wrapped[S] {
	return &Wrapped[S]{Base: base, Policy: policy, Sys: sys, VlocOf: vlocOf}
}

// Initial returns the base layer's initial states, each paired with the
// policy's initial memory.
func (w *Wrapped[S]) Initial() []*PState[S] {
	bases := w.Base.Initial()
	out := make([]*PState[S], len(bases))
	for i, b := range bases {
		out[i] = &PState[S]{Base: b, Memory: w.Policy.InitialMemory(w.Sys, w.VlocOf(b))}
	}
	return out
}

// OutgoingEdges returns the base layer's vedges, cut down to the active
// policy's source set.
func (w *Wrapped[S]) OutgoingEdges(s *PState[S]) []ts.Vedge {
	all := w.Base.OutgoingEdges(s.Base)
	return w.Policy.SourceSet(w.Sys, w.VlocOf(s.Base), s.Memory, all)
}

// Next fires vedge on the base layer, then advances the policy's memory
// if the step succeeded (spec.md §7 "STATE_POR_DISABLED ... recovered
// locally").
func (w *Wrapped[S]) Next(s *PState[S], vedge ts.Vedge) status.Status {
	before := w.VlocOf(s.Base).Clone()
	st := w.Base.Next(s.Base, vedge)
	if !st.OK() {
		return st
	}
	after := w.VlocOf(s.Base)
	s.Memory = w.Policy.NextMemory(w.Sys, before, after, s.Memory, vedge)
	return st
}

// WrapCover combines a base-layer cover predicate with the active
// policy's memory-cover rule: c covers n iff the policy's memory
// comparison holds and the base cover predicate holds on the underlying
// states (spec.md §4.9 "paired with a cover predicate compatible with
// its state extension").
func WrapCover[S any](base subsumption.Cover[S], policy Policy) subsumption.Cover[*PState[S]] {
	return func(n, c *subsumption.Node[*PState[S]]) bool {
		if !policy.MemoryCover(n.State.Memory, c.State.Memory) {
			return false
		}
		bn := &subsumption.Node[S]{Key: n.Key, State: n.State.Base, Active: n.Active}
		bc := &subsumption.Node[S]{Key: c.Key, State: c.State.Base, Active: c.Active}
		return base(bn, bc)
	}
}

// isSync reports whether vedge was taken from a synchronization vector
// rather than a lone asynchronous edge.
func isSync(vedge ts.Vedge) bool { return vedge.SyncID >= 0 }

// participantSet returns vedge's participants as a lookup set.
func participantSet(vedge ts.Vedge) map[int]bool {
	out := make(map[int]bool, len(vedge.Edges))
	for _, pid := range vedge.Participants() {
		out[pid] = true
	}
	return out
}

// filterByProcess keeps only vedges that move pid.
func filterByProcess(vedges []ts.Vedge, pid int) []ts.Vedge {
	var out []ts.Vedge
	for _, v := range vedges {
		if participantSet(v)[pid] {
			out = append(out, v)
		}
	}
	return out
}

// smallestPureLocalWithVedge finds the smallest-PID process that is
// pure-local in vloc and has at least one enabled local (asynchronous,
// single-participant) vedge among vedges (spec.md §4.9 por1/por5/
// pure-local "the smallest pure-local process with outgoing vedges").
func smallestPureLocalWithVedge(sys *model.System, vloc ts.Vloc, vedges []ts.Vedge) (int, bool) {
	best := -1
	for _, v := range vedges {
		if isSync(v) || len(v.Edges) != 1 {
			continue
		}
		pid := v.Edges[0].ProcessID
		if !sys.IsPureLocal(pid, vloc[pid]) {
			continue
		}
		if best == -1 || pid < best {
			best = pid
		}
	}
	return best, best != -1
}
