package ts

import (
	"github.com/tchecker-go/tchecker/intstmt"
	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/status"
)

// DiscreteState is the TA layer's state: a location tuple and an
// integer-variable valuation, with no clock/zone component (spec.md §4.4
// layer 1 "TA: discrete semantics ... no clock/zone").
type DiscreteState struct {
	Vloc   Vloc
	IntVal *intstmt.Valuation
}

// Clone returns an independent deep copy.
func (s *DiscreteState) Clone() *DiscreteState {
	return &DiscreteState{Vloc: s.Vloc.Clone(), IntVal: s.IntVal.Clone()}
}

// Key returns the signature spec.md §3 assigns a Node: a value stable
// under exact structural equality of (vloc, intvars_val), used as the
// subsumption graph's hash-bucket key. The zone deliberately does not
// participate.
func (s *DiscreteState) Key() uint64 {
	h := uint64(fnvOffset)
	for _, l := range s.Vloc {
		h = (h ^ uint64(l)) * fnvPrime
	}
	for _, v := range s.IntVal.Values {
		h = (h ^ uint64(v)) * fnvPrime
	}
	return h
}

const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

// TA is the bottom transition-system layer: pure discrete semantics with
// integer-variable guards and updates run through the intstmt bytecode VM
// (spec.md §4.4 layer 1). ZG and AZG embed a TA to share vedge
// enumeration and integer-variable stepping.
type TA struct {
	Sys *model.System
}

// NewTA returns a TA layer over sys.
func NewTA(sys *model.System) *TA { return &TA{Sys: sys} }

// Initial yields one DiscreteState per combination of per-process initial
// locations (spec.md §4.4 "initial() yields ... one per combination of
// initial locations"). Simplification: returned eagerly as a slice
// rather than spec.md's lazy sequence — every example system declares
// exactly one initial location per process, so the combination is a
// single element in practice, and materializing it keeps the TS
// interface a plain slice-returning method instead of an iterator type
// threaded through every layer.
func (t *TA) Initial() []*DiscreteState {
	combos := [][]int{{}}
	for _, p := range t.Sys.Processes {
		var initials []int
		for _, loc := range p.Locations {
			if loc.Initial {
				initials = append(initials, loc.ID)
			}
		}
		if len(initials) == 0 {
			return nil
		}
		combos = extendCombos(combos, initials)
	}

	val := &intstmt.Valuation{
		Values: make([]int64, t.Sys.IntVarCount),
		Min:    t.Sys.IntVarMin,
		Max:    t.Sys.IntVarMax,
	}

	out := make([]*DiscreteState, len(combos))
	for i, vloc := range combos {
		out[i] = &DiscreteState{Vloc: Vloc(vloc), IntVal: val.Clone()}
	}
	return out
}

func extendCombos(combos [][]int, choices []int) [][]int {
	out := make([][]int, 0, len(combos)*len(choices))
	for _, c := range combos {
		for _, choice := range choices {
			next := append(append([]int(nil), c...), choice)
			out = append(out, next)
		}
	}
	return out
}

// OutgoingEdges yields every vedge enabled at s's discrete configuration,
// ignoring clock/integer guards (spec.md §4.4 "outgoing_edges(state)
// yields a finite lazy sequence of vedges").
func (t *TA) OutgoingEdges(s *DiscreteState) []Vedge {
	return outgoingVedges(t.Sys, s.Vloc)
}

// Next applies vedge's integer-variable guards and statements to s in
// place, and moves every participating process to its edge's destination
// location. Returns status.OK on success, or the first failing
// integer-variable status.
func (t *TA) Next(s *DiscreteState, vedge Vedge) status.Status {
	next, st := t.step(s, vedge)
	if !st.OK() {
		return st
	}
	for _, ref := range vedge.Edges {
		edge := t.Sys.Processes[ref.ProcessID].Edges[ref.EdgeID]
		s.Vloc[ref.ProcessID] = edge.Dst
	}
	s.IntVal = next
	return status.OK
}

// step runs every integer-variable check and statement for vedge against
// s without mutating s: source-invariant, then guard, then statement (on
// a clone), returning the would-be post-statement valuation on success.
// Shared by TA.Next and the ZG/AZG layers, which still need to run the
// clock/zone pipeline before committing the discrete move.
func (t *TA) step(s *DiscreteState, vedge Vedge) (*intstmt.Valuation, status.Status) {
	for _, ref := range vedge.Edges {
		p := t.Sys.Processes[ref.ProcessID]
		loc := p.Locations[s.Vloc[ref.ProcessID]]
		ok, err := intstmt.Eval(loc.IntInvariant, s.IntVal)
		if err != nil || !ok {
			return nil, status.IntVarsSrcInvariantViolated
		}
	}

	for _, ref := range vedge.Edges {
		edge := t.Sys.Processes[ref.ProcessID].Edges[ref.EdgeID]
		ok, err := intstmt.Eval(edge.IntGuard, s.IntVal)
		if err != nil || !ok {
			return nil, status.IntVarsGuardViolated
		}
	}

	next := s.IntVal.Clone()
	for _, ref := range vedge.Edges {
		edge := t.Sys.Processes[ref.ProcessID].Edges[ref.EdgeID]
		if err := intstmt.Exec(edge.IntStatement, next); err != nil {
			return nil, status.IntVarsStatementFailed
		}
	}
	return next, status.OK
}
