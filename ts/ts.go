package ts

import "github.com/tchecker-go/tchecker/status"

// TS is the contract every transition-system layer satisfies (spec.md
// §4.4): a finite set of initial states, the outgoing vedges enabled at a
// state, and in-place next-state computation. Type parameter S is the
// concrete state type of a given layer (DiscreteState, ZGState, AZGState,
// AZGSyncState, or a POR-decorated state from the por package).
type TS[S any] interface {
	Initial() []S
	OutgoingEdges(s S) []Vedge
	Next(s S, vedge Vedge) status.Status
}

// taTS, zgTS, azgTS and azgSyncTS adapt the concrete layer types to TS[S]
// with pointer state types, since Initial on each layer already returns
// []*XState.
type taTS struct{ *TA }

func (t taTS) Initial() []*DiscreteState             { return t.TA.Initial() }
func (t taTS) OutgoingEdges(s *DiscreteState) []Vedge { return t.TA.OutgoingEdges(s) }
func (t taTS) Next(s *DiscreteState, v Vedge) status.Status {
	return t.TA.Next(s, v)
}

// AsTS wraps a *TA as a TS[*DiscreteState].
func (t *TA) AsTS() TS[*DiscreteState] { return taTS{t} }

type zgTS struct{ *ZG }

func (g zgTS) Initial() []*ZGState             { return g.ZG.Initial() }
func (g zgTS) OutgoingEdges(s *ZGState) []Vedge { return g.ZG.OutgoingEdges(s) }
func (g zgTS) Next(s *ZGState, v Vedge) status.Status { return g.ZG.Next(s, v) }

// AsTS wraps a *ZG as a TS[*ZGState].
func (g *ZG) AsTS() TS[*ZGState] { return zgTS{g} }

type azgTS struct{ *AZG }

func (g azgTS) Initial() []*AZGState             { return g.AZG.Initial() }
func (g azgTS) OutgoingEdges(s *AZGState) []Vedge { return g.AZG.OutgoingEdges(s) }
func (g azgTS) Next(s *AZGState, v Vedge) status.Status { return g.AZG.Next(s, v) }

// AsTS wraps an *AZG as a TS[*AZGState].
func (g *AZG) AsTS() TS[*AZGState] { return azgTS{g} }

type azgSyncTS struct{ *AZGSync }

func (g azgSyncTS) Initial() []*AZGSyncState             { return g.AZGSync.Initial() }
func (g azgSyncTS) OutgoingEdges(s *AZGSyncState) []Vedge { return g.AZGSync.OutgoingEdges(s) }
func (g azgSyncTS) Next(s *AZGSyncState, v Vedge) status.Status {
	return g.AZGSync.Next(s, v)
}

// AsTS wraps an *AZGSync as a TS[*AZGSyncState].
func (g *AZGSync) AsTS() TS[*AZGSyncState] { return azgSyncTS{g} }
