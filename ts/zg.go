package ts

import (
	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/status"
	"github.com/tchecker-go/tchecker/zone"
)

// ZGState is the zone-graph layer's state: a DiscreteState plus a single
// synchronous zone over every clock in the system (spec.md §4.4 layer 2).
type ZGState struct {
	Discrete *DiscreteState
	Zone     *zone.Zone
}

// Clone returns an independent deep copy.
func (s *ZGState) Clone() *ZGState {
	return &ZGState{Discrete: s.Discrete.Clone(), Zone: s.Zone.Clone()}
}

// ZG wraps a TA with a zone and a chosen zone-semantics, producing
// exactly the TA's successors plus zone manipulation (spec.md §4.4 layer
// 2). Bounds supplies the clock-bound vector(s) Semantics.Extra needs;
// whether those bounds are "global" (the same Bounds for every state) or
// "local" (looked up per-location) is the BoundsOf function's concern,
// matching the zone package's design of keeping that axis out of
// Semantics itself.
type ZG struct {
	TA        *TA
	Semantics zone.Semantics
	BoundsOf  func(vloc Vloc) zone.Bounds
}

// NewZG returns a ZG layer. A nil boundsOf is treated as "no bounds"
// (suitable when semantics.Extra is zone.NoExtrapolation).
func NewZG(sys *model.System, semantics zone.Semantics, boundsOf func(vloc Vloc) zone.Bounds) *ZG {
	if boundsOf == nil {
		boundsOf = func(Vloc) zone.Bounds { return zone.Bounds{} }
	}
	return &ZG{TA: NewTA(sys), Semantics: semantics, BoundsOf: boundsOf}
}

// Initial returns one ZGState per TA initial configuration, with its zone
// set up by Semantics.Initial and then cut down by every process's
// initial-location invariant (spec.md §4.4 "initialize(state,
// transition, init_value)"). A configuration whose invariant immediately
// empties the zone is dropped.
func (g *ZG) Initial() []*ZGState {
	var out []*ZGState
	for _, d := range g.TA.Initial() {
		z, err := zone.NewZone(g.TA.Sys.ClockCount)
		if err != nil {
			continue
		}
		if st := g.Semantics.Initial(z); !st.OK() {
			continue
		}
		ok := true
		for pid, locID := range d.Vloc {
			loc := g.TA.Sys.Processes[pid].Locations[locID]
			for _, c := range loc.Invariant {
				if st, err := z.DBM().Constrain(c.I, c.J, c.B); err != nil || st == dbm.Empty {
					ok = false
					break
				}
			}
			if !ok {
				break
			}
		}
		if !ok {
			continue
		}
		out = append(out, &ZGState{Discrete: d, Zone: z})
	}
	return out
}

// OutgoingEdges delegates to the TA layer: zone feasibility is checked by
// Next, not by enumeration.
func (g *ZG) OutgoingEdges(s *ZGState) []Vedge {
	return g.TA.OutgoingEdges(s.Discrete)
}

// Next computes the symbolic successor of s along vedge, modifying s in
// place. Integer-variable steps run first (spec.md §4.4 layer 1), then
// the combined clock guard/reset/invariants of every participating edge
// run through Semantics.Next in a single pass (spec.md §4.3).
func (g *ZG) Next(s *ZGState, vedge Vedge) status.Status {
	nextInt, st := g.TA.step(s.Discrete, vedge)
	if !st.OK() {
		return st
	}

	srcInv, tgtDst := g.locationInvariants(s.Discrete, vedge)
	var guard []zone.Constraint
	var resets []zone.Reset
	for _, ref := range vedge.Edges {
		edge := g.TA.Sys.Processes[ref.ProcessID].Edges[ref.EdgeID]
		guard = append(guard, edge.Guard...)
		resets = append(resets, edge.Resets...)
	}

	bounds := g.BoundsOf(s.Discrete.Vloc)
	if st := g.Semantics.Next(s.Zone, srcInv, guard, resets, tgtDst, bounds); !st.OK() {
		return st
	}

	for _, ref := range vedge.Edges {
		edge := g.TA.Sys.Processes[ref.ProcessID].Edges[ref.EdgeID]
		s.Discrete.Vloc[ref.ProcessID] = edge.Dst
	}
	s.Discrete.IntVal = nextInt
	return status.OK
}

// locationInvariants gathers the combined clock invariant of every
// process about to move, for its current (src) and destination (tgt)
// location.
func (g *ZG) locationInvariants(d *DiscreteState, vedge Vedge) (src, tgt []zone.Constraint) {
	for _, ref := range vedge.Edges {
		p := g.TA.Sys.Processes[ref.ProcessID]
		edge := p.Edges[ref.EdgeID]
		src = append(src, p.Locations[d.Vloc[ref.ProcessID]].Invariant...)
		tgt = append(tgt, p.Locations[edge.Dst].Invariant...)
	}
	return src, tgt
}

