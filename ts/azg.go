package ts

import (
	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/status"
	"github.com/tchecker-go/tchecker/zone"
)

// AZGState is the asynchronous zone-graph layer's state: a DiscreteState
// plus an offset-DBM-backed AsyncZone carrying one reference clock per
// process (spec.md §4.4 layer 3).
type AZGState struct {
	Discrete *DiscreteState
	Zone     *zone.AsyncZone
}

// Clone returns an independent deep copy.
func (s *AZGState) Clone() *AZGState {
	return &AZGState{Discrete: s.Discrete.Clone(), Zone: s.Zone.Clone()}
}

// AZG wraps a TA with an offset-DBM, emitting an asynchronous semantics
// where each process has its own reference clock (spec.md §4.4 layer 3
// "AZG"). Offset variables are the system's clocks (excluding the shared
// zero clock at global index 0, which the offset-DBM kernel does not
// itself represent); RefMap assigns each to its owning process's
// reference clock.
type AZG struct {
	TA        *TA
	Semantics zone.AsyncSemantics
	RefCount  int
	RefMap    []int // offset-variable index -> reference-clock index

	// SpreadBound, when >= 0, is applied to every successor zone after
	// Next (spec.md §4.4 layer 4 "AZG bounded-spread"); -1 means no AZG
	// bounded-spread wrapping (layer 3 alone).
	SpreadBound int64
}

// NewAZG returns an AZG layer. refMap[i] is the reference-clock index
// owning offset variable i (offset variables are numbered by global clock
// index minus one, skipping the shared zero clock); spreadBound < 0
// disables bounded-spread.
func NewAZG(sys *model.System, refCount int, refMap []int, spreadBound int64) *AZG {
	return &AZG{TA: NewTA(sys), RefCount: refCount, RefMap: refMap, SpreadBound: spreadBound}
}

func (g *AZG) offsetDim() int { return g.RefCount + len(g.RefMap) }

// toOffsetIndex translates a global clock index (1-based, 0 = shared
// zero clock) into the offset-DBM index space (refcount-based, no shared
// zero clock row).
func (g *AZG) toOffsetIndex(globalClock int) int {
	return g.RefCount + globalClock - 1
}

func (g *AZG) translateConstraints(cs []zone.Constraint) []zone.Constraint {
	out := make([]zone.Constraint, len(cs))
	for i, c := range cs {
		out[i] = c
		if c.I != 0 {
			out[i].I = g.toOffsetIndex(c.I)
		} else {
			out[i].I = g.refclockOf(c.J)
		}
		if c.J != 0 {
			out[i].J = g.toOffsetIndex(c.J)
		} else {
			out[i].J = g.refclockOf(c.I)
		}
	}
	return out
}

// refclockOf returns the reference clock owning the clock participating
// on the other side of a constraint against the shared zero clock.
func (g *AZG) refclockOf(globalClock int) int {
	if globalClock == 0 {
		return 0
	}
	return g.RefMap[globalClock-1]
}

func (g *AZG) translateResets(rs []zone.Reset) []zone.Reset {
	out := make([]zone.Reset, len(rs))
	for i, r := range rs {
		out[i] = zone.Reset{Clock: g.toOffsetIndex(r.Clock)}
	}
	return out
}

// Initial returns one AZGState per TA initial configuration, set up by
// AsyncSemantics.Initial and cut down by every process's initial-location
// invariant.
func (g *AZG) Initial() []*AZGState {
	var out []*AZGState
	fullRefMap := make([]int, g.offsetDim())
	for r := 0; r < g.RefCount; r++ {
		fullRefMap[r] = r
	}
	copy(fullRefMap[g.RefCount:], g.RefMap)
	for _, d := range g.TA.Initial() {
		z, err := zone.NewAsyncZone(g.offsetDim(), g.RefCount, fullRefMap)
		if err != nil {
			continue
		}
		if st := g.Semantics.Initial(z); !st.OK() {
			continue
		}
		ok := true
		for pid, locID := range d.Vloc {
			loc := g.TA.Sys.Processes[pid].Locations[locID]
			for _, c := range g.translateConstraints(loc.Invariant) {
				if st, err := z.OffsetDBM().DBM().Constrain(c.I, c.J, c.B); err != nil || st == dbm.Empty {
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
		out = append(out, &AZGState{Discrete: d, Zone: z})
	}
	return out
}

// OutgoingEdges delegates to the TA layer.
func (g *AZG) OutgoingEdges(s *AZGState) []Vedge {
	return g.TA.OutgoingEdges(s.Discrete)
}

// Next computes the symbolic successor of s along vedge on the offset-DBM
// representation, optionally applying the bounded-spread constraint
// afterwards (spec.md §4.4 layer 4).
func (g *AZG) Next(s *AZGState, vedge Vedge) status.Status {
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

	delayAllowed := make([]bool, g.RefCount)
	for i := range delayAllowed {
		delayAllowed[i] = true
	}
	syncRefClocks := refClocksOf(g, vedge)

	st = g.Semantics.Next(s.Zone, g.translateConstraints(srcInv), g.translateConstraints(guard),
		g.translateResets(resets), g.translateConstraints(tgtDst), delayAllowed, syncRefClocks)
	if !st.OK() {
		return st
	}

	if g.SpreadBound >= 0 {
		if bst, err := s.Zone.OffsetDBM().BoundSpread(g.SpreadBound); err != nil || bst == dbm.Empty {
			return status.EmptyZone
		}
	}

	for _, ref := range vedge.Edges {
		edge := g.TA.Sys.Processes[ref.ProcessID].Edges[ref.EdgeID]
		s.Discrete.Vloc[ref.ProcessID] = edge.Dst
	}
	s.Discrete.IntVal = nextInt
	return status.OK
}

func (g *AZG) locationInvariants(d *DiscreteState, vedge Vedge) (src, tgt []zone.Constraint) {
	for _, ref := range vedge.Edges {
		p := g.TA.Sys.Processes[ref.ProcessID]
		edge := p.Edges[ref.EdgeID]
		src = append(src, p.Locations[d.Vloc[ref.ProcessID]].Invariant...)
		tgt = append(tgt, p.Locations[edge.Dst].Invariant...)
	}
	return src, tgt
}

// refClocksOf returns the reference clocks of every process participating
// in vedge, deduplicated; a two-or-more-process vedge requires these
// reference clocks to be equated (spec.md §4.3 "reference-clock
// synchronization").
func refClocksOf(g *AZG, vedge Vedge) []int {
	seen := make(map[int]bool)
	var out []int
	for _, ref := range vedge.Edges {
		r := ref.ProcessID // one reference clock per process, indexed by process ID
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}
