package por

import (
	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/ts"
)

// noSelectedProcess is the por1/por3/por5/magnetic family's sentinel
// memory meaning "no process is currently selected".
const noSelectedProcess = -1

// Por1 is spec.md §4.9's "por1" policy: client/server plus a selected-
// process memory m ∈ PID ∪ {none}. While none, the smallest pure-local
// process with an enabled local vedge is selected and restricted to (if
// any); once a process m is selected, only vedges touching m are
// explored.
//
// Simplification: spec.md's cover rule for por1 is asymmetric ("m=none
// covers m=p when no other pure-local location at a process ≠ p
// exists..."), which needs more than the two memory values to decide.
// MemoryCover here uses plain equality instead — a sound but less
// aggressive approximation, consistent with the same choice made for
// por2/rr below.
type Por1 struct {
	cs ClientServer
}

var _ Policy = (*Por1)(nil)

// NewPor1 builds a por1 policy for the named server process.
func NewPor1(server string) *Por1 { return &Por1{cs: ClientServer{Server: server}} }

func (p *Por1) Name() string { return "por1" }

func (p *Por1) Validate(sys *model.System) error { return p.cs.Validate(sys) }

func (p *Por1) InitialMemory(*model.System, ts.Vloc) any { return noSelectedProcess }

func (p *Por1) SourceSet(sys *model.System, vloc ts.Vloc, memory any, vedges []ts.Vedge) []ts.Vedge {
	m := memory.(int)
	if m != noSelectedProcess {
		return filterByProcess(vedges, m)
	}
	pid, ok := smallestPureLocalWithVedge(sys, vloc, vedges)
	if !ok {
		return vedges
	}
	restricted := filterByProcess(vedges, pid)
	if len(restricted) == 0 {
		return vedges
	}
	return restricted
}

func (p *Por1) NextMemory(sys *model.System, before, after ts.Vloc, memory any, taken ts.Vedge) any {
	participants := taken.Participants()
	if len(participants) >= 2 {
		return noSelectedProcess
	}
	return participants[0]
}

func (p *Por1) MemoryCover(n, c any) bool { return n.(int) == c.(int) }
