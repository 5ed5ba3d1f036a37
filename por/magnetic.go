package por

import (
	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/ts"
)

// Magnetic is spec.md §4.9's "mag" policy: client/server with magnetic
// locations. Once a client leaves a magnetic location for a non-magnetic
// one, only that client's vedges are admitted until it returns to a
// magnetic location. Magnetic is an explicit per-location boolean
// attribute (model.Location.Magnetic), not a name-based heuristic
// (spec.md §9 Open Question 2).
type Magnetic struct {
	cs ClientServer
}

var _ Policy = (*Magnetic)(nil)

// NewMagnetic builds a mag policy for the named server process.
func NewMagnetic(server string) *Magnetic { return &Magnetic{cs: ClientServer{Server: server}} }

func (p *Magnetic) Name() string { return "mag" }

func (p *Magnetic) Validate(sys *model.System) error { return p.cs.Validate(sys) }

func (p *Magnetic) InitialMemory(*model.System, ts.Vloc) any { return noSelectedProcess }

func (p *Magnetic) SourceSet(sys *model.System, vloc ts.Vloc, memory any, vedges []ts.Vedge) []ts.Vedge {
	pid := memory.(int)
	if pid == noSelectedProcess {
		return vedges
	}
	return filterByProcess(vedges, pid)
}

func (p *Magnetic) NextMemory(sys *model.System, before, after ts.Vloc, memory any, taken ts.Vedge) any {
	participants := taken.Participants()
	if len(participants) != 1 {
		return noSelectedProcess
	}
	pid := participants[0]
	if pid == p.cs.serverPID {
		return noSelectedProcess
	}
	loc := sys.Processes[pid].Locations[after[pid]]
	if loc.Magnetic {
		return noSelectedProcess
	}
	return pid
}

func (p *Magnetic) MemoryCover(n, c any) bool { return n.(int) == c.(int) }
