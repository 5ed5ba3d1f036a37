package por

import (
	"strings"

	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/ts"
)

// rrMemory is spec.md §4.9 rr's (memory, mixed_local) pair.
type rrMemory struct {
	PID        int
	MixedLocal bool
}

// RoundRobin is spec.md §4.9's "rr" (read-round-robin) policy:
// client/server with read/write edge distinction — an event name
// prefixed with "!" is a read (spec.md §4.9 "read events are prefixed
// by '!'"). Source admits: local actions of a pure-local process; local
// reads from processes at or above the memory PID; any single write
// (which resets memory); and synchronizations, passed through
// unfiltered since spec.md does not constrain them for this family.
//
// Simplification: the cut predicate (disabling states where no client
// below memory has further writes and none at/above has any) is not
// implemented, for the same reason given on Por2 — it only trims an
// already-sound source set further. Mixed-location duplication is
// resolved the same way as Por5: continue with the state that keeps
// memory unchanged, the strictly more permissive of the two branches.
type RoundRobin struct {
	cs ClientServer
}

var _ Policy = (*RoundRobin)(nil)

// NewRoundRobin builds an rr policy for the named server process.
func NewRoundRobin(server string) *RoundRobin { return &RoundRobin{cs: ClientServer{Server: server}} }

func (p *RoundRobin) Name() string { return "rr" }

func (p *RoundRobin) Validate(sys *model.System) error { return p.cs.Validate(sys) }

func (p *RoundRobin) InitialMemory(*model.System, ts.Vloc) any {
	return rrMemory{PID: noSelectedProcess, MixedLocal: false}
}

func isReadEvent(name string) bool { return strings.HasPrefix(name, "!") }

func eventName(sys *model.System, v ts.Vedge) string {
	if len(v.Edges) == 0 {
		return ""
	}
	e := v.Edges[0]
	p := sys.Processes[e.ProcessID]
	return sys.Events[p.Edges[e.EdgeID].EventID].Name
}

func (p *RoundRobin) SourceSet(sys *model.System, vloc ts.Vloc, memory any, vedges []ts.Vedge) []ts.Vedge {
	m := memory.(rrMemory)
	var out []ts.Vedge
	for _, v := range vedges {
		if isSync(v) {
			out = append(out, v)
			continue
		}
		pid := v.Edges[0].ProcessID
		if sys.IsPureLocal(pid, vloc[pid]) {
			out = append(out, v)
			continue
		}
		if isReadEvent(eventName(sys, v)) {
			if m.PID == noSelectedProcess || pid >= m.PID {
				out = append(out, v)
			}
			continue
		}
		// write: always a candidate; NextMemory commits whichever one is
		// actually taken.
		out = append(out, v)
	}
	return out
}

func (p *RoundRobin) NextMemory(sys *model.System, before, after ts.Vloc, memory any, taken ts.Vedge) any {
	m := memory.(rrMemory)
	if isSync(taken) {
		return m
	}
	pid := taken.Edges[0].ProcessID
	mixed := sys.IsMixed(pid, after[pid])
	if !isReadEvent(eventName(sys, taken)) {
		return rrMemory{PID: pid, MixedLocal: mixed}
	}
	return rrMemory{PID: m.PID, MixedLocal: mixed}
}

func (p *RoundRobin) MemoryCover(n, c any) bool {
	nm, cm := n.(rrMemory), c.(rrMemory)
	return nm.PID == cm.PID && nm.MixedLocal == cm.MixedLocal
}
