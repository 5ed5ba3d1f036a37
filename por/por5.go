package por

import (
	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/ts"
)

// Por5 is spec.md §4.9's "por5" policy: client/server with memory m ∈
// PID ∪ {none}. When a client is selected, only its local actions are
// admitted; when none is selected, only the smallest-PID pure-local process's
// local actions are admitted if one exists, else every synchronization.
//
// Simplification: spec.md's mixed-location rule duplicates the successor
// into two states (m=none and m=PID of the mover); a single Next call
// can only produce one successor, so this always continues with m=none,
// the strictly less restrictive of the pair. Dropping the m=PID branch
// only removes one (more reduced) path to states `m=none` would still
// reach, so reachability verdicts are unaffected.
type Por5 struct {
	cs ClientServer
}

var _ Policy = (*Por5)(nil)

// NewPor5 builds a por5 policy for the named server process.
func NewPor5(server string) *Por5 { return &Por5{cs: ClientServer{Server: server}} }

func (p *Por5) Name() string { return "por5" }

func (p *Por5) Validate(sys *model.System) error { return p.cs.Validate(sys) }

func (p *Por5) InitialMemory(*model.System, ts.Vloc) any { return noSelectedProcess }

func (p *Por5) SourceSet(sys *model.System, vloc ts.Vloc, memory any, vedges []ts.Vedge) []ts.Vedge {
	m := memory.(int)
	if m != noSelectedProcess {
		var out []ts.Vedge
		for _, v := range vedges {
			if !isSync(v) && v.Edges[0].ProcessID == m {
				out = append(out, v)
			}
		}
		return out
	}
	pid, ok := smallestPureLocalWithVedge(sys, vloc, vedges)
	if !ok {
		var out []ts.Vedge
		for _, v := range vedges {
			if isSync(v) {
				out = append(out, v)
			}
		}
		return out
	}
	return filterByProcess(vedges, pid)
}

func (p *Por5) NextMemory(sys *model.System, before, after ts.Vloc, memory any, taken ts.Vedge) any {
	if isSync(taken) {
		return noSelectedProcess
	}
	pid := taken.Edges[0].ProcessID
	if sys.IsMixed(pid, after[pid]) {
		// Would duplicate into {none, pid}; continue with the less
		// restrictive branch (see type doc comment).
		return noSelectedProcess
	}
	return pid
}

func (p *Por5) MemoryCover(n, c any) bool { return n.(int) == c.(int) }
