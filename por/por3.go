package por

import (
	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/ts"
)

// Por3 is spec.md §4.9's "por3" policy: client/server with memory m =
// the last active client PID (noSelectedProcess initially, meaning any
// client may start). Local actions are admitted only from process m;
// synchronizations are admitted only when m's current location is not
// pure-local.
type Por3 struct {
	cs ClientServer
}

var _ Policy = (*Por3)(nil)

// NewPor3 builds a por3 policy for the named server process.
func NewPor3(server string) *Por3 { return &Por3{cs: ClientServer{Server: server}} }

func (p *Por3) Name() string { return "por3" }

func (p *Por3) Validate(sys *model.System) error { return p.cs.Validate(sys) }

func (p *Por3) InitialMemory(*model.System, ts.Vloc) any { return noSelectedProcess }

func (p *Por3) SourceSet(sys *model.System, vloc ts.Vloc, memory any, vedges []ts.Vedge) []ts.Vedge {
	m := memory.(int)
	if m == noSelectedProcess {
		return vedges
	}
	var out []ts.Vedge
	pureLocal := sys.IsPureLocal(m, vloc[m])
	for _, v := range vedges {
		if isSync(v) {
			if !pureLocal {
				out = append(out, v)
			}
			continue
		}
		if v.Edges[0].ProcessID == m {
			out = append(out, v)
		}
	}
	return out
}

func (p *Por3) NextMemory(sys *model.System, before, after ts.Vloc, memory any, taken ts.Vedge) any {
	if !isSync(taken) {
		return taken.Edges[0].ProcessID
	}
	for _, pid := range taken.Participants() {
		if pid != p.cs.serverPID {
			return pid
		}
	}
	return noSelectedProcess
}

func (p *Por3) MemoryCover(n, c any) bool { return n.(int) == c.(int) }
