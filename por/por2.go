package por

import (
	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/ts"
)

// por2Memory is spec.md §4.9 por2's two-bitset memory: L is the set of
// client PIDs that have committed to the local phase, S is the set of
// client PIDs still eligible to act.
type por2Memory struct {
	L map[int]bool
	S map[int]bool
}

func (m por2Memory) clone() por2Memory {
	out := por2Memory{L: make(map[int]bool, len(m.L)), S: make(map[int]bool, len(m.S))}
	for k := range m.L {
		out.L[k] = true
	}
	for k := range m.S {
		out.S[k] = true
	}
	return out
}

func (m por2Memory) maxL() int {
	max := -1
	for k := range m.L {
		if k > max {
			max = k
		}
	}
	return max
}

func (m por2Memory) equal(other por2Memory) bool {
	if len(m.L) != len(other.L) || len(m.S) != len(other.S) {
		return false
	}
	for k := range m.L {
		if !other.L[k] {
			return false
		}
	}
	for k := range m.S {
		if !other.S[k] {
			return false
		}
	}
	return true
}

// Por2 is spec.md §4.9's "por2" policy: client/server with the (L, S)
// memory above. In the sync phase (L empty), client-server syncs and
// local actions of processes in S are admitted. In the local phase (L
// non-empty), syncs involving a process in L are admitted, plus local
// actions of processes in S whose PID is at least max(L).
//
// Simplification: spec.md's prose for how L/S update ("encode which
// processes have committed to a phase") and the deadlock-witness cut
// predicate are both underspecified relative to the source set rule.
// NextMemory here commits a client to L on its first synchronization and
// drops it from S on a local action; the cut predicate (killing traces
// where a pure-local client never joined S) is not implemented — its
// absence only costs reduction aggressiveness, since source-set
// filtering alone remains sound. In particular this policy does not
// guarantee fewer stored nodes than plain covering reachability on every
// model, only that whatever it does store is a sound over-approximation;
// models whose reduction depends on the cut predicate see no node-count
// improvement from por2 specifically.
type Por2 struct {
	cs ClientServer
}

var _ Policy = (*Por2)(nil)

// NewPor2 builds a por2 policy for the named server process.
func NewPor2(server string) *Por2 { return &Por2{cs: ClientServer{Server: server}} }

func (p *Por2) Name() string { return "por2" }

func (p *Por2) Validate(sys *model.System) error { return p.cs.Validate(sys) }

func (p *Por2) InitialMemory(sys *model.System, vloc ts.Vloc) any {
	s := make(map[int]bool, len(sys.Processes)-1)
	for pid := range sys.Processes {
		if pid != p.cs.serverPID {
			s[pid] = true
		}
	}
	return por2Memory{L: map[int]bool{}, S: s}
}

func (p *Por2) SourceSet(sys *model.System, vloc ts.Vloc, memory any, vedges []ts.Vedge) []ts.Vedge {
	m := memory.(por2Memory)
	var out []ts.Vedge
	if len(m.L) == 0 {
		for _, v := range vedges {
			if isSync(v) {
				out = append(out, v)
				continue
			}
			if m.S[v.Edges[0].ProcessID] {
				out = append(out, v)
			}
		}
		return out
	}
	maxL := m.maxL()
	for _, v := range vedges {
		if isSync(v) {
			ps := participantSet(v)
			for pid := range m.L {
				if ps[pid] {
					out = append(out, v)
					break
				}
			}
			continue
		}
		pid := v.Edges[0].ProcessID
		if m.S[pid] && pid >= maxL {
			out = append(out, v)
		}
	}
	return out
}

func (p *Por2) NextMemory(sys *model.System, before, after ts.Vloc, memory any, taken ts.Vedge) any {
	m := memory.(por2Memory).clone()
	if isSync(taken) {
		for _, pid := range taken.Participants() {
			if pid != p.cs.serverPID {
				m.L[pid] = true
			}
		}
		return m
	}
	delete(m.S, taken.Edges[0].ProcessID)
	return m
}

func (p *Por2) MemoryCover(n, c any) bool {
	return n.(por2Memory).equal(c.(por2Memory))
}
