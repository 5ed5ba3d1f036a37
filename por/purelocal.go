package por

import (
	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/ts"
)

// NoPureLocal is the sentinel PID meaning "no process is currently
// pure-local", spec.md §4.9 pure-local policy's `no_pure_local`.
const NoPureLocal = -1

// PureLocal is spec.md §4.9's "pure-local" policy: works on any
// transition system. Memory is the PID of the first pure-local process
// in the current vloc, or NoPureLocal. When a pure-local process exists,
// only vedges whose sole participant is that process are explored.
type PureLocal struct{}

var _ Policy = PureLocal{}

func (PureLocal) Name() string { return "pure_local" }

func (PureLocal) Validate(*model.System) error { return nil }

func (PureLocal) InitialMemory(sys *model.System, vloc ts.Vloc) any {
	return firstPureLocal(sys, vloc)
}

func (PureLocal) SourceSet(sys *model.System, vloc ts.Vloc, memory any, vedges []ts.Vedge) []ts.Vedge {
	pid := memory.(int)
	if pid == NoPureLocal {
		return vedges
	}
	return filterByProcess(vedges, pid)
}

func (PureLocal) NextMemory(sys *model.System, before, after ts.Vloc, memory any, taken ts.Vedge) any {
	return firstPureLocal(sys, after)
}

func (PureLocal) MemoryCover(n, c any) bool { return n.(int) == c.(int) }

// firstPureLocal returns the smallest PID whose current location in vloc
// is pure-local, or NoPureLocal.
func firstPureLocal(sys *model.System, vloc ts.Vloc) int {
	for pid, locID := range vloc {
		if sys.IsPureLocal(pid, locID) {
			return pid
		}
	}
	return NoPureLocal
}
