package por

import (
	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/ts"
)

// GlobalRank is the global/local family's sentinel rank meaning "explore
// every vedge", spec.md §4.9 gl policy's rank = global.
const GlobalRank = -1

// GlobalLocal is spec.md §4.9's "gl" policy: requires a global/local
// system (every synchronization is either single-process or covers every
// process, model.System.GlobalLocal). Memory is a rank: GlobalRank, or a
// process PID. From GlobalRank every vedge is explored; from a ranked
// state, every global (fully-synchronized) vedge is admitted plus local
// vedges of processes whose PID is at least rank.
//
// Simplification: spec.md's "group ID, computed from non-global
// synchronizations" collapses to plain PID comparison here, since a
// global/local system (model.System.GlobalLocal) has no partial
// synchronizations to form non-trivial process groups from — every
// synchronization is already single-process or all-process.
type GlobalLocal struct{}

var _ Policy = GlobalLocal{}

func (GlobalLocal) Name() string { return "gl" }

func (GlobalLocal) Validate(sys *model.System) error {
	return sys.RequireGlobalLocal()
}

func (GlobalLocal) InitialMemory(*model.System, ts.Vloc) any { return GlobalRank }

func (GlobalLocal) SourceSet(sys *model.System, vloc ts.Vloc, memory any, vedges []ts.Vedge) []ts.Vedge {
	rank := memory.(int)
	if rank == GlobalRank {
		return vedges
	}
	if !globalLocalSynchronizable(sys, vloc, rank) {
		return vedges
	}
	var out []ts.Vedge
	for _, v := range vedges {
		if isSync(v) {
			out = append(out, v)
			continue
		}
		if v.Edges[0].ProcessID >= rank {
			out = append(out, v)
		}
	}
	return out
}

func (GlobalLocal) NextMemory(sys *model.System, before, after ts.Vloc, memory any, taken ts.Vedge) any {
	if isSync(taken) {
		return GlobalRank
	}
	return taken.Edges[0].ProcessID
}

func (GlobalLocal) MemoryCover(n, c any) bool {
	cr := c.(int)
	if cr == GlobalRank {
		return true
	}
	return n.(int) == cr
}

// globalLocalSynchronizable implements spec.md §4.9 gl's discrete
// synchronizability filter: some global synchronization must remain
// reachable both for processes below rank (from their current location,
// LocationKind) and at/above rank (transitively, ReachableKind).
func globalLocalSynchronizable(sys *model.System, vloc ts.Vloc, rank int) bool {
	var below, atOrAbove map[int]bool
	for pid, locID := range vloc {
		kind := model.ReachableKind
		if pid < rank {
			kind = model.LocationKind
		}
		next := sys.LocationNextSyncs(pid, locID, kind)
		if pid < rank {
			below = intersectOrInit(below, next)
		} else {
			atOrAbove = intersectOrInit(atOrAbove, next)
		}
	}
	for id := range below {
		if atOrAbove[id] {
			return true
		}
	}
	return len(below) == 0 && len(atOrAbove) > 0
}

func intersectOrInit(acc, next map[int]bool) map[int]bool {
	if acc == nil {
		out := make(map[int]bool, len(next))
		for id := range next {
			out[id] = true
		}
		return out
	}
	for id := range acc {
		if !next[id] {
			delete(acc, id)
		}
	}
	return acc
}
