package model

// StaticAnalysis holds the derived, immutable maps that the por and ts
// packages consult, computed once at Build time and shared by read-only
// reference thereafter (spec.md §9 "Static analysis maps ... immutable
// after build; share by read-only reference/handle"). Grounded on
// original_source/include/tchecker/system/static_analysis.hh
// (process_events_map_t, global_local), generalized with the additional
// maps spec.md §4.5/§9 name.
type StaticAnalysis struct {
	// ProcessEvents maps a process ID to the set of event IDs it exposes,
	// strong and weak alike (spec.md §9 "process_events_map").
	ProcessEvents []map[int]bool

	// PureLocal maps a location's global index (see locationKey) to
	// whether every outgoing edge of that location is asynchronous and
	// the location is neither committed nor urgent (spec.md §9
	// "pure_local_map").
	PureLocal map[locationKey]bool

	// Mixed maps a location's global index to whether it has both a
	// synchronized and an asynchronous outgoing edge (spec.md §9
	// "mixed_map").
	Mixed map[locationKey]bool

	// locationNextSyncsLocal/Reachable implement location_next_syncs(ℓ,
	// kind): for each location, the synchronization-vector IDs that
	// involve an edge out of that location (LOCATION kind) and the
	// transitive closure over asynchronous edges (REACHABLE kind).
	locationNextSyncsLocal     map[locationKey]map[int]bool
	locationNextSyncsReachable map[locationKey]map[int]bool

	// GlobalLocal is spec.md §9's global_local(system) predicate: every
	// sync vector is either single-process or covers all processes, with
	// strong entries only. Grounded directly on static_analysis.hh's
	// global_local<LOC,EDGE>.
	GlobalLocal bool
}

// locationKey globally identifies a location across all processes.
type locationKey struct {
	ProcessID  int
	LocationID int
}

// IsPureLocal reports whether the given location is pure-local.
func (sa *StaticAnalysis) IsPureLocal(pid, locID int) bool {
	return sa.PureLocal[locationKey{pid, locID}]
}

// IsMixed reports whether the given location is mixed.
func (sa *StaticAnalysis) IsMixed(pid, locID int) bool {
	return sa.Mixed[locationKey{pid, locID}]
}

// LocationNextSyncsKind selects between the immediate and transitive-closure
// variants of location_next_syncs.
type LocationNextSyncsKind int

const (
	// LocationKind: synchronizations firable directly from an edge out of
	// the location.
	LocationKind LocationNextSyncsKind = iota
	// ReachableKind: synchronizations reachable via a chain of
	// asynchronous edges out of the location.
	ReachableKind
)

// LocationNextSyncs returns the set of synchronization-vector IDs
// associated with location (pid, locID) under kind (spec.md §9
// "location_next_syncs(ℓ, kind)").
func (sa *StaticAnalysis) LocationNextSyncs(pid, locID int, kind LocationNextSyncsKind) map[int]bool {
	key := locationKey{pid, locID}
	if kind == ReachableKind {
		return sa.locationNextSyncsReachable[key]
	}
	return sa.locationNextSyncsLocal[key]
}

// ClientServer reports whether every synchronization vector in sys has
// exactly two participants, one of them being the process named server
// (spec.md §9 "client_server(system, server_pid)"). Returns
// ErrNoServerProcess if server is not declared, or ErrNotClientServer if
// the predicate fails — the latter is the model-structural refusal
// spec.md §7 requires for a mismatched --source-set cs.
func (s *System) ClientServer(server string) error {
	pid, ok := s.byProcessName[server]
	if !ok {
		return ErrNoServerProcess
	}
	for _, sv := range s.Syncs {
		if len(sv.Entries) != 2 {
			return ErrNotClientServer
		}
		hasServer := false
		for _, e := range sv.Entries {
			if e.ProcessID == pid {
				hasServer = true
			}
		}
		if !hasServer {
			return ErrNotClientServer
		}
	}
	return nil
}

// RequireGlobalLocal returns ErrNotGlobalLocal unless the system satisfies
// global_local, the model-structural refusal spec.md §7 requires for a
// mismatched --source-set gl.
func (s *System) RequireGlobalLocal() error {
	if !s.GlobalLocal {
		return ErrNotGlobalLocal
	}
	return nil
}

// computeStaticAnalysis derives every map in StaticAnalysis from a fully
// built System. Grounded on
// original_source/include/tchecker/system/static_analysis.hh's
// weakly_synchronized_events, location_synchronisation_flags, global_local;
// extended with pure_local_map, mixed_map and location_next_syncs per
// spec.md §9.
func computeStaticAnalysis(sys *System) *StaticAnalysis {
	sa := &StaticAnalysis{
		ProcessEvents:              make([]map[int]bool, len(sys.Processes)),
		PureLocal:                  make(map[locationKey]bool),
		Mixed:                      make(map[locationKey]bool),
		locationNextSyncsLocal:     make(map[locationKey]map[int]bool),
		locationNextSyncsReachable: make(map[locationKey]map[int]bool),
	}

	// process_events_map: per process, every event ID appearing on one of
	// its edges.
	for _, p := range sys.Processes {
		events := make(map[int]bool)
		for _, e := range p.Edges {
			events[e.EventID] = true
		}
		sa.ProcessEvents[p.ID] = events
	}

	// synchronized[pid][eventID] marks (process, event) pairs that appear
	// in at least one synchronization vector: an edge firing that event
	// from that process is never purely asynchronous.
	synchronized := make([]map[int]bool, len(sys.Processes))
	for i := range synchronized {
		synchronized[i] = make(map[int]bool)
	}
	for _, sv := range sys.Syncs {
		for _, entry := range sv.Entries {
			synchronized[entry.ProcessID][entry.EventID] = true
		}
	}

	isAsync := func(pid, eventID int) bool { return !synchronized[pid][eventID] }

	// pure_local_map / mixed_map: per spec.md §9's definitions, evaluated
	// per location from its outgoing edges.
	for _, p := range sys.Processes {
		for _, loc := range p.Locations {
			key := locationKey{p.ID, loc.ID}
			hasSync, hasAsync := false, false
			for _, eid := range loc.Out {
				e := p.Edges[eid]
				if isAsync(p.ID, e.EventID) {
					hasAsync = true
				} else {
					hasSync = true
				}
			}
			sa.PureLocal[key] = hasAsync && !hasSync && !loc.Committed && !loc.Urgent
			sa.Mixed[key] = hasSync && hasAsync
		}
	}

	// location_next_syncs: LOCATION is the set of sync-vector IDs whose
	// constraints name an edge directly out of the location; REACHABLE
	// closes that set over chains of purely-asynchronous edges.
	syncsByProcessEvent := make(map[locationEventKey][]int)
	for svID, sv := range sys.Syncs {
		for _, entry := range sv.Entries {
			k := locationEventKey{entry.ProcessID, entry.EventID}
			syncsByProcessEvent[k] = append(syncsByProcessEvent[k], svID)
		}
	}

	for _, p := range sys.Processes {
		for _, loc := range p.Locations {
			key := locationKey{p.ID, loc.ID}
			local := make(map[int]bool)
			for _, eid := range loc.Out {
				e := p.Edges[eid]
				for _, svID := range syncsByProcessEvent[locationEventKey{p.ID, e.EventID}] {
					local[svID] = true
				}
			}
			sa.locationNextSyncsLocal[key] = local
		}
	}
	for _, p := range sys.Processes {
		for _, loc := range p.Locations {
			key := locationKey{p.ID, loc.ID}
			sa.locationNextSyncsReachable[key] = reachableSyncs(sys, p, loc, isAsync, syncsByProcessEvent, make(map[locationKey]bool))
		}
	}

	// global_local: every sync vector is single-process or all-process,
	// strong entries only.
	sa.GlobalLocal = globalLocal(sys)

	return sa
}

type locationEventKey struct {
	ProcessID int
	EventID   int
}

// reachableSyncs follows chains of purely-asynchronous outgoing edges from
// loc, accumulating every synchronization ID reachable along the way
// (spec.md §9 location_next_syncs REACHABLE kind).
func reachableSyncs(sys *System, p *Process, loc *Location, isAsync func(pid, eid int) bool, byProcEvent map[locationEventKey][]int, visited map[locationKey]bool) map[int]bool {
	key := locationKey{p.ID, loc.ID}
	if visited[key] {
		return map[int]bool{}
	}
	visited[key] = true

	result := make(map[int]bool)
	for _, eid := range loc.Out {
		e := p.Edges[eid]
		for _, svID := range byProcEvent[locationEventKey{p.ID, e.EventID}] {
			result[svID] = true
		}
		if isAsync(p.ID, e.EventID) {
			dst := p.Locations[e.Dst]
			for svID := range reachableSyncs(sys, p, dst, isAsync, byProcEvent, visited) {
				result[svID] = true
			}
		}
	}
	return result
}

// globalLocal implements global_local(system) (spec.md §9), grounded
// directly on static_analysis.hh's global_local<LOC,EDGE>: every
// synchronization vector must be single-process or cover every process,
// and every entry must be Strong.
func globalLocal(sys *System) bool {
	n := len(sys.Processes)
	for _, sv := range sys.Syncs {
		size := 0
		for _, e := range sv.Entries {
			if e.Strength != Strong {
				return false
			}
			size++
		}
		if size != 1 && size != n {
			return false
		}
	}
	return true
}
