package model

import (
	"fmt"

	"github.com/tchecker-go/tchecker/intstmt"
	"github.com/tchecker-go/tchecker/zone"
)

// Builder assembles a System through a staged API, generalizing lvlath's
// matrix package "Validate → Prepare → Execute → Finalize → Return"
// constructor convention (matrix/builder.go) from adjacency matrices to
// timed-automata networks: callers declare processes, locations, edges,
// events and synchronization vectors, then call Build once to validate
// cross-references and run static analysis.
//
// A Builder is not safe for concurrent use; the System it produces is
// immutable and safe to share.
type Builder struct {
	clockCount  int // 1 (zero clock at index 0) + sum of process clock counts
	intVarCount int
	intVarMin   []int64
	intVarMax   []int64

	processes []*Process
	procByName map[string]int

	events   []Event
	eventByName map[string]int

	syncs []SyncVector

	err error // first error encountered; short-circuits subsequent calls
}

// NewBuilder returns an empty Builder. Clock index 0 is reserved for the
// zero clock (spec.md §4.1 "reference clock 0").
func NewBuilder() *Builder {
	return &Builder{
		clockCount:  1,
		procByName:  make(map[string]int),
		eventByName: make(map[string]int),
	}
}

// fail records the first error and makes all further stage calls no-ops,
// matching lvlath's fail-fast convention (matrix/builder.go lookupIndex).
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// DeclareEvent registers a named event and returns its ID.
func (b *Builder) DeclareEvent(name string) int {
	if b.err != nil {
		return -1
	}
	if name == "" {
		b.fail(fmt.Errorf("model.Builder.DeclareEvent: %w", ErrEmptyName))
		return -1
	}
	if _, dup := b.eventByName[name]; dup {
		b.fail(fmt.Errorf("model.Builder.DeclareEvent(%q): %w", name, ErrDuplicateName))
		return -1
	}
	id := len(b.events)
	b.events = append(b.events, Event{ID: id, Name: name})
	b.eventByName[name] = id
	return id
}

// DeclareIntVar registers a bounded integer variable and returns its index.
func (b *Builder) DeclareIntVar(min, max int64) int {
	if b.err != nil {
		return -1
	}
	idx := b.intVarCount
	b.intVarCount++
	b.intVarMin = append(b.intVarMin, min)
	b.intVarMax = append(b.intVarMax, max)
	return idx
}

// DeclareProcess registers a process with clockCount local clocks
// (excluding the shared zero clock) and returns a *ProcessBuilder used to
// add its locations and edges.
func (b *Builder) DeclareProcess(name string, clockCount int) *ProcessBuilder {
	if b.err != nil {
		return &ProcessBuilder{b: b}
	}
	if name == "" {
		b.fail(fmt.Errorf("model.Builder.DeclareProcess: %w", ErrEmptyName))
		return &ProcessBuilder{b: b}
	}
	if _, dup := b.procByName[name]; dup {
		b.fail(fmt.Errorf("model.Builder.DeclareProcess(%q): %w", name, ErrDuplicateName))
		return &ProcessBuilder{b: b}
	}
	p := &Process{
		ID:          len(b.processes),
		Name:        name,
		ClockOffset: b.clockCount,
		ClockCount:  clockCount,
		byName:      make(map[string]int),
	}
	b.clockCount += clockCount
	b.procByName[name] = p.ID
	b.processes = append(b.processes, p)
	return &ProcessBuilder{b: b, p: p}
}

// DeclareSync registers a synchronization vector. entries must reference
// process names and event names already declared on this Builder.
func (b *Builder) DeclareSync(entries ...SyncEntryRef) {
	if b.err != nil {
		return
	}
	if len(entries) == 0 {
		b.fail(fmt.Errorf("model.Builder.DeclareSync: %w", ErrEmptySyncVector))
		return
	}
	sv := SyncVector{ID: len(b.syncs)}
	seenProc := make(map[int]bool, len(entries))
	for _, e := range entries {
		pid, ok := b.procByName[e.Process]
		if !ok {
			b.fail(fmt.Errorf("model.Builder.DeclareSync: process %q: %w", e.Process, ErrUnknownProcess))
			return
		}
		if seenProc[pid] {
			b.fail(fmt.Errorf("model.Builder.DeclareSync: process %q: %w", e.Process, ErrDuplicateProcessInSync))
			return
		}
		seenProc[pid] = true
		eid, ok := b.eventByName[e.Event]
		if !ok {
			b.fail(fmt.Errorf("model.Builder.DeclareSync: event %q: %w", e.Event, ErrUnknownEvent))
			return
		}
		sv.Entries = append(sv.Entries, SyncEntry{ProcessID: pid, EventID: eid, Strength: e.Strength})
	}
	b.syncs = append(b.syncs, sv)
}

// SyncEntryRef names a synchronization-vector participation by name,
// resolved to IDs by DeclareSync.
type SyncEntryRef struct {
	Process  string
	Event    string
	Strength Strength
}

// ProcessBuilder adds locations and edges to one process declared on a
// Builder. Clock indices passed to AddEdge are local to the process
// (1..ClockCount, with 0 the shared zero clock); Build translates them to
// global indices. Integer-variable indices are the global ones
// DeclareIntVar returns.
type ProcessBuilder struct {
	b *Builder
	p *Process
}

// AddLocation registers a location and returns its local ID.
func (pb *ProcessBuilder) AddLocation(name string, initial, final, committed, urgent bool) int {
	if pb.b.err != nil {
		return -1
	}
	if name == "" {
		pb.b.fail(fmt.Errorf("model.ProcessBuilder.AddLocation: %w", ErrEmptyName))
		return -1
	}
	if _, dup := pb.p.byName[name]; dup {
		pb.b.fail(fmt.Errorf("model.ProcessBuilder.AddLocation(%q): %w", name, ErrDuplicateName))
		return -1
	}
	loc := &Location{
		ID:        len(pb.p.Locations),
		Name:      name,
		Initial:   initial,
		Final:     final,
		Committed: committed,
		Urgent:    urgent,
	}
	pb.p.byName[name] = loc.ID
	pb.p.Locations = append(pb.p.Locations, loc)
	return loc.ID
}

// SetInvariant attaches a clock invariant (in local clock indices) and an
// integer-variable invariant to a location.
func (pb *ProcessBuilder) SetInvariant(locID int, clockInv []zone.Constraint, intInv intstmt.Program) {
	if pb.b.err != nil {
		return
	}
	if locID < 0 || locID >= len(pb.p.Locations) {
		pb.b.fail(fmt.Errorf("model.ProcessBuilder.SetInvariant: %w", ErrUnknownLocation))
		return
	}
	pb.p.Locations[locID].Invariant = clockInv
	pb.p.Locations[locID].IntInvariant = intInv
}

// SetLabels attaches discrete labels to a location, matched later by the
// label package's accepting-set predicate (spec.md §3 "labels").
func (pb *ProcessBuilder) SetLabels(locID int, labels ...string) {
	if pb.b.err != nil {
		return
	}
	if locID < 0 || locID >= len(pb.p.Locations) {
		pb.b.fail(fmt.Errorf("model.ProcessBuilder.SetLabels: %w", ErrUnknownLocation))
		return
	}
	pb.p.Locations[locID].Labels = append(pb.p.Locations[locID].Labels, labels...)
}

// AddEdge adds an edge from src to dst labelled with the named event.
// guard/resets use local clock indices (1-based, 0 = zero clock);
// intGuard/intStatement use global int-var indices.
func (pb *ProcessBuilder) AddEdge(src, dst int, event string, guard []zone.Constraint, resets []zone.Reset, intGuard, intStatement intstmt.Program) int {
	if pb.b.err != nil {
		return -1
	}
	if src < 0 || src >= len(pb.p.Locations) || dst < 0 || dst >= len(pb.p.Locations) {
		pb.b.fail(fmt.Errorf("model.ProcessBuilder.AddEdge: %w", ErrUnknownLocation))
		return -1
	}
	eid, ok := pb.b.eventByName[event]
	if !ok {
		pb.b.fail(fmt.Errorf("model.ProcessBuilder.AddEdge: event %q: %w", event, ErrUnknownEvent))
		return -1
	}
	e := &Edge{
		ID:           len(pb.p.Edges),
		Src:          src,
		Dst:          dst,
		EventID:      eid,
		Guard:        guard,
		Resets:       resets,
		IntGuard:     intGuard,
		IntStatement: intStatement,
	}
	pb.p.Edges = append(pb.p.Edges, e)
	pb.p.Locations[src].Out = append(pb.p.Locations[src].Out, e.ID)
	return e.ID
}

// Build validates the accumulated declarations, offsets clock/int-var
// indices into global space, runs static analysis, and returns the
// immutable System. Stage order follows lvlath's matrix.BuildDenseAdjacency
// doc comment: Validate, then Execute, then Finalize (static analysis),
// then Return.
func (b *Builder) Build() (*System, error) {
	if b.err != nil {
		return nil, b.err
	}
	// Stage 1 (Validate): every process has an initial location.
	for _, p := range b.processes {
		hasInitial := false
		for _, loc := range p.Locations {
			if loc.Initial {
				hasInitial = true
				break
			}
		}
		if !hasInitial {
			return nil, fmt.Errorf("model.Builder.Build: process %q: %w", p.Name, ErrNoInitialLocation)
		}
	}

	// Stage 2 (Execute): offset local clock indices into global space.
	for _, p := range b.processes {
		offsetConstraints(p, p.ClockOffset)
	}

	sys := &System{
		Processes:     b.processes,
		Events:        b.events,
		Syncs:         b.syncs,
		ClockCount:    b.clockCount,
		IntVarCount:   b.intVarCount,
		IntVarMin:     b.intVarMin,
		IntVarMax:     b.intVarMax,
		byProcessName: b.procByName,
		byEventName:   b.eventByName,
	}

	// Stage 3 (Finalize): static analysis maps (spec.md §4.5), computed
	// once and shared by read-only reference thereafter.
	sys.StaticAnalysis = computeStaticAnalysis(sys)

	// Stage 4 (Return)
	return sys, nil
}

// offsetConstraints rewrites a process's local clock indices (1-based
// within the process, 0 always meaning the shared zero clock) into global
// indices, in place.
func offsetConstraints(p *Process, offset int) {
	shift := func(cs []zone.Constraint) {
		for i := range cs {
			if cs[i].I != 0 {
				cs[i].I += offset - 1
			}
			if cs[i].J != 0 {
				cs[i].J += offset - 1
			}
		}
	}
	shiftResets := func(rs []zone.Reset) {
		for i := range rs {
			rs[i].Clock += offset - 1
		}
	}
	for _, loc := range p.Locations {
		shift(loc.Invariant)
	}
	for _, e := range p.Edges {
		shift(e.Guard)
		shiftResets(e.Resets)
	}
}
