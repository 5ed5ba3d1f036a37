package model

import (
	"github.com/tchecker-go/tchecker/intstmt"
	"github.com/tchecker-go/tchecker/zone"
)

// Strength classifies a process's participation in a synchronization
// vector entry: Strong entries must all fire together, Weak entries fire
// if enabled. Spec.md §3 "Synchronization vector".
type Strength bool

const (
	Strong Strength = true
	Weak   Strength = false
)

// Event is a single labelled action.
type Event struct {
	ID   int
	Name string
}

// Location is a single control-state of a process. Spec.md §3 mentions
// the initial/final/committed/urgent flags explicitly (spec.md §1).
type Location struct {
	ID        int
	Name      string
	Initial   bool
	Final     bool
	Committed bool
	Urgent    bool
	Magnetic  bool // spec.md §9 Open Question 2: explicit attribute, not a name heuristic

	// Labels holds the location's discrete labels, matched against an
	// accepting label set by the label package (spec.md §3 "labels").
	Labels []string

	// Invariant is the location's clock invariant, expressed over the
	// process's local clock indices (translated to global indices by
	// Builder.Build).
	Invariant []zone.Constraint

	// IntInvariant is the location's integer-variable invariant guard.
	IntInvariant intstmt.Program

	// Out holds the indices (into Process.Edges) of edges leaving this
	// location, in declaration order.
	Out []int
}

// Edge is a single transition of one process, possibly participating in a
// synchronization vector by exposing EventID.
type Edge struct {
	ID      int
	Src     int // Location.ID within the owning process
	Dst     int
	EventID int

	Guard        []zone.Constraint  // clock guard, global clock indices once built
	Resets       []zone.Reset       // clock resets, global clock indices once built
	IntGuard     intstmt.Program    // integer-variable guard
	IntStatement intstmt.Program    // integer-variable update
}

// Process is a single sequential component: a location graph plus its
// local clocks.
type Process struct {
	ID   int
	Name string

	Locations []*Location
	Edges     []*Edge

	// ClockOffset is the first global clock index owned by this process;
	// ClockCount clocks [ClockOffset, ClockOffset+ClockCount) belong to it.
	// Index 0 (the zero clock) is never owned by a process.
	ClockOffset int
	ClockCount  int

	byName map[string]int // location name -> index into Locations
}

// SyncEntry is one (process, event, strength) triple of a synchronization
// vector.
type SyncEntry struct {
	ProcessID int
	EventID   int
	Strength  Strength
}

// SyncVector is a set of process participations that must fire together
// (for Strong entries) when the vector is taken. Spec.md §3
// "Synchronization vector".
type SyncVector struct {
	ID      int
	Entries []SyncEntry
}

// System is the compiled NTA: spec.md §1's "compiled model".
type System struct {
	Processes   []*Process
	Events      []Event
	Syncs       []SyncVector
	ClockCount  int // total clocks, including the zero clock at index 0
	IntVarCount int
	IntVarMin   []int64
	IntVarMax   []int64

	byProcessName map[string]int
	byEventName   map[string]int

	*StaticAnalysis
}

// ProcessByName looks up a process by name.
func (s *System) ProcessByName(name string) (*Process, bool) {
	idx, ok := s.byProcessName[name]
	if !ok {
		return nil, false
	}
	return s.Processes[idx], true
}

// EventByName looks up an event by name.
func (s *System) EventByName(name string) (Event, bool) {
	idx, ok := s.byEventName[name]
	if !ok {
		return Event{}, false
	}
	return s.Events[idx], true
}

// LocationByName looks up a location within this process by name.
func (p *Process) LocationByName(name string) (*Location, bool) {
	idx, ok := p.byName[name]
	if !ok {
		return nil, false
	}
	return p.Locations[idx], true
}
