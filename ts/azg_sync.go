package ts

import (
	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/status"
	"github.com/tchecker-go/tchecker/zone"
)

// AZGSyncState pairs an AZGState with its synchronized-zone projection: a
// plain DBM derived via OffsetDBM.ToDBM once the offset-DBM is
// synchronized, used as the representation extrapolation operators need
// (spec.md §4.4 layer 5 "AZG sync-zones").
type AZGSyncState struct {
	AZG  *AZGState
	Sync *dbm.DBM // nil when the offset zone could not be synchronized
}

// Clone returns an independent deep copy.
func (s *AZGSyncState) Clone() *AZGSyncState {
	c := &AZGSyncState{AZG: s.AZG.Clone()}
	if s.Sync != nil {
		c.Sync = s.Sync.Clone()
	}
	return c
}

// AZGSync wraps an AZG layer, deriving a synchronized DBM after every
// successor computation and extrapolating it with the given clock-bound
// vector(s), rather than extrapolating the offset-DBM directly (spec.md
// §4.4 layer 5: "used by extrapolation variants that need a
// single-reference representation").
type AZGSync struct {
	AZG      *AZG
	Extra    zone.ExtraKind
	BoundsOf func(vloc Vloc) zone.Bounds
}

// NewAZGSync returns an AZGSync layer. A nil boundsOf disables
// extrapolation regardless of extra.
func NewAZGSync(sys *model.System, azg *AZG, extra zone.ExtraKind, boundsOf func(vloc Vloc) zone.Bounds) *AZGSync {
	if boundsOf == nil {
		boundsOf = func(Vloc) zone.Bounds { return zone.Bounds{} }
	}
	return &AZGSync{AZG: azg, Extra: extra, BoundsOf: boundsOf}
}

// Initial returns one AZGSyncState per AZG initial configuration, with
// its Sync projection computed immediately (the initial offset zone is
// always synchronized: every clock starts at its reference clock's
// value).
func (g *AZGSync) Initial() []*AZGSyncState {
	var out []*AZGSyncState
	for _, s := range g.AZG.Initial() {
		out = append(out, g.project(&AZGSyncState{AZG: s}))
	}
	return out
}

// OutgoingEdges delegates to the AZG layer.
func (g *AZGSync) OutgoingEdges(s *AZGSyncState) []Vedge {
	return g.AZG.OutgoingEdges(s.AZG)
}

// Next computes the AZG successor, then re-derives and extrapolates the
// synchronized-zone projection.
func (g *AZGSync) Next(s *AZGSyncState, vedge Vedge) status.Status {
	if st := g.AZG.Next(s.AZG, vedge); !st.OK() {
		return st
	}
	*s = *g.project(s)
	if s.Sync == nil {
		// Not synchronized: acceptable for an AZG-bounded-spread run, but
		// this layer's Bounds consumer has nothing to extrapolate.
		return status.OK
	}
	bounds := g.BoundsOf(s.AZG.Discrete.Vloc)
	if err := applyExtrapolation(s.Sync, g.Extra, bounds); err != nil {
		return status.EmptyZone
	}
	if s.Sync.IsEmptyZero() {
		return status.EmptyZone
	}
	return status.OK
}

// applyExtrapolation runs the dbm-level extrapolation operator matching
// kind; mirrors zone.Bounds' private dispatch (zone/semantics.go) since
// that method is not exported and AZGSync extrapolates a projected DBM
// the zone package never sees.
func applyExtrapolation(d *dbm.DBM, kind zone.ExtraKind, b zone.Bounds) error {
	switch kind {
	case zone.NoExtrapolation:
		return nil
	case zone.ExtraM:
		return dbm.ExtraM(d, b.M)
	case zone.ExtraMPlus:
		return dbm.ExtraMPlus(d, b.M)
	case zone.ExtraLU:
		return dbm.ExtraLU(d, b.Lower, b.Upper)
	case zone.ExtraLUPlus:
		return dbm.ExtraLUPlus(d, b.Lower, b.Upper)
	default:
		return nil
	}
}

// project synchronizes a clone of s.AZG's offset-DBM and derives the
// single-reference DBM via ToDBM, leaving s.AZG itself untouched (the
// offset zone is the semantic truth; Sync is a derived view).
func (g *AZGSync) project(s *AZGSyncState) *AZGSyncState {
	clone := s.AZG.Zone.OffsetDBM().Clone()
	if st, err := clone.Synchronize(); err != nil || st == dbm.Empty {
		return &AZGSyncState{AZG: s.AZG, Sync: nil}
	}
	projected, err := clone.ToDBM()
	if err != nil {
		return &AZGSyncState{AZG: s.AZG, Sync: nil}
	}
	return &AZGSyncState{AZG: s.AZG, Sync: projected}
}
