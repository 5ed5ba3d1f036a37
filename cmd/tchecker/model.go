package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tchecker-go/tchecker/examples"
	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/zone"
)

// resolveModel maps the MODEL positional argument to a built-in system
// (spec.md §1 scopes a textual parser out; examples fills that gap).
func resolveModel(name string) (*model.System, error) {
	switch {
	case name == "abcd":
		return examples.ABCD(false)
	case name == "abcd-unreachable":
		return examples.ABCD(true)
	case strings.HasPrefix(name, "fischer:"):
		n, err := strconv.Atoi(strings.TrimPrefix(name, "fischer:"))
		if err != nil {
			return nil, fmt.Errorf("fischer: process count: %w", err)
		}
		return examples.Fischer(n)
	case strings.HasPrefix(name, "clientserver:"):
		n, err := strconv.Atoi(strings.TrimPrefix(name, "clientserver:"))
		if err != nil {
			return nil, fmt.Errorf("clientserver: client count: %w", err)
		}
		return examples.ClientServer(n)
	default:
		return nil, fmt.Errorf("unknown MODEL %q (want abcd, abcd-unreachable, fischer:N or clientserver:N)", name)
	}
}

// parseModelFlag splits -m's "graph:semantics[:extrapolation]" value
// (spec.md §6).
func parseModelFlag(m string) (graphKind, semKind, extraTok string, err error) {
	parts := strings.Split(m, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return "", "", "", fmt.Errorf("invalid -m %q: want graph:semantics[:extrapolation]", m)
	}
	graphKind, semKind = parts[0], parts[1]
	if len(parts) == 3 {
		extraTok = parts[2]
	}
	if graphKind != "zg" && graphKind != "async_zg" {
		return "", "", "", fmt.Errorf("invalid -m graph %q: want zg or async_zg", graphKind)
	}
	if semKind != "elapsed" && semKind != "non-elapsed" {
		return "", "", "", fmt.Errorf("invalid -m semantics %q: want elapsed or non-elapsed", semKind)
	}
	if extraTok == "" && graphKind == "zg" {
		return "", "", "", fmt.Errorf("invalid -m %q: empty extrapolation is allowed only for async_zg", m)
	}
	return graphKind, semKind, extraTok, nil
}

// parseExtra maps an -m extrapolation token to its ExtraKind; the
// trailing g/l distinguishes global from local clock bounds, a property
// of which Bounds the caller supplies rather than of ExtraKind itself
// (zone package doc).
func parseExtra(tok string) (kind zone.ExtraKind, local bool, err error) {
	switch tok {
	case "", "NOextra":
		return zone.NoExtrapolation, false, nil
	case "extraMg":
		return zone.ExtraM, false, nil
	case "extraMl":
		return zone.ExtraM, true, nil
	case "extraM+g":
		return zone.ExtraMPlus, false, nil
	case "extraM+l":
		return zone.ExtraMPlus, true, nil
	case "extraLUg":
		return zone.ExtraLU, false, nil
	case "extraLUl":
		return zone.ExtraLU, true, nil
	case "extraLU+g":
		return zone.ExtraLUPlus, false, nil
	case "extraLU+l":
		return zone.ExtraLUPlus, true, nil
	default:
		return zone.NoExtrapolation, false, fmt.Errorf("invalid -m extrapolation %q", tok)
	}
}

// computeGlobalBounds derives a single clock-bound vector (and its
// (lower, upper) split) shared by every location, from the largest
// constant each clock is compared against across every guard and
// invariant in sys. Grounded on original_source's static_analysis.hh,
// which computes per-clock bound tables the same way; this CLI wires
// only the global variant — -c/-m's "local" forms read the same table
// regardless of the state's location, a deliberate simplification noted
// in DESIGN.md rather than a true per-location bound table.
func computeGlobalBounds(sys *model.System) zone.Bounds {
	m := make([]int64, sys.ClockCount)
	lower := make([]int64, sys.ClockCount)
	upper := make([]int64, sys.ClockCount)

	observe := func(cs []zone.Constraint) {
		for _, c := range cs {
			if c.B.Infinite {
				continue
			}
			v := c.B.Value
			if v < 0 {
				v = -v
			}
			if c.I != 0 {
				if v > m[c.I] {
					m[c.I] = v
				}
				if v > upper[c.I] {
					upper[c.I] = v
				}
			}
			if c.J != 0 {
				if v > m[c.J] {
					m[c.J] = v
				}
				if v > lower[c.J] {
					lower[c.J] = v
				}
			}
		}
	}

	for _, p := range sys.Processes {
		for _, loc := range p.Locations {
			observe(loc.Invariant)
		}
		for _, e := range p.Edges {
			observe(e.Guard)
		}
	}
	return zone.Bounds{M: m, Lower: lower, Upper: upper}
}

// formatVloc renders a location tuple as "loc0,loc1,..." for -f dot/raw
// node labels.
func formatVloc(sys *model.System, vloc []int) string {
	parts := make([]string, len(vloc))
	for pid, locID := range vloc {
		parts[pid] = sys.Processes[pid].Locations[locID].Name
	}
	return strings.Join(parts, ",")
}
