package label

import (
	"strings"

	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/ts"
)

// Set is an accepting label set (spec.md §6 "-l colon-separated labels"):
// a node is accepting iff every label in the set is attached to some
// process's current location in that node's discrete state.
type Set struct {
	labels map[string]struct{}
}

// NewSet builds a Set from individual label names.
func NewSet(labels ...string) Set {
	s := Set{labels: make(map[string]struct{}, len(labels))}
	for _, l := range labels {
		if l == "" {
			continue
		}
		s.labels[l] = struct{}{}
	}
	return s
}

// Parse splits a colon-separated label list, the format spec.md §6's `-l`
// flag takes on the command line (e.g. "ACC:DONE").
func Parse(spec string) Set {
	if spec == "" {
		return NewSet()
	}
	return NewSet(strings.Split(spec, ":")...)
}

// Empty reports whether the set carries no labels. An empty set never
// accepts (spec.md §3 "Accepting node"): with nothing to require, a
// reachability query with no `-l` flag has no accepting condition to
// test against, and covreach treats that as "always run to exhaustion".
func (s Set) Empty() bool { return len(s.labels) == 0 }

// Matches reports whether every label in s is present in present.
func (s Set) Matches(present map[string]struct{}) bool {
	for l := range s.labels {
		if _, ok := present[l]; !ok {
			return false
		}
	}
	return true
}

// VlocLabels collects the union of discrete labels attached to the
// current location of every process in vloc.
func VlocLabels(sys *model.System, vloc ts.Vloc) map[string]struct{} {
	present := make(map[string]struct{})
	for pid, locID := range vloc {
		p := sys.Processes[pid]
		for _, l := range p.Locations[locID].Labels {
			present[l] = struct{}{}
		}
	}
	return present
}

// AcceptsVloc reports whether vloc's union of location labels satisfies
// s (spec.md §3 "node is accepting iff all labels match").
func (s Set) AcceptsVloc(sys *model.System, vloc ts.Vloc) bool {
	if s.Empty() {
		return false
	}
	return s.Matches(VlocLabels(sys, vloc))
}
