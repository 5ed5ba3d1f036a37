package sink

import (
	"fmt"
	"io"

	"github.com/tchecker-go/tchecker/subsumption"
)

// WriteRaw renders g as a flat text listing: one "NODE id label" line per
// active node, then one "EDGE kind src dst" line per edge. Spec.md §6
// "-f raw" — a format with no external rendering dependency, for
// machine-readable post-processing.
func WriteRaw[S any](w io.Writer, g *subsumption.Graph[S], label NodeLabeler[S]) error {
	nodes := g.AllNodes()
	ids := make(map[*subsumption.Node[S]]int, len(nodes))
	for i, n := range nodes {
		ids[n] = i
		if _, err := fmt.Fprintf(w, "NODE %d %s\n", i, label(n.State)); err != nil {
			return err
		}
	}

	for _, n := range nodes {
		for _, e := range g.Outgoing(n) {
			kind := "ACTUAL"
			if e.Kind == subsumption.Abstract {
				kind = "ABSTRACT"
			}
			if _, err := fmt.Fprintf(w, "EDGE %s %d %d\n", kind, ids[e.Src], ids[e.Tgt]); err != nil {
				return err
			}
		}
	}
	return nil
}
