package sink

import (
	"fmt"
	"io"

	"github.com/tchecker-go/tchecker/subsumption"
)

// NodeLabeler renders a node's state as the text shown inside its DOT
// node (or, for WriteRaw, on its line). Callers typically format the
// discrete part of a state (vloc/intvars) since the zone itself is rarely
// legible in a handful of characters.
type NodeLabeler[S any] func(S) string

// WriteDOT renders g as a Graphviz DOT digraph: one node per active
// record in g.AllNodes, labeled by label, and one edge per adjacency
// entry, styled solid for subsumption.Actual and dashed for
// subsumption.Abstract (spec.md §3 "Edge ... kind"). Spec.md §6 "-f dot".
func WriteDOT[S any](w io.Writer, g *subsumption.Graph[S], label NodeLabeler[S]) error {
	if _, err := fmt.Fprintln(w, "digraph tchecker {"); err != nil {
		return err
	}

	nodes := g.AllNodes()
	ids := make(map[*subsumption.Node[S]]int, len(nodes))
	for i, n := range nodes {
		ids[n] = i
		if _, err := fmt.Fprintf(w, "  n%d [label=%q];\n", i, label(n.State)); err != nil {
			return err
		}
	}

	for _, n := range nodes {
		for _, e := range g.Outgoing(n) {
			style := "solid"
			if e.Kind == subsumption.Abstract {
				style = "dashed"
			}
			if _, err := fmt.Fprintf(w, "  n%d -> n%d [style=%s];\n", ids[e.Src], ids[e.Tgt], style); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
