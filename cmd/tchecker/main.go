package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// options mirrors spec.md §6's command-line surface one field per flag.
type options struct {
	cover     string // -c
	format    string // -f
	labels    string // -l
	model     string // -m  graph:semantics[:extrapolation]
	output    string // -o
	order     string // -s
	stats     bool   // -S
	server    string // --server
	spread    int64  // --spread
	sourceSet string // --source-set
	blockSize int    // --block-size
	tableSize int    // --table-size
}

func main() {
	var o options

	root := &cobra.Command{
		Use:   "tchecker MODEL",
		Short: "Covering-reachability model checker for networks of timed automata",
		Long: `tchecker explores the symbolic state space of a network of timed
automata through zone-based successor computation, subsumption against a
covering graph, and optional partial-order reduction, then reports
whether an accepting node is reachable.

No textual system-declaration parser is built here (out of scope); MODEL
instead names one of a handful of built-in systems:

  abcd               two-process handshake; label ACC is reachable
  abcd-unreachable    the same system with ACC moved out of reach
  fischer:N           Fischer's mutual exclusion protocol, N processes
  clientserver:N       one server process and N client processes

Examples:
  tchecker -l ACC abcd
  tchecker -m async_zg:elapsed -S --source-set cs --server S clientserver:4
  tchecker -m zg:elapsed:extraLUg -c aLUg -s dfs fischer:3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, args[0])
		},
	}

	flags := root.Flags()
	flags.StringVarP(&o.cover, "cover", "c", "inclusion", "cover predicate: inclusion/aLUg/aLUl/aMg/aMl")
	flags.StringVarP(&o.format, "format", "f", "raw", "final graph output format: dot/raw")
	flags.StringVarP(&o.labels, "labels", "l", "", "colon-separated accepting label set")
	flags.StringVarP(&o.model, "semantics", "m", "zg:elapsed:NOextra", "graph:semantics[:extrapolation]")
	flags.StringVarP(&o.output, "output", "o", "", "destination file (default stdout)")
	flags.StringVarP(&o.order, "waiting", "s", "bfs", "waiting policy: bfs/dfs")
	flags.BoolVarP(&o.stats, "stats", "S", false, "emit run statistics")
	flags.StringVar(&o.server, "server", "", "server process name (mandatory for cs/por*/mag/rr)")
	flags.Int64Var(&o.spread, "spread", -1, "reference-clock spread bound (0 = synchronized, negative = unrestricted)")
	flags.StringVar(&o.sourceSet, "source-set", "", "POR policy: cs/gl/por1/por2/por3/por4/por5/mag (empty disables POR)")
	flags.IntVar(&o.blockSize, "block-size", 10000, "pool block size")
	flags.IntVar(&o.tableSize, "table-size", 65536, "node hash-table size (accepted for CLI stability; Graph is map-backed and grows unbounded)")

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
