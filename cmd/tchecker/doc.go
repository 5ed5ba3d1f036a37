// Command tchecker runs the covering-reachability engine (spec.md §1)
// against one of a handful of built-in systems and prints a reachability
// verdict, following the command-line surface of spec.md §6. A textual
// model parser is explicitly out of scope (spec.md §1 "Parsing of the
// input model ... deliberately out of scope"), so the MODEL positional
// argument selects a system the examples package builds in memory rather
// than naming a file.
//
// Flag wiring mirrors ja7ad-consumption's cmd/consumption (single cobra
// root command, RunE returning the error, slog reporting a terminal
// failure before os.Exit).
package main
