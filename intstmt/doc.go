// Package intstmt implements the small stack-based bytecode VM that
// spec.md §4.4 layer 1 (TA) uses to evaluate integer-variable guards and
// execute integer-variable statements/updates: "integer-variable updates
// via bytecode executed in a stack VM; no clock/zone."
//
// A Program is a flat instruction sequence operating on an explicit
// operand stack and a Valuation (a fixed-width array of bounded integers,
// spec.md §3 "Integer variables valuation (intvars_val)"). Guards run a
// Program and interpret a non-zero top-of-stack as "pass"; statements run
// a Program for its side effects on the Valuation via OpStoreVar.
package intstmt
