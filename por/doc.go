// Package por implements the partial-order-reduction policies of
// spec.md §4.9: cs, gl, por1, por2, por3, por5, rr, magnetic and
// pure-local. Each is a (state extension, source-set predicate,
// synchronizability filter) triple wrapped around any ts.TS[S] layer.
//
// por4 is deliberately not implemented (spec.md §9 Open Question 1):
// the original source's por4 builder never compiled, and no published
// POR theory reference was available to re-derive it faithfully, so
// --source-set por4 is accepted on the CLI surface but refused as a
// model-structural mismatch at startup (spec.md §7).
//
// Structured as a decorator around ts.TS[S], matching the adapter style
// ts/ts.go already uses for its AsTS wrappers: por.Wrapped[S] composes a
// base layer and a Policy, adding POR memory to the state and filtering
// OutgoingEdges through the policy's source-set predicate.
package por
