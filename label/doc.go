// Package label implements the accepting-label matcher of spec.md §3
// "label matcher for accepting sets" and §6 "-l colon-separated labels":
// a node is accepting iff every label in the configured set is present
// on the discrete state's location labels. Kept as a small, dependency-
// free predicate type in the same spirit as lvlath's core package: a
// plain value type with no package-level state.
package label
