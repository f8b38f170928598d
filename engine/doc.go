// Package engine assembles the two-sided value bound described by
// SPEC_FULL.md §4.8: an outer bound from grid value iteration (package
// valueiter) and an inner bound from exact chain solving (package
// chainsolver) on the greedy strategy (package strategy) that value
// iteration induces.
//
// Check is the single entry point. It takes an immutable Config, never
// holds package-level mutable state, and returns a Result or an error;
// no partial Result is ever returned alongside a failure.
package engine
