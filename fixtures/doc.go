// Package fixtures ships concrete pomdp.Model implementations used by
// tests, documentation, and the beliefcheck CLI's -fixture flag: Tiger, a
// genuine partially observable model with a noisy sensing action, and
// Gridworld6, a fully observable six-state chain used to cross-check the
// engine against a hand-computed probability.
package fixtures
