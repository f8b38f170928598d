// Package beliefgrid computes two-sided value bounds on partially
// observable Markov decision processes via Lovejoy's fixed-resolution
// belief-grid value iteration.
//
// The module is organized under one subpackage per concern:
//
//	belief/       — the Belief type: an observation class plus a probability
//	                vector over its hidden refinements
//	pomdp/        — the Model contract, Objective/Direction vocabulary, and
//	                shared sentinel errors
//	simplex/      — Freudenthal triangulation: grid enumeration and
//	                barycentric decomposition
//	beliefmdp/    — Bayesian belief updates that turn a POMDP into a belief
//	                MDP for a fixed action
//	interpolate/  — barycentric interpolation of a value map at an
//	                arbitrary (non-grid) belief
//	valueiter/    — the synchronous Bellman sweep driver (the outer bound)
//	strategy/     — greedy policy extraction into a belief Markov chain
//	chainsolver/  — exact LU-based reachability/reward solving on that
//	                chain (the inner bound)
//	engine/       — Check, the orchestration entry point that assembles
//	                both bounds and optionally exports the strategy
//	fixtures/     — Tiger and Gridworld6 example models
//	config/       — YAML configuration loading
//	cmd/beliefcheck/ — the command-line frontend
//
// See SPEC_FULL.md and DESIGN.md in the repository root for the full
// design rationale.
package beliefgrid
