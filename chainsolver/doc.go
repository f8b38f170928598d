// Package chainsolver computes exact reachability probabilities and
// expected rewards on a strategy-induced Markov chain (package strategy):
// the inner bound of the engine's two-sided value.
//
// The chain has no further nondeterminism (one outgoing distribution per
// state), so both quantities reduce to solving a linear system
// (I - P_NN) x_N = rhs against the non-target states, which the default
// Solver does via LU decomposition with partial pivoting, adapted from
// the teacher's dense-matrix LU routine (matrix/ops/lu.go), followed by
// forward/back substitution.
//
// Solver is a narrow interface so callers may substitute another exact or
// approximate solver; the LU-based implementation here is the default the
// engine and CLI wire up.
package chainsolver
