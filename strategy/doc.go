// Package strategy extracts a strategy-induced Markov chain from a
// converged value map: starting at the initial belief, it greedily BFS-
// explores reachable beliefs under the action that minimizes (or
// maximizes) the Bellman backup at each state, recording transitions and
// per-state rewards.
//
// The chain is represented as an arena of integer-indexed states ([]State)
// rather than a pointer graph, matching the teacher's preference for
// adjacency-by-index over pointer-linked structures in algorithm-internal
// data (see core.adjacency_list.go).
//
// Extract is deliberately structured like a generic breadth-first
// traversal (see package bfs): a queue of frontier states, OnEnqueue/
// OnVisit hooks, and cooperative context cancellation, specialized to
// belief expansion instead of graph neighbor iteration.
package strategy
