// Package simplex implements Freudenthal triangulation of the standard
// probability simplex: enumerating a regular lattice of grid points at a
// given resolution, and decomposing an arbitrary point of the simplex into
// a convex combination of at most n lattice points (a subsimplex plus
// barycentric weights).
//
// This is the discretization step of Lovejoy's fixed-resolution belief-grid
// algorithm: a belief over n hidden-state refinements is a point of the
// (n-1)-simplex, and value iteration only ever stores values at the lattice
// points enumerated by Enumerate, interpolating elsewhere via Decompose.
//
// Contract (strict, mirrors the module's builder-style packages):
//   - Resolution M must be >= 1; n (the simplex dimension, i.e. refinement
//     count) must be >= 1 and <= belief.MaxRefinements.
//   - Enumerate and Decompose never panic on valid input; malformed input
//     (M<1, wrong-length vectors) returns a sentinel error.
//   - Output order is always deterministic, never depends on map iteration.
//
// Complexity:
//   - Enumerate(M, n) produces C(M+n-1, n-1) vertices; time and space are
//     linear in the output size.
//   - Decompose(b, M) is O(n^2): one sort of n floats, n vertices of n
//     coordinates each, and an O(n^2) reconstruction self-check.
package simplex
