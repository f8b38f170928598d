// Package valueiter implements the synchronous Bellman sweep over a
// fixed-resolution belief grid (Lovejoy 1991): repeated application of the
// Bellman optimality operator to a value map V defined on grid vertices,
// until the sup-norm change between sweeps drops below a configured
// tolerance or a sweep budget is exhausted.
//
// Complexity: each sweep is O(|U| · |A| · |successors|), where |U| is the
// grid size from package simplex, |A| is the per-observation action count,
// and successor counts come from package beliefmdp.
//
// Like the teacher's single-pass graph algorithms, the driver is built as
// an internal runner: newRunner validates and initializes, runner.sweep
// performs one synchronous pass, runner.run loops until convergence,
// cancellation, or the iteration budget is exhausted.
package valueiter
