// Package pomdp defines the contract a POMDP data source must satisfy to be
// analyzed by this module, plus the objective/failure vocabulary shared by
// every downstream package (simplex, beliefmdp, valueiter, strategy, engine).
//
// Error policy (explicit and strict, matching the module's other packages):
//   - Only sentinel variables are exposed at package scope.
//   - Callers MUST use errors.Is to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context with fmt.Errorf("...: %w", ErrX).
package pomdp

import "errors"

// ErrTargetNotObservable is returned when a requested target state set is
// not exactly the set of states whose observation lies in the target
// observation set — i.e. "reached the target" is not a function of the
// observation alone.
var ErrTargetNotObservable = errors.New("pomdp: target is not a union of observation classes")

// ErrUnsupported is returned for model shapes this engine intentionally does
// not handle (currently: more than one initial state). Wrap with context
// via fmt.Errorf("pomdp: %w: %s", ErrUnsupported, reason).
var ErrUnsupported = errors.New("pomdp: unsupported model shape")

// ErrNonConverged is returned by the value-iteration driver when the
// configured MaxIters is exhausted without the sup-norm residual dropping
// below the configured tolerance, and the caller asked to treat that as
// fatal (Config.ErrorOnNonConverge).
var ErrNonConverged = errors.New("pomdp: value iteration did not converge")

// ErrCancelled is returned when the caller's context is cancelled between
// value-iteration sweeps or during strategy extraction.
var ErrCancelled = errors.New("pomdp: cancelled")

// ErrInternal marks a violated internal invariant (a bug in this module,
// not a property of the input model): a subsimplex decomposition that fails
// its reconstruction self-check, an interpolation lookup that misses the
// grid, or a singular chain-solver system.
var ErrInternal = errors.New("pomdp: internal invariant violated")
