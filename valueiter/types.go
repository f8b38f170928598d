package valueiter

import (
	"errors"

	"github.com/solventlabs/beliefgrid/belief"
	"github.com/solventlabs/beliefgrid/pomdp"
)

// actionEps guards the strict-better action comparison in a sweep against
// floating-point drift (SPEC §4.4).
const actionEps = 1e-6

// ErrBadResolution indicates a resolution M < 2 was requested; at M=1 the
// grid holds only the corners of each simplex (one vertex per refinement),
// with no vertex strictly inside it.
var ErrBadResolution = errors.New("valueiter: resolution must be >= 2")

// ErrBadMaxIters indicates MaxIters < 1 was requested.
var ErrBadMaxIters = errors.New("valueiter: MaxIters must be >= 1")

// TermCriterion selects how the sup-norm sweep residual is compared against
// Params.TermParam.
type TermCriterion int

const (
	// Absolute converges when max_b |V[b]-V_prev[b]| <= TermParam.
	Absolute TermCriterion = iota
	// Relative converges when, for every b, |V[b]-V_prev[b]| <= TermParam*|V[b]|.
	Relative
)

// String implements fmt.Stringer for log and config messages.
func (c TermCriterion) String() string {
	if c == Relative {
		return "relative"
	}
	return "absolute"
}

// Params configures a single value-iteration run. It is immutable once
// passed to Run: the driver holds no package-level mutable state (SPEC §9).
type Params struct {
	Model      pomdp.Model
	Resolution int
	Objective  pomdp.Objective
	Direction  pomdp.Direction
	TermCrit   TermCriterion
	TermParam  float64
	MaxIters   int
	// ErrorOnNonConverge, if true, makes Run fail with pomdp.ErrNonConverged
	// instead of returning a Result with a loose accuracy when MaxIters is
	// exhausted without convergence.
	ErrorOnNonConverge bool
	// TargetObs is O_T, the set of observation classes that are the target
	// (see pomdp.TargetObservations).
	TargetObs map[int]bool
}

// Result is the outcome of a converged (or budget-exhausted) value
// iteration run.
type Result struct {
	// V is the final value map (V_prev after the last completed sweep).
	V map[belief.Belief]float64
	// NumIters is the number of completed sweeps.
	NumIters int
	// Residual is the final sup-norm change between V and V_prev.
	Residual float64
	// Converged reports whether the termination criterion was met before
	// MaxIters was exhausted.
	Converged bool
}
