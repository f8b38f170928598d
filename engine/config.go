package engine

import (
	"time"

	"github.com/solventlabs/beliefgrid/chainsolver"
	"github.com/solventlabs/beliefgrid/pomdp"
	"github.com/solventlabs/beliefgrid/valueiter"
)

// Accuracy is the {Lower, Upper} interval a reported value carries. It is a
// type alias of pomdp.Accuracy: engine and chainsolver both need
// the same vocabulary, and pomdp is the lowest package in the dependency
// graph that both engine and chainsolver already import, so defining it
// there avoids an import cycle between engine (which injects a
// chainsolver.Solver) and chainsolver (whose interface returns an
// Accuracy).
type Accuracy = pomdp.Accuracy

// Config bundles everything one Check call needs. It is passed by value
// and never mutated: the module carries no package-level driver state
// (SPEC_FULL.md §9).
type Config struct {
	Model     pomdp.Model
	Target    map[int]bool
	Objective pomdp.Objective
	Direction pomdp.Direction

	Resolution int
	MaxIters   int
	TermCrit   valueiter.TermCriterion
	TermParam  float64

	// ErrorOnNonConverge makes Check fail with pomdp.ErrNonConverged
	// instead of returning a Result with a looser accuracy when the outer
	// bound does not converge within MaxIters.
	ErrorOnNonConverge bool

	// Solver computes the inner bound on the extracted strategy chain. If
	// nil, chainsolver.NewLUSolver() is used.
	Solver chainsolver.Solver

	// ExportStrategyPath, if non-empty, triggers §4.10 export of the
	// extracted strategy chain to "<path>.chain.txt" and "<path>.dot".
	ExportStrategyPath string
}

// Result is the outcome of a successful Check call.
type Result struct {
	Value     float64
	Accuracy  Accuracy
	NumIters  int
	TimeTaken time.Duration

	// ChainTxtPath and DotPath are set iff Config.ExportStrategyPath was
	// non-empty.
	ChainTxtPath string
	DotPath      string
}
