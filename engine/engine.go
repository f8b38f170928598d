package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/solventlabs/beliefgrid/belief"
	"github.com/solventlabs/beliefgrid/chainsolver"
	"github.com/solventlabs/beliefgrid/interpolate"
	"github.com/solventlabs/beliefgrid/pomdp"
	"github.com/solventlabs/beliefgrid/strategy"
	"github.com/solventlabs/beliefgrid/valueiter"
)

// Check runs value iteration to obtain the outer bound, extracts the
// induced greedy strategy, solves it exactly for the inner bound, and
// assembles both into a single two-sided Result (SPEC_FULL.md §4.8).
func Check(ctx context.Context, cfg Config) (*Result, error) {
	start := time.Now()

	targetObs, err := pomdp.TargetObservations(cfg.Model, cfg.Target)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	b0, err := cfg.Model.InitialBelief()
	if err != nil {
		return nil, fmt.Errorf("engine: initial belief: %w", err)
	}

	viParams := valueiter.Params{
		Model:              cfg.Model,
		Resolution:         cfg.Resolution,
		Objective:          cfg.Objective,
		Direction:          cfg.Direction,
		TermCrit:           cfg.TermCrit,
		TermParam:          cfg.TermParam,
		MaxIters:           cfg.MaxIters,
		ErrorOnNonConverge: cfg.ErrorOnNonConverge,
		TargetObs:          targetObs,
	}
	viResult, err := valueiter.Run(ctx, viParams)
	if err != nil {
		return nil, fmt.Errorf("engine: outer bound: %w", err)
	}

	vOuter, err := outerValue(b0, cfg, targetObs, viResult)
	if err != nil {
		return nil, fmt.Errorf("engine: outer bound: %w", err)
	}
	accOuter := pomdp.FromResidual(vOuter, viResult.Residual, viParams.TermCrit == valueiter.Relative)

	chain, err := strategy.Extract(b0, strategy.Params{
		Model:      cfg.Model,
		Resolution: cfg.Resolution,
		Objective:  cfg.Objective,
		Direction:  cfg.Direction,
		TargetObs:  targetObs,
		V:          viResult.V,
	})
	if err != nil {
		return nil, fmt.Errorf("engine: strategy extraction: %w", err)
	}

	solver := cfg.Solver
	if solver == nil {
		solver = chainsolver.NewLUSolver()
	}

	var vInner float64
	var accInner pomdp.Accuracy
	switch cfg.Objective {
	case pomdp.Reachability:
		vInner, accInner, err = solver.ReachProbs(ctx, chain)
	default:
		vInner, accInner, err = solver.ReachRewards(ctx, chain)
	}
	if err != nil {
		return nil, fmt.Errorf("engine: inner-bound solve: %w", err)
	}

	acc := assembleBounds(cfg.Direction, vOuter, accOuter, vInner, accInner)

	res := &Result{
		Value:     vOuter,
		Accuracy:  acc,
		NumIters:  viResult.NumIters,
		TimeTaken: time.Since(start),
	}

	if cfg.ExportStrategyPath != "" {
		chainPath, dotPath, err := export(chain, cfg.ExportStrategyPath)
		if err != nil {
			return nil, fmt.Errorf("engine: export: %w", err)
		}
		res.ChainTxtPath, res.DotPath = chainPath, dotPath
	}

	return res, nil
}

// outerValue is ṽ(b0) against the converged (or budget-exhausted) value
// map: the pinned target sentinel if b0 is itself a target belief,
// otherwise barycentric interpolation, matching valueiter's own vTilde
// rule so the outer bound and the grid it was computed from agree on the
// root belief.
func outerValue(b0 belief.Belief, cfg Config, targetObs map[int]bool, r *valueiter.Result) (float64, error) {
	if targetObs[b0.So] {
		if cfg.Objective == pomdp.Reachability {
			return 1, nil
		}
		return 0, nil
	}
	return interpolate.Value(b0, cfg.Resolution, r.V)
}

// assembleBounds folds the outer and inner bounds into one reported
// interval: the min objective treats v_outer as the conservative lower
// bound and v_inner as the upper, the max objective the reverse
// (SPEC_FULL.md §4.8). The result is the union of that ordered interval
// with both sides' own residual-derived accuracy, so a loose outer
// accuracy never hides a tight inner one or vice versa.
func assembleBounds(dir pomdp.Direction, vOuter float64, accOuter pomdp.Accuracy, vInner float64, accInner pomdp.Accuracy) pomdp.Accuracy {
	ordered := pomdp.Accuracy{Lower: vOuter, Upper: vInner}
	if dir == pomdp.Max {
		ordered = pomdp.Accuracy{Lower: vInner, Upper: vOuter}
	}
	return pomdp.Union(pomdp.Union(accOuter, accInner), ordered)
}
