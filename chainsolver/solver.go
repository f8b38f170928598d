package chainsolver

import (
	"context"
	"fmt"

	"github.com/solventlabs/beliefgrid/pomdp"
	"github.com/solventlabs/beliefgrid/strategy"
)

// Solver computes absorption quantities on a strategy chain. ReachProbs
// returns the probability of eventually reaching a target state from the
// chain's root (state 0); ReachRewards returns the expected cumulative
// per-state reward accrued before reaching one.
type Solver interface {
	ReachProbs(ctx context.Context, chain *strategy.Chain) (float64, pomdp.Accuracy, error)
	ReachRewards(ctx context.Context, chain *strategy.Chain) (float64, pomdp.Accuracy, error)
}

// LUSolver is the default Solver: exact linear solve via LU decomposition
// with partial pivoting.
type LUSolver struct{}

// NewLUSolver returns the default chain solver.
func NewLUSolver() *LUSolver { return &LUSolver{} }

func (LUSolver) ReachProbs(ctx context.Context, chain *strategy.Chain) (float64, pomdp.Accuracy, error) {
	select {
	case <-ctx.Done():
		return 0, pomdp.Accuracy{}, fmt.Errorf("chainsolver: ReachProbs: %w", pomdp.ErrCancelled)
	default:
	}

	nonTarget, toLocal := partitionStates(chain)
	n := len(nonTarget)
	if n == 0 {
		return 1, pomdp.Accuracy{Lower: 1, Upper: 1}, nil
	}

	// States with no path to a target are pinned at x = 0; leaving them in
	// the system would make it singular (e.g. a non-target absorbing trap).
	canReach := make([]bool, chain.NumStates())
	for changed := true; changed; {
		changed = false
		for i, s := range chain.States {
			for _, t := range s.Out {
				if !canReach[i] && t.Prob > 0 && (chain.States[t.To].Target || canReach[t.To]) {
					canReach[i], changed = true, true
				}
			}
		}
	}

	a := newMatrix(n, n)
	rhs := make([]float64, n)
	for li, global := range nonTarget {
		a.set(li, li, 1)
		if !canReach[global] {
			continue
		}
		for _, t := range chain.States[global].Out {
			if chain.States[t.To].Target {
				rhs[li] += t.Prob
				continue
			}
			lj := toLocal[t.To]
			a.add(li, lj, -t.Prob)
		}
	}

	x, residual, err := solve(a, rhs)
	if err != nil {
		return 0, pomdp.Accuracy{}, fmt.Errorf("chainsolver: ReachProbs: %w", err)
	}

	value := valueForRoot(chain, toLocal, x, 1)
	return value, pomdp.Accuracy{Lower: value - residual, Upper: value + residual}, nil
}

func (LUSolver) ReachRewards(ctx context.Context, chain *strategy.Chain) (float64, pomdp.Accuracy, error) {
	select {
	case <-ctx.Done():
		return 0, pomdp.Accuracy{}, fmt.Errorf("chainsolver: ReachRewards: %w", pomdp.ErrCancelled)
	default:
	}

	nonTarget, toLocal := partitionStates(chain)
	n := len(nonTarget)
	if n == 0 {
		return 0, pomdp.Accuracy{}, nil
	}

	a := newMatrix(n, n)
	rhs := make([]float64, n)
	for li, global := range nonTarget {
		a.set(li, li, 1)
		rhs[li] = chain.States[global].Reward
		for _, t := range chain.States[global].Out {
			if chain.States[t.To].Target {
				continue
			}
			lj := toLocal[t.To]
			a.add(li, lj, -t.Prob)
		}
	}

	x, residual, err := solve(a, rhs)
	if err != nil {
		return 0, pomdp.Accuracy{}, fmt.Errorf("chainsolver: ReachRewards: %w", err)
	}

	value := valueForRoot(chain, toLocal, x, 0)
	return value, pomdp.Accuracy{Lower: value - residual, Upper: value + residual}, nil
}

// partitionStates splits chain states into non-target (solved for) and
// target (pinned), returning the non-target global indices in order and a
// map from global index to its row/column in the linear system.
func partitionStates(chain *strategy.Chain) ([]int, map[int]int) {
	nonTarget := make([]int, 0, chain.NumStates())
	toLocal := make(map[int]int, chain.NumStates())
	for i, s := range chain.States {
		if s.Target {
			continue
		}
		toLocal[i] = len(nonTarget)
		nonTarget = append(nonTarget, i)
	}
	return nonTarget, toLocal
}

// valueForRoot returns x[0] if state 0 is non-target, or the pinned target
// sentinel (1 for reachability, 0 for reward) if state 0 is itself target.
func valueForRoot(chain *strategy.Chain, toLocal map[int]int, x []float64, targetSentinel float64) float64 {
	if chain.States[0].Target {
		return targetSentinel
	}
	return x[toLocal[0]]
}
