package valueiter

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/solventlabs/beliefgrid/beliefmdp"
	"github.com/solventlabs/beliefgrid/belief"
	"github.com/solventlabs/beliefgrid/interpolate"
	"github.com/solventlabs/beliefgrid/pomdp"
	"github.com/solventlabs/beliefgrid/simplex"
)

// successorCache memoizes beliefmdp.Build results across sweeps: the
// belief-MDP entry for (b, a) is a pure function of the model and does not
// change as V is refined, so recomputing it every sweep would be wasted
// work (SPEC §4.3's "no persistent cache of its own" leaves caching policy
// to the driver).
type successorCache map[belief.Belief][]map[belief.Belief]float64

// runner holds the mutable state of one value-iteration run: config, the
// current and previous value maps, the grid, and the belief-MDP cache.
type runner struct {
	p            Params
	grid         []belief.Belief
	refCount     map[int]int // observation -> refinement count, for non-target observations
	v            map[belief.Belief]float64
	vPrev        map[belief.Belief]float64
	succ         successorCache
	relConverged bool // per-entry Relative test result from the last sweep
}

// Run executes value iteration to convergence, cancellation, or iteration
// budget exhaustion, per Params.
func Run(ctx context.Context, p Params) (*Result, error) {
	r, err := newRunner(p)
	if err != nil {
		return nil, err
	}
	return r.run(ctx)
}

func newRunner(p Params) (*runner, error) {
	if p.Resolution < 2 {
		return nil, fmt.Errorf("valueiter: Resolution=%d: %w", p.Resolution, ErrBadResolution)
	}
	if p.MaxIters < 1 {
		return nil, fmt.Errorf("valueiter: MaxIters=%d: %w", p.MaxIters, ErrBadMaxIters)
	}

	refCount := make(map[int]int)
	for s := 0; s < p.Model.NumStates(); s++ {
		o := p.Model.Obs(s)
		if p.TargetObs[o] {
			continue
		}
		refCount[o]++
	}

	var grid []belief.Belief
	obsIDs := make([]int, 0, len(refCount))
	for o := range refCount {
		obsIDs = append(obsIDs, o)
	}
	sort.Ints(obsIDs)
	for _, o := range obsIDs {
		verts, err := simplex.Enumerate(o, refCount[o], p.Resolution)
		if err != nil {
			return nil, fmt.Errorf("valueiter: enumerating grid for observation %d: %w", o, err)
		}
		grid = append(grid, verts...)
	}
	sort.Slice(grid, func(i, j int) bool { return belief.Less(grid[i], grid[j]) })

	v := make(map[belief.Belief]float64, len(grid))
	vPrev := make(map[belief.Belief]float64, len(grid))
	for _, b := range grid {
		v[b] = 0
		vPrev[b] = 0
	}

	return &runner{
		p:        p,
		grid:     grid,
		refCount: refCount,
		v:        v,
		vPrev:    vPrev,
		succ:     make(successorCache),
	}, nil
}

func (r *runner) run(ctx context.Context) (*Result, error) {
	iters := 0
	residual := math.Inf(1)
	for iters < r.p.MaxIters {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("valueiter: sweep %d: %w", iters, pomdp.ErrCancelled)
		default:
		}

		var err error
		residual, err = r.sweep()
		if err != nil {
			return nil, err
		}
		iters++

		if r.converged(residual) {
			return &Result{V: r.vPrev, NumIters: iters, Residual: residual, Converged: true}, nil
		}
	}

	if r.p.ErrorOnNonConverge {
		return nil, fmt.Errorf("valueiter: after %d iterations, residual=%.3e: %w", iters, residual, pomdp.ErrNonConverged)
	}
	return &Result{V: r.vPrev, NumIters: iters, Residual: residual, Converged: false}, nil
}

// converged reports whether the last sweep's residual satisfies the
// configured termination criterion. Absolute compares the scalar sup-norm
// residual directly; Relative trusts r.relConverged, the per-entry test
// sweep already performed against the pre-overwrite V_prev (recomputing it
// here would compare V_prev against itself, since sweep has since copied V
// into V_prev, and always find zero change).
func (r *runner) converged(residual float64) bool {
	if r.p.TermCrit == Absolute {
		return residual <= r.p.TermParam
	}
	return r.relConverged
}

// sweep performs one synchronous Bellman update over the whole grid and
// returns the sup-norm change ||V-V_prev||_inf. V is computed entirely from
// V_prev (the previous sweep's values); r.relConverged (the per-entry
// relative test) is captured in the same pass, before V is copied into
// V_prev, since afterward the two maps are identical and the test would be
// vacuous.
func (r *runner) sweep() (float64, error) {
	for _, b := range r.grid {
		best, err := r.bestActionValue(b)
		if err != nil {
			return 0, err
		}
		r.v[b] = best
	}

	residual := 0.0
	r.relConverged = true
	for _, b := range r.grid {
		diff := math.Abs(r.v[b] - r.vPrev[b])
		if diff > residual {
			residual = diff
		}
		if diff > r.p.TermParam*math.Abs(r.v[b]) {
			r.relConverged = false
		}
		r.vPrev[b] = r.v[b]
	}
	return residual, nil
}

// bestActionValue computes V[b] for one grid belief: the min/max over
// actions(b.So) of the Bellman backup value.
func (r *runner) bestActionValue(b belief.Belief) (float64, error) {
	minimize := r.p.Direction == pomdp.Min
	best := math.Inf(1)
	if !minimize {
		best = math.Inf(-1)
	}

	nActions := r.p.Model.NumChoices(b.So)
	for a := 0; a < nActions; a++ {
		q, err := r.actionValue(b, a)
		if err != nil {
			return 0, err
		}
		if minimize && best-q > actionEps {
			best = q
		} else if !minimize && q-best > actionEps {
			best = q
		}
	}
	return best, nil
}

// actionValue computes Q(b,a) using the belief-MDP entry for (b,a) (cached
// across sweeps) and the previous sweep's value map.
func (r *runner) actionValue(b belief.Belief, a int) (float64, error) {
	succ, err := r.successors(b, a)
	if err != nil {
		return 0, err
	}

	q := 0.0
	if r.p.Objective == pomdp.ExpectedReward {
		reward, err := r.p.Model.RewardAfterChoice(b, a)
		if err != nil {
			return 0, fmt.Errorf("valueiter: reward for belief %v action %d: %w", b, a, err)
		}
		q = reward
	}

	for bPrime, p := range succ {
		vTilde, err := r.vTilde(bPrime)
		if err != nil {
			return 0, err
		}
		q += p * vTilde
	}
	return q, nil
}

// vTilde is ṽ(b') from SPEC §4.4: the pinned target sentinel if b' is a
// target belief, otherwise barycentric interpolation over V_prev.
func (r *runner) vTilde(bPrime belief.Belief) (float64, error) {
	if r.p.TargetObs[bPrime.So] {
		if r.p.Objective == pomdp.Reachability {
			return 1, nil
		}
		return 0, nil
	}
	return interpolate.Value(bPrime, r.p.Resolution, r.vPrev)
}

// successors returns the belief-MDP entry for (b, a), building and caching
// it on first use.
func (r *runner) successors(b belief.Belief, a int) (map[belief.Belief]float64, error) {
	entries, ok := r.succ[b]
	if !ok {
		entries = make([]map[belief.Belief]float64, r.p.Model.NumChoices(b.So))
	}
	if entries[a] == nil {
		succ, err := beliefmdp.Build(r.p.Model, b, a)
		if err != nil {
			return nil, fmt.Errorf("valueiter: belief-MDP for belief %v action %d: %w", b, a, err)
		}
		entries[a] = succ
	}
	r.succ[b] = entries
	return entries[a], nil
}
