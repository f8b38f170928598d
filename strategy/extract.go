package strategy

import (
	"fmt"
	"sort"

	"github.com/solventlabs/beliefgrid/beliefmdp"
	"github.com/solventlabs/beliefgrid/belief"
	"github.com/solventlabs/beliefgrid/interpolate"
	"github.com/solventlabs/beliefgrid/pomdp"
)

// actionTieEps is the tolerance within which two actions' Q-values are
// considered tied (SPEC §4.6); on a tie the later-considered action wins.
const actionTieEps = 1e-6

// Params bundles the converged value map and model needed to greedily
// expand the chain. V is read-only: Extract never mutates it.
type Params struct {
	Model      pomdp.Model
	Resolution int
	Objective  pomdp.Objective
	Direction  pomdp.Direction
	TargetObs  map[int]bool
	V          map[belief.Belief]float64
}

// frontier is one pending BFS queue entry: the chain index a belief was
// already assigned when it was first discovered.
type frontier struct {
	idx int
}

// Extract BFS-explores beliefs reachable from root under the greedy
// policy implied by p.V, building a Chain of visited states and their
// transitions. Target beliefs (observation in p.TargetObs) are recorded
// but not expanded.
func Extract(root belief.Belief, p Params, opts ...Option) (*Chain, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Chain{States: []State{{Belief: root}}}
	index := map[belief.Belief]int{root: 0}
	queue := []frontier{{idx: 0}}
	o.OnEnqueue(0)

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, fmt.Errorf("strategy: Extract: %w", pomdp.ErrCancelled)
		default:
		}

		item := queue[0]
		queue = queue[1:]

		if err := expand(c, index, item.idx, p, &queue, &o); err != nil {
			return nil, err
		}
		if err := o.OnVisit(item.idx); err != nil {
			return nil, fmt.Errorf("strategy: Extract: OnVisit at state %d: %w", item.idx, err)
		}
	}
	return c, nil
}

// expand handles one popped state: marks it a target and stops, or chooses
// its greedy action, records the reward and transitions, and enqueues any
// newly discovered successor beliefs.
func expand(c *Chain, index map[belief.Belief]int, idx int, p Params, queue *[]frontier, o *Options) error {
	b := c.States[idx].Belief
	if p.TargetObs[b.So] {
		c.States[idx].Target = true
		return nil
	}

	a, err := greedyAction(b, p)
	if err != nil {
		return err
	}
	c.States[idx].ActionLabel = p.Model.ActionLabel(b.So, a)

	if p.Objective == pomdp.ExpectedReward {
		reward, err := p.Model.RewardAfterChoice(b, a)
		if err != nil {
			return fmt.Errorf("strategy: reward for belief %v action %d: %w", b, a, err)
		}
		c.States[idx].Reward = reward
	}

	succ, err := beliefmdp.Build(p.Model, b, a)
	if err != nil {
		return fmt.Errorf("strategy: belief-MDP for belief %v action %d: %w", b, a, err)
	}

	bPrimes := make([]belief.Belief, 0, len(succ))
	for bPrime := range succ {
		bPrimes = append(bPrimes, bPrime)
	}
	sort.Slice(bPrimes, func(i, j int) bool { return belief.Less(bPrimes[i], bPrimes[j]) })

	for _, bPrime := range bPrimes {
		to, ok := index[bPrime]
		if !ok {
			to = len(c.States)
			index[bPrime] = to
			c.States = append(c.States, State{Belief: bPrime})
			*queue = append(*queue, frontier{idx: to})
			o.OnEnqueue(to)
		}
		c.States[idx].Out = append(c.States[idx].Out, Transition{To: to, Prob: succ[bPrime]})
	}
	return nil
}

// greedyAction picks the action minimizing (or maximizing) the Bellman
// backup at b using p.V for interpolation, deterministic last-wins
// tie-breaking within actionTieEps.
func greedyAction(b belief.Belief, p Params) (int, error) {
	minimize := p.Direction == pomdp.Min
	nActions := p.Model.NumChoices(b.So)

	bestA := -1
	bestQ := 0.0
	for a := 0; a < nActions; a++ {
		q, err := actionValue(b, a, p)
		if err != nil {
			return 0, err
		}
		switch {
		case bestA == -1:
			bestA, bestQ = a, q
		case minimize && q <= bestQ+actionTieEps:
			bestA = a
			if q < bestQ {
				bestQ = q
			}
		case !minimize && q >= bestQ-actionTieEps:
			bestA = a
			if q > bestQ {
				bestQ = q
			}
		}
	}
	if bestA == -1 {
		return 0, fmt.Errorf("strategy: belief %v has no actions: %w", b, pomdp.ErrInternal)
	}
	return bestA, nil
}

// actionValue computes Q(b,a) against the converged value map p.V, using
// the same target-pinning rule as the value-iteration driver.
func actionValue(b belief.Belief, a int, p Params) (float64, error) {
	succ, err := beliefmdp.Build(p.Model, b, a)
	if err != nil {
		return 0, fmt.Errorf("strategy: belief-MDP for belief %v action %d: %w", b, a, err)
	}

	q := 0.0
	if p.Objective == pomdp.ExpectedReward {
		reward, err := p.Model.RewardAfterChoice(b, a)
		if err != nil {
			return 0, fmt.Errorf("strategy: reward for belief %v action %d: %w", b, a, err)
		}
		q = reward
	}

	for bPrime, pr := range succ {
		var vTilde float64
		if p.TargetObs[bPrime.So] {
			if p.Objective == pomdp.Reachability {
				vTilde = 1
			}
		} else {
			vTilde, err = interpolate.Value(bPrime, p.Resolution, p.V)
			if err != nil {
				return 0, err
			}
		}
		q += pr * vTilde
	}
	return q, nil
}
