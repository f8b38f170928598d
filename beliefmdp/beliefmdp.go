package beliefmdp

import (
	"fmt"
	"sort"

	"github.com/solventlabs/beliefgrid/belief"
	"github.com/solventlabs/beliefgrid/pomdp"
)

// minSuccessorProb is the probability floor below which a successor
// observation is pruned from a belief-MDP entry (see SPEC §4.3).
const minSuccessorProb = 1e-12

// ToDistribution expands belief b into a full-state distribution indexed
// by state, zero outside the states whose observation class is b.So.
func ToDistribution(m pomdp.Model, b belief.Belief) []float64 {
	dist := make([]float64, m.NumStates())
	for s := 0; s < m.NumStates(); s++ {
		if m.Obs(s) == b.So {
			dist[s] = b.At(m.Unobs(s))
		}
	}
	return dist
}

// Build computes the distribution over successor beliefs reached by taking
// action from belief b: one entry per next observation with strictly
// positive mass, each keyed by the Bayes-updated posterior belief over the
// refinements of that observation. The returned map's values sum to 1
// within floating tolerance.
func Build(m pomdp.Model, b belief.Belief, action int) (map[belief.Belief]float64, error) {
	bS := ToDistribution(m, b)

	probs, err := m.ObservationProbsAfterAction(bS, action)
	if err != nil {
		return nil, fmt.Errorf("beliefmdp: Build(b=%v, action=%d): %w", b, action, err)
	}

	oPrimes := make([]int, 0, len(probs))
	for o := range probs {
		oPrimes = append(oPrimes, o)
	}
	sort.Ints(oPrimes)

	out := make(map[belief.Belief]float64, len(oPrimes))
	for _, oPrime := range oPrimes {
		p := probs[oPrime]
		if p < minSuccessorProb {
			continue
		}
		bPrime, err := m.BeliefAfterChoiceAndObservation(b, action, oPrime)
		if err != nil {
			return nil, fmt.Errorf(
				"beliefmdp: Build(b=%v, action=%d, oPrime=%d): %w", b, action, oPrime, err,
			)
		}
		out[bPrime] += p
	}
	return out, nil
}
