package fixtures

import "github.com/solventlabs/beliefgrid/belief"

// Gridworld6 is a fully observable six-state DTMC: a single no-op action
// at every state, a fixed transition kernel, and target={5}. Being fully
// observable (one refinement per observation) it is a degenerate POMDP
// that exercises the grid machinery at its simplest boundary while still
// giving a hand-computable reachability probability. States 0, 1, 2 are
// three independent gates, each either advancing toward the target or
// falling into the absorbing non-target trap state 4; state 3 passes
// through to the target deterministically. Reaching 5 from state 0
// therefore requires all three gates to succeed in a row:
// P(reach) = 0.3 * 0.3 * 0.2 = 0.018.
type Gridworld6 struct{}

// gridworld6Transitions[s] maps successor state to probability.
var gridworld6Transitions = [6]map[int]float64{
	0: {1: 0.3, 4: 0.7},
	1: {2: 0.3, 4: 0.7},
	2: {3: 0.2, 4: 0.8},
	3: {5: 1.0},
	4: {4: 1.0},
	5: {5: 1.0},
}

func (Gridworld6) NumStates() int         { return 6 }
func (Gridworld6) NumObservations() int   { return 6 }
func (Gridworld6) NumUnobservations() int { return 1 }

func (Gridworld6) Obs(s int) int   { return s }
func (Gridworld6) Unobs(s int) int { return 0 }

func (Gridworld6) InitialBelief() (belief.Belief, error) {
	return belief.Dirac(0, 0, 1)
}

func (Gridworld6) NumChoices(o int) int             { return 1 }
func (Gridworld6) ActionLabel(o, choice int) string { return "noop" }

func (Gridworld6) ObservationProbsAfterAction(dist []float64, action int) (map[int]float64, error) {
	out := make(map[int]float64)
	for s, mass := range dist {
		if mass <= 0 {
			continue
		}
		for next, p := range gridworld6Transitions[s] {
			out[next] += mass * p
		}
	}
	return out, nil
}

func (Gridworld6) BeliefAfterChoiceAndObservation(b belief.Belief, action, oPrime int) (belief.Belief, error) {
	return belief.Dirac(oPrime, 0, 1)
}

func (Gridworld6) RewardAfterChoice(b belief.Belief, action int) (float64, error) {
	return 0, nil
}
