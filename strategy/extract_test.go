package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solventlabs/beliefgrid/belief"
	"github.com/solventlabs/beliefgrid/pomdp"
)

// twoChoice is a 2-state fully observable model with two actions at state
// 0: action 0 goes straight to the target, action 1 self-loops forever.
// The greedy max-probability policy must pick action 0.
type twoChoice struct{}

func (twoChoice) NumStates() int         { return 2 }
func (twoChoice) NumObservations() int   { return 2 }
func (twoChoice) NumUnobservations() int { return 1 }
func (twoChoice) Obs(s int) int          { return s }
func (twoChoice) Unobs(s int) int        { return 0 }

func (twoChoice) InitialBelief() (belief.Belief, error) { return belief.Dirac(0, 0, 1) }
func (twoChoice) NumChoices(o int) int {
	if o == 0 {
		return 2
	}
	return 1
}
func (twoChoice) ActionLabel(o, choice int) string {
	if o == 0 && choice == 1 {
		return "loop"
	}
	return "advance"
}

func (twoChoice) ObservationProbsAfterAction(dist []float64, action int) (map[int]float64, error) {
	if dist[1] > 0 {
		return map[int]float64{1: 1}, nil
	}
	if action == 1 {
		return map[int]float64{0: 1}, nil
	}
	return map[int]float64{1: 1}, nil
}

func (twoChoice) BeliefAfterChoiceAndObservation(b belief.Belief, action, oPrime int) (belief.Belief, error) {
	return belief.Dirac(oPrime, 0, 1)
}

func (twoChoice) RewardAfterChoice(b belief.Belief, action int) (float64, error) { return 0, nil }

func TestExtract_PicksGreedyActionAndMarksTarget(t *testing.T) {
	t.Parallel()
	root := belief.MustNew(0, []float64{1})
	target := belief.MustNew(1, []float64{1})

	v := map[belief.Belief]float64{
		root:   1,
		target: 1,
	}

	p := Params{
		Model:      twoChoice{},
		Resolution: 4,
		Objective:  pomdp.Reachability,
		Direction:  pomdp.Max,
		TargetObs:  map[int]bool{1: true},
		V:          v,
	}

	c, err := Extract(root, p)
	require.NoError(t, err)
	require.Equal(t, 2, c.NumStates())

	require.Equal(t, "advance", c.States[0].ActionLabel)
	require.Len(t, c.States[0].Out, 1)
	require.Equal(t, 1, c.States[0].Out[0].To)
	require.InDelta(t, 1.0, c.States[0].Out[0].Prob, 1e-9)

	require.True(t, c.States[1].Target)
	require.Empty(t, c.States[1].Out)
}
