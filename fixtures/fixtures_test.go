package fixtures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solventlabs/beliefgrid/engine"
	"github.com/solventlabs/beliefgrid/pomdp"
	"github.com/solventlabs/beliefgrid/valueiter"
)

func TestTiger_MaxExpectedRewardWithinKnownInterval(t *testing.T) {
	t.Parallel()
	res, err := engine.Check(context.Background(), engine.Config{
		Model:      Tiger{},
		Target:     map[int]bool{stateOpenedCorrect: true, stateOpenedIncorrect: true},
		Objective:  pomdp.ExpectedReward,
		Direction:  pomdp.Max,
		Resolution: 10,
		MaxIters:   500,
		TermCrit:   valueiter.Absolute,
		TermParam:  1e-4,
	})
	require.NoError(t, err)
	// Listening is cheap (-1) relative to a correct open (+10) and a wrong
	// one is catastrophic (-100), so the optimal policy listens enough to
	// be confident before opening.
	require.GreaterOrEqual(t, res.Value, 1.90)
	require.LessOrEqual(t, res.Value, 1.96)
	require.LessOrEqual(t, res.Accuracy.HalfWidth(), 0.05)
	require.Greater(t, res.NumIters, 0)
}

func TestGridworld6_MaxReachabilityMatchesClosedForm(t *testing.T) {
	t.Parallel()
	res, err := engine.Check(context.Background(), engine.Config{
		Model:      Gridworld6{},
		Target:     map[int]bool{5: true},
		Objective:  pomdp.Reachability,
		Direction:  pomdp.Max,
		Resolution: 4,
		MaxIters:   50,
		TermCrit:   valueiter.Absolute,
		TermParam:  1e-9,
	})
	require.NoError(t, err)
	require.InDelta(t, 0.018, res.Value, 1e-6)
}

func TestTiger_ListenBeliefUpdateIsBayesian(t *testing.T) {
	t.Parallel()
	tg := Tiger{}
	b0, err := tg.InitialBelief()
	require.NoError(t, err)

	dist := make([]float64, tg.NumStates())
	dist[stateLeftHeardLeft] = b0.At(0)
	dist[stateRightHeardLeft] = b0.At(1)

	probs, err := tg.ObservationProbsAfterAction(dist, actionListen)
	require.NoError(t, err)
	require.InDelta(t, 1.0, probs[obsHeardLeft]+probs[obsHeardRight], 1e-9)

	post, err := tg.BeliefAfterChoiceAndObservation(b0, actionListen, obsHeardLeft)
	require.NoError(t, err)
	require.InDelta(t, tigerListenAccuracy, post.At(0), 1e-9)
}
