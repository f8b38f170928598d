package chainsolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solventlabs/beliefgrid/belief"
	"github.com/solventlabs/beliefgrid/strategy"
)

// threeStateChain: state 0 moves to state 1 w.p. 0.5 and to the absorbing
// target (state 2) w.p. 0.5; state 1 always moves to the target. Closed
// form: x1 = 1 (absorbed in one more step); x0 = 0.5*x1 + 0.5*1 = 1.
// Expected-reward variant: r0=-1, r1=-1, reward accrues until absorption:
// x1 = -1 + 1*0 = -1 (target reward is 0); x0 = -1 + 0.5*x1 + 0.5*0 = -1.5.
func threeStateChain() *strategy.Chain {
	b0 := belief.MustNew(0, []float64{1})
	b1 := belief.MustNew(1, []float64{1})
	b2 := belief.MustNew(2, []float64{1})
	return &strategy.Chain{
		States: []strategy.State{
			{Belief: b0, Reward: -1, Out: []strategy.Transition{{To: 1, Prob: 0.5}, {To: 2, Prob: 0.5}}},
			{Belief: b1, Reward: -1, Out: []strategy.Transition{{To: 2, Prob: 1}}},
			{Belief: b2, Target: true},
		},
	}
}

func TestReachProbs_MatchesClosedForm(t *testing.T) {
	t.Parallel()
	c := threeStateChain()
	s := NewLUSolver()

	value, acc, err := s.ReachProbs(context.Background(), c)
	require.NoError(t, err)
	require.InDelta(t, 1.0, value, 1e-9)
	require.InDelta(t, 0, acc.HalfWidth(), 1e-6)
}

func TestReachRewards_MatchesClosedForm(t *testing.T) {
	t.Parallel()
	c := threeStateChain()
	s := NewLUSolver()

	value, _, err := s.ReachRewards(context.Background(), c)
	require.NoError(t, err)
	require.InDelta(t, -1.5, value, 1e-9)
}

func TestReachProbs_AllTargetIsTrivial(t *testing.T) {
	t.Parallel()
	b0 := belief.MustNew(0, []float64{1})
	c := &strategy.Chain{States: []strategy.State{{Belief: b0, Target: true}}}
	s := NewLUSolver()

	value, _, err := s.ReachProbs(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, 1.0, value)
}
