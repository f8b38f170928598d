package valueiter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solventlabs/beliefgrid/belief"
	"github.com/solventlabs/beliefgrid/pomdp"
)

// absorbingChain is a 2-state fully observable chain: state 0 stays with
// probability 0.6 and moves to the absorbing target state 1 with
// probability 0.4 every step. Used to check value iteration converges to
// the closed-form reachability probability (which is 1, in the limit).
type absorbingChain struct{}

func (absorbingChain) NumStates() int         { return 2 }
func (absorbingChain) NumObservations() int   { return 2 }
func (absorbingChain) NumUnobservations() int { return 1 }
func (absorbingChain) Obs(s int) int          { return s }
func (absorbingChain) Unobs(s int) int        { return 0 }

func (absorbingChain) InitialBelief() (belief.Belief, error) {
	return belief.Dirac(0, 0, 1)
}

func (absorbingChain) NumChoices(o int) int             { return 1 }
func (absorbingChain) ActionLabel(o, choice int) string { return "noop" }

func (absorbingChain) ObservationProbsAfterAction(dist []float64, action int) (map[int]float64, error) {
	out := map[int]float64{}
	if m := 0.6 * dist[0]; m > 0 {
		out[0] = m
	}
	if m := 0.4*dist[0] + dist[1]; m > 0 {
		out[1] = m
	}
	return out, nil
}

func (absorbingChain) BeliefAfterChoiceAndObservation(b belief.Belief, action, oPrime int) (belief.Belief, error) {
	return belief.Dirac(oPrime, 0, 1)
}

func (absorbingChain) RewardAfterChoice(b belief.Belief, action int) (float64, error) {
	if b.So == 0 {
		return -1, nil
	}
	return 0, nil
}

func TestRun_ConvergesToKnownReachability(t *testing.T) {
	t.Parallel()
	p := Params{
		Model:      absorbingChain{},
		Resolution: 4,
		Objective:  pomdp.Reachability,
		Direction:  pomdp.Max,
		TermCrit:   Absolute,
		TermParam:  1e-6,
		MaxIters:   200,
		TargetObs:  map[int]bool{1: true},
	}
	res, err := Run(context.Background(), p)
	require.NoError(t, err)
	require.True(t, res.Converged)

	b0 := belief.MustNew(0, []float64{1})
	require.InDelta(t, 1.0, res.V[b0], 1e-4)
}

func TestRun_RelativeTerminationRequiresMultipleSweeps(t *testing.T) {
	t.Parallel()
	p := Params{
		Model:      absorbingChain{},
		Resolution: 4,
		Objective:  pomdp.Reachability,
		Direction:  pomdp.Max,
		TermCrit:   Relative,
		TermParam:  1e-6,
		MaxIters:   200,
		TargetObs:  map[int]bool{1: true},
	}
	res, err := Run(context.Background(), p)
	require.NoError(t, err)
	require.True(t, res.Converged)
	// A single sweep moves V away from its zero-initialized start, so a
	// relative test against the previous sweep cannot be satisfied after
	// just one; this fixture's geometric convergence to 1 needs many sweeps
	// at this tolerance.
	require.Greater(t, res.NumIters, 1)

	b0 := belief.MustNew(0, []float64{1})
	require.InDelta(t, 1.0, res.V[b0], 1e-4)
}

func TestRun_FailsWhenMaxItersExhaustedAndErrorRequested(t *testing.T) {
	t.Parallel()
	p := Params{
		Model:              absorbingChain{},
		Resolution:         4,
		Objective:          pomdp.Reachability,
		Direction:          pomdp.Max,
		TermCrit:           Absolute,
		TermParam:          1e-12,
		MaxIters:           1,
		ErrorOnNonConverge: true,
		TargetObs:          map[int]bool{1: true},
	}
	_, err := Run(context.Background(), p)
	require.ErrorIs(t, err, pomdp.ErrNonConverged)
}

func TestRun_ToleratesNonConvergenceWhenNotRequested(t *testing.T) {
	t.Parallel()
	p := Params{
		Model:      absorbingChain{},
		Resolution: 4,
		Objective:  pomdp.Reachability,
		Direction:  pomdp.Max,
		TermCrit:   Absolute,
		TermParam:  1e-12,
		MaxIters:   1,
		TargetObs:  map[int]bool{1: true},
	}
	res, err := Run(context.Background(), p)
	require.NoError(t, err)
	require.False(t, res.Converged)
	require.Equal(t, 1, res.NumIters)
}

func TestRun_RejectsBadResolution(t *testing.T) {
	t.Parallel()
	p := Params{Model: absorbingChain{}, Resolution: 1, MaxIters: 10, TargetObs: map[int]bool{1: true}}
	_, err := Run(context.Background(), p)
	require.ErrorIs(t, err, ErrBadResolution)
}

func TestRun_CancellationStopsBetweenSweeps(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := Params{
		Model:      absorbingChain{},
		Resolution: 4,
		Objective:  pomdp.Reachability,
		Direction:  pomdp.Max,
		TermCrit:   Absolute,
		TermParam:  1e-9,
		MaxIters:   100,
		TargetObs:  map[int]bool{1: true},
	}
	_, err := Run(ctx, p)
	require.ErrorIs(t, err, pomdp.ErrCancelled)
}
