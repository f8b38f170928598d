package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solventlabs/beliefgrid/belief"
	"github.com/solventlabs/beliefgrid/pomdp"
	"github.com/solventlabs/beliefgrid/valueiter"
)

// absorbingChain mirrors valueiter's fixture: state 0 stays with
// probability 0.6 and moves to the absorbing target state 1 with
// probability 0.4 every step, so the true reachability probability from
// state 0 is 1.
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
	return 0, nil
}

func baseConfig() Config {
	return Config{
		Model:      absorbingChain{},
		Target:     map[int]bool{1: true},
		Objective:  pomdp.Reachability,
		Direction:  pomdp.Max,
		Resolution: 4,
		MaxIters:   200,
		TermCrit:   valueiter.Absolute,
		TermParam:  1e-6,
	}
}

func TestCheck_TwoSidedBoundsAgreeOnKnownReachability(t *testing.T) {
	t.Parallel()
	res, err := Check(context.Background(), baseConfig())
	require.NoError(t, err)
	require.InDelta(t, 1.0, res.Value, 1e-3)
	require.LessOrEqual(t, res.Accuracy.Lower, 1.0+1e-6)
	require.GreaterOrEqual(t, res.Accuracy.Upper, 1.0-1e-6)
	require.Greater(t, res.NumIters, 0)
}

// sharedObsModel has two states mapped to the same observation class, so a
// target naming only one of them is not a union of observation classes.
type sharedObsModel struct{ absorbingChain }

func (sharedObsModel) NumStates() int       { return 2 }
func (sharedObsModel) NumObservations() int { return 1 }
func (sharedObsModel) Obs(s int) int        { return 0 }

func TestCheck_FailsOnUnobservableTarget(t *testing.T) {
	t.Parallel()
	cfg := baseConfig()
	cfg.Model = sharedObsModel{}
	cfg.Target = map[int]bool{0: true}

	_, err := Check(context.Background(), cfg)
	require.ErrorIs(t, err, pomdp.ErrTargetNotObservable)
}

func TestCheck_ExportsStrategyFiles(t *testing.T) {
	t.Parallel()
	cfg := baseConfig()
	cfg.ExportStrategyPath = filepath.Join(t.TempDir(), "strategy")

	res, err := Check(context.Background(), cfg)
	require.NoError(t, err)
	require.FileExists(t, res.ChainTxtPath)
	require.FileExists(t, res.DotPath)

	data, err := os.ReadFile(res.DotPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "digraph strategy")
}
