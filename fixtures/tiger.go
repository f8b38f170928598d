package fixtures

import (
	"fmt"

	"github.com/solventlabs/beliefgrid/belief"
)

// Tiger is the classic two-door tiger problem. The hidden state is which
// door hides the tiger; Listen gives a noisy report of that side (0.85
// accuracy) without moving the tiger, and Open{Left,Right} ends the
// episode with a reward that depends on whether the opened door was safe.
//
// The "last heard side" is folded into the state space alongside the
// tiger's actual side, since an observation class must be a fixed
// function of state (package pomdp's Model contract): states 0 and 1 are
// (tiger-left, tiger-right) under "last heard left" (observation 0);
// states 2 and 3 are the same pair under "last heard right" (observation
// 1); states 4 and 5 are the terminal "opened correctly" / "opened
// wrongly" outcomes (observations 2 and 3, the reachability/reward
// target). This makes Listen's Bayesian update an ordinary belief
// transition between two non-terminal observation classes instead of a
// side channel outside the model.
type Tiger struct{}

const (
	tigerListenAccuracy = 0.85

	tigerRewardListen        = -1.0
	tigerRewardOpenCorrect   = 10.0
	tigerRewardOpenIncorrect = -100.0

	actionListen    = 0
	actionOpenLeft  = 1
	actionOpenRight = 2

	obsHeardLeft       = 0
	obsHeardRight      = 1
	obsOpenedCorrect   = 2
	obsOpenedIncorrect = 3

	stateLeftHeardLeft   = 0
	stateRightHeardLeft  = 1
	stateLeftHeardRight  = 2
	stateRightHeardRight = 3
	stateOpenedCorrect   = 4
	stateOpenedIncorrect = 5
)

func (Tiger) NumStates() int         { return 6 }
func (Tiger) NumObservations() int   { return 4 }
func (Tiger) NumUnobservations() int { return 2 }

func (Tiger) Obs(s int) int {
	switch s {
	case stateLeftHeardLeft, stateRightHeardLeft:
		return obsHeardLeft
	case stateLeftHeardRight, stateRightHeardRight:
		return obsHeardRight
	case stateOpenedCorrect:
		return obsOpenedCorrect
	default:
		return obsOpenedIncorrect
	}
}

func (Tiger) Unobs(s int) int {
	switch s {
	case stateLeftHeardLeft, stateLeftHeardRight:
		return 0
	case stateRightHeardLeft, stateRightHeardRight:
		return 1
	default:
		return 0
	}
}

// InitialBelief starts with no prior evidence: an even 50/50 belief over
// the tiger's side, arbitrarily classed under "heard left" (the two
// non-terminal observations are symmetric before any Listen).
func (Tiger) InitialBelief() (belief.Belief, error) {
	return belief.New(obsHeardLeft, []float64{0.5, 0.5})
}

func (Tiger) NumChoices(o int) int {
	if o == obsHeardLeft || o == obsHeardRight {
		return 3
	}
	return 0
}

func (Tiger) ActionLabel(o, choice int) string {
	switch choice {
	case actionListen:
		return "listen"
	case actionOpenLeft:
		return "open-left"
	case actionOpenRight:
		return "open-right"
	default:
		return "unknown"
	}
}

// ObservationProbsAfterAction reports, for Listen, the probability of
// hearing left vs. right given the prior; for an Open action, the
// probability of landing in the correct vs. incorrect terminal state.
func (Tiger) ObservationProbsAfterAction(dist []float64, action int) (map[int]float64, error) {
	pLeft := dist[stateLeftHeardLeft] + dist[stateLeftHeardRight]
	pRight := dist[stateRightHeardLeft] + dist[stateRightHeardRight]

	var out map[int]float64
	switch action {
	case actionListen:
		out = map[int]float64{
			obsHeardLeft:  tigerListenAccuracy*pLeft + (1-tigerListenAccuracy)*pRight,
			obsHeardRight: (1-tigerListenAccuracy)*pLeft + tigerListenAccuracy*pRight,
		}
	case actionOpenLeft:
		// Opening left is correct when the tiger is on the right.
		out = map[int]float64{obsOpenedCorrect: pRight, obsOpenedIncorrect: pLeft}
	case actionOpenRight:
		out = map[int]float64{obsOpenedCorrect: pLeft, obsOpenedIncorrect: pRight}
	default:
		return nil, fmt.Errorf("fixtures: Tiger: unknown action %d", action)
	}
	for o, p := range out {
		if p <= 0 {
			delete(out, o)
		}
	}
	return out, nil
}

// BeliefAfterChoiceAndObservation applies Bayes' rule for Listen and
// returns a Dirac belief for the absorbing opened outcomes.
func (Tiger) BeliefAfterChoiceAndObservation(b belief.Belief, action, oPrime int) (belief.Belief, error) {
	if action != actionListen {
		return belief.Dirac(oPrime, 0, 1)
	}

	pLeft, pRight := b.At(0), b.At(1)
	var likeLeft, likeRight float64
	if oPrime == obsHeardLeft {
		likeLeft, likeRight = tigerListenAccuracy, 1-tigerListenAccuracy
	} else {
		likeLeft, likeRight = 1-tigerListenAccuracy, tigerListenAccuracy
	}

	jointLeft, jointRight := likeLeft*pLeft, likeRight*pRight
	total := jointLeft + jointRight
	if total <= 0 {
		return belief.Belief{}, fmt.Errorf("fixtures: Tiger: zero-probability observation %d", oPrime)
	}
	return belief.New(oPrime, []float64{jointLeft / total, jointRight / total})
}

// RewardAfterChoice returns the expected immediate reward: a fixed cost
// for Listen, or the probability-weighted Open payoff.
func (Tiger) RewardAfterChoice(b belief.Belief, action int) (float64, error) {
	pLeft, pRight := b.At(0), b.At(1)
	switch action {
	case actionListen:
		return tigerRewardListen, nil
	case actionOpenLeft:
		return pLeft*tigerRewardOpenIncorrect + pRight*tigerRewardOpenCorrect, nil
	case actionOpenRight:
		return pLeft*tigerRewardOpenCorrect + pRight*tigerRewardOpenIncorrect, nil
	default:
		return 0, fmt.Errorf("fixtures: Tiger: unknown action %d", action)
	}
}
