package pomdp

import "github.com/solventlabs/beliefgrid/belief"

// Model is the contract a POMDP data source must satisfy. Implementations
// are read-only collaborators: the engine never mutates a Model, and a
// single Model may be shared across concurrent engine.Check calls.
//
// States, observations and refinement indices are dense integer ranges
// [0, NumStates()), [0, NumObservations()), [0, NumUnobservations())
// respectively. Two states s, s' are observationally indistinguishable iff
// Obs(s) == Obs(s'); Unobs(s) is the refinement index of s within its
// observation class (so Unobs need not be injective across different
// observation classes, only within one).
type Model interface {
	// NumStates returns |S|.
	NumStates() int
	// NumObservations returns |O|.
	NumObservations() int
	// NumUnobservations returns |U|, the size of the refinement-index range.
	NumUnobservations() int

	// Obs returns the observation class of state s.
	Obs(s int) int
	// Unobs returns the refinement index of state s within Obs(s).
	Unobs(s int) int

	// InitialBelief returns the initial belief over the refinements of the
	// initial observation class (the Dirac belief when the initial state is
	// known exactly). Returns ErrUnsupported if the model has more than one initial state.
	InitialBelief() (belief.Belief, error)

	// NumChoices returns the number of actions available to every state
	// with observation class o (the action set depends only on o).
	NumChoices(o int) int
	// ActionLabel returns a human-readable label for action `choice` at
	// observation o, used only for strategy export.
	ActionLabel(o, choice int) string

	// ObservationProbsAfterAction returns, for a full-state distribution
	// dist (indexed by state, length NumStates()) and an action index,
	// the probability mass landing in each successor observation class
	// after one transition under that action. Only observations with
	// strictly positive mass appear in the result.
	ObservationProbsAfterAction(dist []float64, action int) (map[int]float64, error)

	// BeliefAfterChoiceAndObservation returns the posterior belief after
	// taking `action` from belief b and observing oPrime, i.e. the
	// Bayes-updated belief over the refinements of oPrime.
	BeliefAfterChoiceAndObservation(b belief.Belief, action, oPrime int) (belief.Belief, error)

	// RewardAfterChoice returns the expected immediate reward of taking
	// `action` from belief b, i.e. Σ_s P(s|b)·R(s,action).
	RewardAfterChoice(b belief.Belief, action int) (float64, error)
}

// Objective selects between the two value-semantics supported by this
// engine: reachability probability and expected cumulative reward before
// reaching the target. It replaces the inheritance-based dispatch a
// non-Go implementation might use with a small tagged value, per the
// module's "no dynamic dispatch between variants" design choice.
type Objective int

const (
	// Reachability computes the probability of eventually reaching target.
	Reachability Objective = iota
	// ExpectedReward computes the expected cumulative reward accrued
	// before reaching target.
	ExpectedReward
)

// String implements fmt.Stringer for log and error messages.
func (o Objective) String() string {
	switch o {
	case Reachability:
		return "reachability"
	case ExpectedReward:
		return "expected-reward"
	default:
		return "unknown-objective"
	}
}

// Direction selects whether the engine computes the minimum or maximum
// value over all observation-based strategies.
type Direction int

const (
	// Min computes the minimum value.
	Min Direction = iota
	// Max computes the maximum value.
	Max
)

// String implements fmt.Stringer for log and error messages.
func (d Direction) String() string {
	if d == Max {
		return "max"
	}
	return "min"
}
