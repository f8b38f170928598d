package strategy

import "github.com/solventlabs/beliefgrid/belief"

// Transition is one outgoing edge of a chain State, carrying the
// probability mass moving to State index To.
type Transition struct {
	To   int
	Prob float64
}

// State is one node of the strategy-induced Markov chain: the belief it
// represents, whether it is a target (absorbing) state, the expected
// immediate reward of the action chosen there (reward variant only), the
// label of that action, and its outgoing transitions.
type State struct {
	Belief      belief.Belief
	Target      bool
	Reward      float64
	ActionLabel string
	Out         []Transition
}

// Chain is the arena of chain states produced by Extract: states are
// addressed by integer index (their position in States), never by
// pointer, so the cyclic belief-transition graph has no reference cycles
// to manage.
type Chain struct {
	States []State
}

// NumStates returns the number of states in the chain.
func (c *Chain) NumStates() int { return len(c.States) }

// OutDegree returns the number of outgoing transitions of state i.
func (c *Chain) OutDegree(i int) int { return len(c.States[i].Out) }
