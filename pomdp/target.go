package pomdp

import "fmt"

// TargetObservations computes O_T = { Obs(s) : s in target } and checks that
// target is exactly the set of states whose observation lies in O_T — i.e.
// "is this state a target" is a function of the observation alone. This is
// required so grid values can be pinned at the target sentinel value (1 for
// reachability, 0 for reward) without inspecting the hidden refinement.
//
// target is given as a set of state indices (a map for O(1) membership).
// Returns the target-observation set as a map[int]bool for O(1) membership
// tests by downstream packages.
func TargetObservations(m Model, target map[int]bool) (map[int]bool, error) {
	oT := make(map[int]bool)
	for s := range target {
		oT[m.Obs(s)] = true
	}

	n := m.NumStates()
	for s := 0; s < n; s++ {
		inTarget := target[s]
		obsIsTarget := oT[m.Obs(s)]
		if inTarget != obsIsTarget {
			return nil, fmt.Errorf(
				"pomdp: state %d: in-target=%v but obs(%d)=%d is-target-obs=%v: %w",
				s, inTarget, s, m.Obs(s), obsIsTarget, ErrTargetNotObservable,
			)
		}
	}
	return oT, nil
}
