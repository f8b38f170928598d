// Package belief defines the Belief type shared by every other package in
// this module: a pair of an observation class and a probability vector over
// the hidden refinements of that observation.
//
// A Belief is immutable once constructed and is deliberately a small,
// comparable value (not a slice-backed struct) so it can be used directly as
// a Go map key — the value-iteration grid and the belief-MDP cache both key
// on Belief. See MaxRefinements for the size bound this implies.
package belief

import (
	"fmt"
	"math"
	"sort"
)

// MaxRefinements bounds |U|, the number of hidden-state refinements sharing
// a single observation. Belief stores bu as a fixed-size array (not a slice)
// so that Belief remains comparable and usable as a map key; this is the
// price of that property. Models with wider observation classes must be
// rejected at construction time (see New).
const MaxRefinements = 16

// Belief is an observation class paired with a probability distribution over
// the hidden-state refinements of that class. Bu entries at indices not in
// the refinement set of So are zero and are never read.
//
// Two Beliefs compare equal iff their So and Bu fields are bit-identical;
// callers that construct grid vertices via integer arithmetic (see package
// simplex) get bit-identical results at every construction site, which is
// what makes Belief safe to use as a map key for the value grid.
type Belief struct {
	So int
	Bu [MaxRefinements]float64
	n  int // number of meaningful entries in Bu (0..n-1); rest are always 0
}

// Dims reports the number of refinement slots this Belief was constructed
// with (the n passed to New), i.e. the refinement multiplicity of So.
func (b Belief) Dims() int { return b.n }

// At returns the probability mass on refinement index i. Panics if i is
// outside [0, Dims()) — callers iterate with Dims(), this is a programmer
// error otherwise.
func (b Belief) At(i int) float64 {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("belief: index %d out of range [0,%d)", i, b.n))
	}
	return b.Bu[i]
}

// New constructs a Belief for observation class so from the probability
// vector bu (indexed by refinement index, length n). It validates the
// simplex invariants: every entry non-negative, sum within 1e-9 of 1, and
// n within MaxRefinements.
//
// New does NOT snap bu onto the resolution-M lattice; callers that need a
// grid vertex should build it via simplex.Enumerate so that float identity is
// preserved (see package doc).
func New(so int, bu []float64) (Belief, error) {
	n := len(bu)
	if n == 0 {
		return Belief{}, fmt.Errorf("belief: empty refinement vector")
	}
	if n > MaxRefinements {
		return Belief{}, fmt.Errorf("belief: %d refinements exceeds MaxRefinements=%d", n, MaxRefinements)
	}

	var sum float64
	var out Belief
	out.So = so
	out.n = n
	for i, p := range bu {
		if p < -1e-12 {
			return Belief{}, fmt.Errorf("belief: negative mass %g at refinement %d", p, i)
		}
		if p < 0 {
			p = 0
		}
		out.Bu[i] = p
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		return Belief{}, fmt.Errorf("belief: mass sums to %g, want 1 (tol 1e-9)", sum)
	}
	return out, nil
}

// MustNew is New but panics on error; intended for fixtures and tests that
// construct Beliefs from literal, known-good vectors.
func MustNew(so int, bu []float64) Belief {
	b, err := New(so, bu)
	if err != nil {
		panic(err)
	}
	return b
}

// Dirac returns the Belief assigning probability 1 to refinement index u
// within observation class so, out of n total refinements.
func Dirac(so, u, n int) (Belief, error) {
	bu := make([]float64, n)
	if u < 0 || u >= n {
		return Belief{}, fmt.Errorf("belief: refinement %d out of range [0,%d)", u, n)
	}
	bu[u] = 1
	return New(so, bu)
}

// Slice returns a copy of the meaningful probability entries as a []float64
// of length Dims(). Used where algorithms are more naturally expressed over
// slices (e.g. simplex decomposition).
func (b Belief) Slice() []float64 {
	out := make([]float64, b.n)
	copy(out, b.Bu[:b.n])
	return out
}

// String renders a compact, deterministic representation for logging and
// test failure messages: "o=<so> [<bu0> <bu1> ...]".
func (b Belief) String() string {
	s := fmt.Sprintf("o=%d [", b.So)
	for i := 0; i < b.n; i++ {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%.6f", b.Bu[i])
	}
	return s + "]"
}

// Less gives Belief a total, deterministic order (by So, then lexicographic
// on Bu[:n]) so grid sets can be iterated in sorted order across runs and
// across machines, matching the teacher's convention of returning vertex
// IDs in sorted order from core.Graph.Vertices.
func Less(a, b Belief) bool {
	if a.So != b.So {
		return a.So < b.So
	}
	n := a.n
	if b.n < n {
		n = b.n
	}
	for i := 0; i < n; i++ {
		if a.Bu[i] != b.Bu[i] {
			return a.Bu[i] < b.Bu[i]
		}
	}
	return a.n < b.n
}

// Support returns the refinement indices with strictly positive mass, sorted
// ascending. Used by the belief-MDP builder and by tests asserting sparsity.
func (b Belief) Support() []int {
	out := make([]int, 0, b.n)
	for i := 0; i < b.n; i++ {
		if b.Bu[i] > 0 {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}
