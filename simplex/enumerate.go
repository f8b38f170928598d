package simplex

import (
	"fmt"

	"github.com/solventlabs/beliefgrid/belief"
)

// Enumerate returns every grid point of the (n-1)-simplex at resolution M,
// as beliefs over observation class so with n refinements. The order is
// deterministic (lexicographic on the underlying composition, descending)
// but callers must not depend on any particular order beyond that — only
// on it being stable across repeated calls with the same (so, n, M).
func Enumerate(so, n, M int) ([]belief.Belief, error) {
	if M < 1 {
		return nil, fmt.Errorf("simplex: Enumerate(M=%d): %w", M, ErrBadResolution)
	}
	if n < 1 || n > belief.MaxRefinements {
		return nil, fmt.Errorf("simplex: Enumerate(n=%d): %w", n, ErrBadDimension)
	}

	comps := compositions(n, M)
	out := make([]belief.Belief, 0, len(comps))
	for _, g := range comps {
		b, err := belief.New(so, gridCoords(g, M))
		if err != nil {
			return nil, fmt.Errorf("simplex: Enumerate: building vertex from %v: %w", g, err)
		}
		out = append(out, b)
	}
	return out, nil
}

// Count returns len(Enumerate(so, n, M)) without materializing the slice,
// i.e. C(M+n-1, n-1).
func Count(n, M int) (int, error) {
	if M < 1 {
		return 0, fmt.Errorf("simplex: Count(M=%d): %w", M, ErrBadResolution)
	}
	if n < 1 || n > belief.MaxRefinements {
		return 0, fmt.Errorf("simplex: Count(n=%d): %w", n, ErrBadDimension)
	}
	return binomial(M+n-1, n-1), nil
}

func binomial(a, b int) int {
	if b < 0 || b > a {
		return 0
	}
	if b > a-b {
		b = a - b
	}
	result := 1
	for i := 0; i < b; i++ {
		result = result * (a - i) / (i + 1)
	}
	return result
}
