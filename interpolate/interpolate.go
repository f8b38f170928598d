// Package interpolate approximates the value of an arbitrary belief from a
// value map defined only on grid vertices, by barycentric interpolation
// over the subsimplex the belief decomposes into (see package simplex).
package interpolate

import (
	"fmt"

	"github.com/solventlabs/beliefgrid/belief"
	"github.com/solventlabs/beliefgrid/pomdp"
	"github.com/solventlabs/beliefgrid/simplex"
)

// minWeight is the barycentric-weight floor below which a vertex
// contributes nothing and its presence in V need not be checked.
const minWeight = 1e-6

// Value interpolates V(b) = Σ λ_j · V[v_j], where v_j and λ are the grid
// decomposition of b at resolution M. Every vertex with weight above
// minWeight must already be a key of V; if one is missing, Decompose
// produced a vertex outside the grid, an internal invariant violation.
func Value(b belief.Belief, M int, v map[belief.Belief]float64) (float64, error) {
	vertices, weights, err := simplex.Decompose(b, M)
	if err != nil {
		return 0, fmt.Errorf("interpolate: decomposing %v: %w", b, err)
	}

	total := 0.0
	for i, w := range weights {
		if w < minWeight {
			continue
		}
		val, ok := v[vertices[i]]
		if !ok {
			return 0, fmt.Errorf(
				"interpolate: vertex %v (weight %.6f) of %v not present in value map: %w",
				vertices[i], w, b, pomdp.ErrInternal,
			)
		}
		total += w * val
	}
	return total, nil
}
