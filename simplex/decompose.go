package simplex

import (
	"fmt"
	"math"
	"sort"

	"github.com/solventlabs/beliefgrid/belief"
	"github.com/solventlabs/beliefgrid/pomdp"
)

// reconstructTolerance bounds the self-check Decompose runs before
// returning: the weighted sum of the chosen vertices must reproduce the
// input belief within this L-infinity distance.
const reconstructTolerance = 1e-4

// Decompose expresses belief b as a convex combination of at most n grid
// vertices at resolution M, where n = b.Dims(). It returns the n vertices
// Q^(0)..Q^(n-1) and their barycentric weights lambda, lambda[i] summing to
// 1 and every vertex lying in Enumerate(b.So, n, M) (though Decompose never
// materializes the full enumeration).
//
// Algorithm (Lovejoy 1991 barycentric subdivision):
//  1. X[i] = M * sum_{j>=i} b[j], for i in [0, n), rounded to 6 decimals
//     to absorb float error, so X[0] == M exactly.
//  2. V[i] = floor(X[i]), D[i] = X[i] - V[i] (the fractional remainder).
//  3. Sort index set {0,...,n-1} by D descending; ties broken by a stable
//     sort, so indices keep their relative input order within a tie.
//     Call the sorted order P.
//  4. Q^(0) = V. For i in [1, n), Q^(i) = Q^(i-1) with coordinate P[i-1]
//     incremented by 1 if D[P[i-1]] > 0; otherwise Q^(i) = Q^(i-1), which
//     keeps every vertex on the grid (its weight is 0).
//  5. lambda[i] = D[P[i-1]] - D[P[i]] for i in [1, n), with D[P[n]] treated
//     as 0; lambda[0] = 1 - sum_{i>=1} lambda[i].
func Decompose(b belief.Belief, M int) ([]belief.Belief, []float64, error) {
	if M < 1 {
		return nil, nil, fmt.Errorf("simplex: Decompose(M=%d): %w", M, ErrBadResolution)
	}
	n := b.Dims()
	if n < 1 || n > belief.MaxRefinements {
		return nil, nil, fmt.Errorf("simplex: Decompose(n=%d): %w", n, ErrBadDimension)
	}

	bu := b.Slice()
	X := make([]float64, n)
	tail := 0.0
	for i := n - 1; i >= 0; i-- {
		tail += bu[i]
		X[i] = math.Round(float64(M)*tail*1e6) / 1e6
	}

	V := make([]int, n)
	D := make([]float64, n)
	for i := 0; i < n; i++ {
		V[i] = int(math.Floor(X[i] + 1e-9))
		D[i] = X[i] - float64(V[i])
		if D[i] < 0 {
			D[i] = 0
		}
	}

	P := make([]int, n)
	for i := range P {
		P[i] = i
	}
	sort.SliceStable(P, func(a, c int) bool { return D[P[a]] > D[P[c]] })

	vertices := make([]belief.Belief, n)
	weights := make([]float64, n)

	g := make([]int, n)
	copy(g, V)
	q0, err := belief.New(b.So, gridCoords(g, M))
	if err != nil {
		return nil, nil, fmt.Errorf("simplex: Decompose: building Q^0: %w", err)
	}
	vertices[0] = q0

	weightSum := 0.0
	for i := 1; i < n; i++ {
		if D[P[i-1]] > 0 {
			g[P[i-1]]++
		}
		qi, err := belief.New(b.So, gridCoords(g, M))
		if err != nil {
			return nil, nil, fmt.Errorf("simplex: Decompose: building Q^%d: %w", i, err)
		}
		vertices[i] = qi

		dNext := 0.0
		if i < n {
			dNext = D[P[i]]
		}
		weights[i] = D[P[i-1]] - dNext
		weightSum += weights[i]
	}
	weights[0] = 1 - weightSum

	recon := make([]float64, n)
	for i := 0; i < n; i++ {
		vi := vertices[i].Slice()
		for j := 0; j < n; j++ {
			recon[j] += weights[i] * vi[j]
		}
	}
	maxDiff := 0.0
	for j := 0; j < n; j++ {
		diff := math.Abs(recon[j] - bu[j])
		if diff > maxDiff {
			maxDiff = diff
		}
	}
	if maxDiff > reconstructTolerance {
		return nil, nil, fmt.Errorf(
			"simplex: Decompose: reconstruction error %.3e exceeds tolerance %.3e: %w: %w",
			maxDiff, reconstructTolerance, ErrReconstruction, pomdp.ErrInternal,
		)
	}

	return vertices, weights, nil
}
