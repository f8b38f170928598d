package chainsolver

import (
	"fmt"
	"math"

	"github.com/solventlabs/beliefgrid/pomdp"
)

// pivotEps is the smallest pivot magnitude treated as nonzero; anything
// smaller is a numerically singular system (see solve).
const pivotEps = 1e-12

// denseMatrix is a minimal row-major square matrix, local to this package:
// the strategy chain's linear systems are small and dense, and nothing
// here needs the full builder/export surface of the teacher's matrix
// package (see DESIGN.md).
type denseMatrix struct {
	n    int
	data []float64
}

func newMatrix(rows, cols int) *denseMatrix {
	return &denseMatrix{n: rows, data: make([]float64, rows*cols)}
}

func (m *denseMatrix) at(i, j int) float64    { return m.data[i*m.n+j] }
func (m *denseMatrix) set(i, j int, v float64) { m.data[i*m.n+j] = v }
func (m *denseMatrix) add(i, j int, v float64) { m.data[i*m.n+j] += v }

// solve computes x such that a·x = rhs via Doolittle LU decomposition with
// partial pivoting, then forward/back substitution. It returns the
// residual ‖a·x - rhs‖_∞ as the accuracy half-width SPEC §4.7 requires be
// reported rather than assumed zero.
func solve(a *denseMatrix, rhs []float64) ([]float64, float64, error) {
	n := a.n
	lu := append([]float64(nil), a.data...)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	// Stage 1: decompose with partial pivoting (Doolittle, in place).
	for k := 0; k < n; k++ {
		pivotRow, pivotVal := k, math.Abs(lu[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(lu[i*n+k]); v > pivotVal {
				pivotRow, pivotVal = i, v
			}
		}
		if pivotVal < pivotEps {
			return nil, 0, fmt.Errorf("chainsolver: singular system at pivot %d: %w", k, pomdp.ErrInternal)
		}
		if pivotRow != k {
			for j := 0; j < n; j++ {
				lu[k*n+j], lu[pivotRow*n+j] = lu[pivotRow*n+j], lu[k*n+j]
			}
			perm[k], perm[pivotRow] = perm[pivotRow], perm[k]
		}

		for i := k + 1; i < n; i++ {
			factor := lu[i*n+k] / lu[k*n+k]
			lu[i*n+k] = factor
			for j := k + 1; j < n; j++ {
				lu[i*n+j] -= factor * lu[k*n+j]
			}
		}
	}

	// Stage 2: permute rhs to match the pivoted rows.
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = rhs[perm[i]]
	}

	// Stage 3: forward substitution L·z = y (L has unit diagonal).
	z := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := y[i]
		for j := 0; j < i; j++ {
			sum -= lu[i*n+j] * z[j]
		}
		z[i] = sum
	}

	// Stage 4: back substitution U·x = z.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := z[i]
		for j := i + 1; j < n; j++ {
			sum -= lu[i*n+j] * x[j]
		}
		x[i] = sum / lu[i*n+i]
	}

	// Stage 5: residual against the original (unpivoted) system.
	residual := 0.0
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += a.at(i, j) * x[j]
		}
		if d := math.Abs(sum - rhs[i]); d > residual {
			residual = d
		}
	}

	return x, residual, nil
}
