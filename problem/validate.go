// Package problem - boundary validation shared by both solver entry points.
//
// Design principles (mirrors the rest of the module):
//   - Deterministic, side-effect free checks.
//   - Only sentinel errors from types.go, wrapped with position context.
//   - O(m·n) worst case; no allocations besides the returned error.
package problem

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Validate verifies the solver preconditions:
//   - cost is non-nil with m ≥ 1 rows and n ≥ 1 columns,
//   - len(supply) == m, len(demand) == n,
//   - every entry of cost, supply, demand is finite and ≥ 0.
//
// Unbalanced totals are legal (Balance handles them); negative or non-finite
// entries are caller errors and are rejected here, before any solving.
//
// Complexity: O(m·n).
func Validate(cost *mat.Dense, supply, demand []float64) error {
	// Stage 1: shape.
	if cost == nil {
		return ErrDimensionMismatch
	}
	m, n := cost.Dims()
	if m < 1 || n < 1 {
		return ErrDimensionMismatch
	}
	if len(supply) != m {
		return fmt.Errorf("%w: supply length %d, want %d", ErrDimensionMismatch, len(supply), m)
	}
	if len(demand) != n {
		return fmt.Errorf("%w: demand length %d, want %d", ErrDimensionMismatch, len(demand), n)
	}

	// Stage 2: cost entries.
	var (
		i, j int
		x    float64
	)
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			x = cost.At(i, j)
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("%w: cost[%d,%d]=%g", ErrNonFinite, i, j, x)
			}
			if x < 0 {
				return fmt.Errorf("%w: cost[%d,%d]=%g", ErrNegativeCost, i, j, x)
			}
		}
	}

	// Stage 3: vectors.
	for i = 0; i < m; i++ {
		x = supply[i]
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: supply[%d]=%g", ErrNonFinite, i, x)
		}
		if x < 0 {
			return fmt.Errorf("%w: supply[%d]=%g", ErrNegativeSupply, i, x)
		}
	}
	for j = 0; j < n; j++ {
		x = demand[j]
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: demand[%d]=%g", ErrNonFinite, j, x)
		}
		if x < 0 {
			return fmt.Errorf("%w: demand[%d]=%g", ErrNegativeDemand, j, x)
		}
	}

	return nil
}
