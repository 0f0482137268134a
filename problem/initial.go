// Package problem - greedy least-cost initial basic feasible solution.
//
// Algorithm outline:
//  1. Copy Supply and Demand into remaining-quantity vectors.
//  2. Among all cells (i,j) with remaining supply[i] > 0 and remaining
//     demand[j] > 0, pick the globally cheapest; ties break on the first
//     cell encountered in row-major order (a deliberate, reproducible
//     tie-break - not an optimality argument).
//  3. Allocate min(remaining supply[i], remaining demand[j]); decrement
//     both; repeat while any eligible cell remains.
//
// On a balanced instance this terminates after at most m+n−1 allocations
// and satisfies Supply and Demand exactly. Running out of eligible cells
// before full allocation is an invariant violation on balanced input and
// is surfaced as ErrIncompleteAllocation.
package problem

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// LeastCost builds the initial allocation for p using the least-cost rule.
//
// Contracts:
//   - p must have passed Validate and Balance (ΣSupply == ΣDemand).
//
// Complexity: O((m+n)·m·n) time (one full scan per allocation), O(m·n) space.
func LeastCost(p Problem) (*mat.Dense, error) {
	m, n := p.Dims()

	alloc := mat.NewDense(m, n, nil)
	remSupply := append([]float64(nil), p.Supply...)
	remDemand := append([]float64(nil), p.Demand...)

	var (
		i, j       int     // scan indices
		iMin, jMin int     // cheapest eligible cell
		minCost    float64 // its cost
		qty        float64 // quantity allocated this round
	)
	for {
		// Scan for the cheapest cell with both sides still open.
		iMin, jMin = -1, -1
		minCost = math.Inf(1)
		for i = 0; i < m; i++ {
			if remSupply[i] <= FeasTol {
				continue
			}
			for j = 0; j < n; j++ {
				if remDemand[j] <= FeasTol {
					continue
				}
				// Strict < keeps the first-encountered cell on ties.
				if p.Cost.At(i, j) < minCost {
					minCost = p.Cost.At(i, j)
					iMin, jMin = i, j
				}
			}
		}
		if iMin < 0 {
			break
		}

		qty = math.Min(remSupply[iMin], remDemand[jMin])
		alloc.Set(iMin, jMin, alloc.At(iMin, jMin)+qty)
		remSupply[iMin] -= qty
		remDemand[jMin] -= qty
	}

	// On balanced input both vectors must be exhausted together.
	for i = 0; i < m; i++ {
		if remSupply[i] > FeasTol {
			return nil, ErrIncompleteAllocation
		}
	}
	for j = 0; j < n; j++ {
		if remDemand[j] > FeasTol {
			return nil, ErrIncompleteAllocation
		}
	}

	return alloc, nil
}
