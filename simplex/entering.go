package simplex

import "gonum.org/v1/gonum/mat"

// selectEntering scans the non-basic cells (allocation ≤ eps) for the most
// negative reduced cost δ(i,j) = cost[i,j] − (u[i] + v[j]) and returns the
// winning cell, its δ, and whether any improving cell exists.
//
// Cells whose row or column potential is unknown (degenerate basis) cannot
// be evaluated; their δ is treated as 0, which never wins against a
// strictly negative candidate and never triggers a pivot on its own - the
// conservative reading of an indeterminate potential.
//
// Ties break on the first cell encountered in row-major order; this is a
// reproducibility contract, not an optimality argument.
//
// found == false signals optimality (no entering variable).
//
// Complexity: O(m·n).
func selectEntering(cost, alloc *mat.Dense, pot potentials, eps float64) (entering cell, delta float64, found bool) {
	m, n := cost.Dims()

	var (
		i, j int
		d    float64
	)
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			if alloc.At(i, j) > eps {
				continue // basic cell
			}
			if !pot.uKnown[i] || !pot.vKnown[j] {
				continue // indeterminate δ, conservatively 0
			}
			d = cost.At(i, j) - (pot.u[i] + pot.v[j])
			// Strict < keeps the first-encountered cell on ties.
			if d < delta {
				delta = d
				entering = cell{i, j}
				found = true
			}
		}
	}

	return entering, delta, found
}
