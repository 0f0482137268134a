package problem

import "gonum.org/v1/gonum/mat"

// TotalCost returns Σ alloc(i,j)·cost(i,j) over all cells.
// Both matrices must share the same shape.
//
// Complexity: O(m·n).
func TotalCost(cost, alloc *mat.Dense) float64 {
	m, n := cost.Dims()

	var (
		total float64
		i, j  int
	)
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			total += alloc.At(i, j) * cost.At(i, j)
		}
	}

	return total
}

// SumRows returns the per-row sums of m (shipped quantity per source).
func SumRows(a *mat.Dense) []float64 {
	r, c := a.Dims()
	sums := make([]float64, r)

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			sums[i] += a.At(i, j)
		}
	}

	return sums
}

// SumCols returns the per-column sums of m (received quantity per sink).
func SumCols(a *mat.Dense) []float64 {
	r, c := a.Dims()
	sums := make([]float64, c)

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			sums[j] += a.At(i, j)
		}
	}

	return sums
}
