package simplex

import "gonum.org/v1/gonum/mat"

// applyPivot applies the ±θ adjustment along cycle and returns the next
// allocation (the input is left untouched).
//
// θ is the minimum current allocation among the −θ cells (odd positions of
// the cycle). θ == 0 is legal: the pivot is then degenerate and merely
// introduces a zero-valued basic cell. Because θ is the binding minimum,
// no cell ever goes negative; −θ cells that hit the minimum are snapped to
// exactly zero so the basic-cell set stays crisp under float arithmetic.
//
// Complexity: O(m·n) for the copy, O(len(cycle)) for the adjustment.
func applyPivot(alloc *mat.Dense, cycle []cell, eps float64) *mat.Dense {
	next := mat.DenseCopyOf(alloc)

	// θ = min allocation over the −θ (odd-position) cells.
	var (
		theta float64
		k     int
		c     cell
		v     float64
	)
	theta = alloc.At(cycle[1].i, cycle[1].j)
	for k = 3; k < len(cycle); k += 2 {
		c = cycle[k]
		if alloc.At(c.i, c.j) < theta {
			theta = alloc.At(c.i, c.j)
		}
	}

	// Alternate +θ / −θ along the loop, starting with +θ at the entering cell.
	for k, c = range cycle {
		v = next.At(c.i, c.j)
		if k%2 == 0 {
			v += theta
		} else {
			v -= theta
		}
		if v < eps {
			v = 0 // snap float dust; θ's definition forbids true negatives
		}
		next.Set(c.i, c.j, v)
	}

	return next
}
