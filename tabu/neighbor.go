// Package tabu - neighborhood generation.
//
// A neighbor is a deep copy of the current allocation perturbed by a fixed
// number of random operations. Two rules exist:
//
//   - SwapCells (default): exchange the values of two distinct cells.
//     Every cell value keeps its row-and-column membership, so the batch
//     explores reallocations without touching totals; feasible input stays
//     feasible.
//   - UnitShift: ±1 on one cell, clamped at zero. Historical variant; can
//     break the supply/demand equalities and exists only as an explicit
//     opt-in (see Variant docs in types.go).
//
// Candidate order within a batch is the generation order; downstream
// tie-breaks depend on it, so it must stay stable.
package tabu

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// neighbors generates count candidates from cur using the given variant,
// applying ops perturbation operations to each. cur is never mutated.
//
// Complexity: O(count·m·n) for the copies plus O(count·ops) perturbations.
func neighbors(rng *rand.Rand, cur *mat.Dense, variant Variant, count, ops int) []*mat.Dense {
	batch := make([]*mat.Dense, count)

	var (
		k, s int
		next *mat.Dense
	)
	for k = 0; k < count; k++ {
		next = mat.DenseCopyOf(cur)
		for s = 0; s < ops; s++ {
			switch variant {
			case UnitShift:
				unitPerturb(rng, next)
			default:
				swapPerturb(rng, next)
			}
		}
		batch[k] = next
	}

	return batch
}

// swapPerturb exchanges the values of two distinct random cells in place.
func swapPerturb(rng *rand.Rand, a *mat.Dense) {
	m, n := a.Dims()
	if m*n < 2 {
		return
	}
	i1, j1, i2, j2 := randomCellPair(rng, m, n)

	v1, v2 := a.At(i1, j1), a.At(i2, j2)
	a.Set(i1, j1, v2)
	a.Set(i2, j2, v1)
}

// unitPerturb adds ±1 to one random cell in place, clamped at zero.
func unitPerturb(rng *rand.Rand, a *mat.Dense) {
	m, n := a.Dims()
	i, j := randomCell(rng, m, n)

	delta := float64(rng.Intn(2)*2 - 1) // −1 or +1
	a.Set(i, j, math.Max(a.At(i, j)+delta, 0))
}

// fingerprint is the move identity used by the tabu list: the sum of
// absolute cell-wise differences between two allocations of equal shape.
func fingerprint(a, b *mat.Dense) float64 {
	m, n := a.Dims()

	var (
		sum  float64
		i, j int
	)
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			sum += math.Abs(a.At(i, j) - b.At(i, j))
		}
	}

	return sum
}
