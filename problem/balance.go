// Package problem - balancing and its inverse (dummy stripping).
//
// The transportation simplex requires ΣSupply == ΣDemand. Balance restores
// that equality by appending one zero-cost dummy row or column; Strip and
// StripLog undo it on result allocations so callers always see the shape of
// the instance they submitted.
package problem

import (
	"gonum.org/v1/gonum/mat"
)

// Balance returns a balanced copy of the instance plus the Padding that was
// applied:
//
//   - ΣSupply > ΣDemand ⇒ append a zero-cost column, Demand gains the
//     surplus, PadColumn.
//   - ΣDemand > ΣSupply ⇒ append a zero-cost row, Supply gains the
//     surplus, PadRow.
//   - equal (within FeasTol) ⇒ copies returned unchanged, PadNone.
//
// Balance is pure: the caller's matrix and vectors are never mutated, and
// the returned Problem shares no storage with them. Idempotent on balanced
// input (no second dummy is ever appended).
//
// Complexity: O(m·n) time and space.
func Balance(cost *mat.Dense, supply, demand []float64) (Problem, Padding) {
	m, n := cost.Dims()

	var (
		totalSupply float64
		totalDemand float64
		i, j        int
	)
	for i = 0; i < m; i++ {
		totalSupply += supply[i]
	}
	for j = 0; j < n; j++ {
		totalDemand += demand[j]
	}

	diff := totalSupply - totalDemand
	switch {
	case diff > FeasTol:
		// Excess supply: zero-cost dummy sink column absorbs the surplus.
		padded := mat.NewDense(m, n+1, nil)
		for i = 0; i < m; i++ {
			for j = 0; j < n; j++ {
				padded.Set(i, j, cost.At(i, j))
			}
			padded.Set(i, n, 0)
		}

		return Problem{
			Cost:   padded,
			Supply: append([]float64(nil), supply...),
			Demand: append(append([]float64(nil), demand...), diff),
		}, PadColumn

	case diff < -FeasTol:
		// Excess demand: zero-cost dummy source row absorbs the surplus.
		padded := mat.NewDense(m+1, n, nil)
		for i = 0; i < m; i++ {
			for j = 0; j < n; j++ {
				padded.Set(i, j, cost.At(i, j))
			}
		}
		for j = 0; j < n; j++ {
			padded.Set(m, j, 0)
		}

		return Problem{
			Cost:   padded,
			Supply: append(append([]float64(nil), supply...), -diff),
			Demand: append([]float64(nil), demand...),
		}, PadRow

	default:
		// Already balanced; still copy so the Problem owns its storage.
		return Problem{
			Cost:   mat.DenseCopyOf(cost),
			Supply: append([]float64(nil), supply...),
			Demand: append([]float64(nil), demand...),
		}, PadNone
	}
}

// Strip removes the dummy row or column recorded by pad from alloc and
// returns a fresh matrix of the original shape. PadNone returns a plain
// copy. Strip never mutates its input.
//
// Complexity: O(m·n).
func Strip(alloc *mat.Dense, pad Padding) *mat.Dense {
	m, n := alloc.Dims()

	switch pad {
	case PadRow:
		return copyRegion(alloc, m-1, n)
	case PadColumn:
		return copyRegion(alloc, m, n-1)
	default:
		return mat.DenseCopyOf(alloc)
	}
}

// StripLog applies Strip to every snapshot of an iteration log, in place on
// the slice but with fresh matrices, and returns the same slice for
// convenience.
func StripLog(log []IterationRecord, pad Padding) []IterationRecord {
	if pad == PadNone {
		return log
	}
	var k int
	for k = range log {
		log[k].Allocation = Strip(log[k].Allocation, pad)
	}

	return log
}

// copyRegion copies the leading rows×cols block of src into a new matrix.
func copyRegion(src *mat.Dense, rows, cols int) *mat.Dense {
	dst := mat.NewDense(rows, cols, nil)

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			dst.Set(i, j, src.At(i, j))
		}
	}

	return dst
}
