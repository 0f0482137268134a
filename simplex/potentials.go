// Package simplex - dual-potential computation (the MODI step).
//
// Potentials are derived by propagation over the basic-cell incidence
// graph: each basic cell (i,j) ties u[i] and v[j] together via
// cost[i,j] == u[i] + v[j]. Fixing u[0]=0 (gauge choice) and sweeping the
// basic cells until a fixed point resolves every potential reachable from
// row 0. On a degenerate (disconnected) basis some entries stay unknown -
// that is expected and encoded explicitly, never an error.
package simplex

import "gonum.org/v1/gonum/mat"

// potentials holds the row/column duals with explicit known flags.
// Consumers must check the flag before reading a value; an unknown entry
// is represented as a tagged optional rather than a NaN or magic number so
// the compiler forces the degenerate case to be handled.
type potentials struct {
	u, v           []float64
	uKnown, vKnown []bool
}

// computePotentials derives (u, v) from the basic cells of alloc
// (entries > eps) with u[0] fixed at 0.
//
// Contracts:
//   - cost and alloc share the same m×n shape.
//
// Complexity: O(p·b) time where b = #basic cells and p ≤ m+n propagation
// passes (each pass resolves at least one new potential or terminates);
// O(m+n+b) space.
func computePotentials(cost, alloc *mat.Dense, eps float64) potentials {
	m, n := cost.Dims()

	pot := potentials{
		u:      make([]float64, m),
		v:      make([]float64, n),
		uKnown: make([]bool, m),
		vKnown: make([]bool, n),
	}
	pot.uKnown[0] = true // gauge: u[0] = 0

	// Collect basic cells once; the propagation sweeps reuse the list.
	var basics []cell
	var i, j int
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			if alloc.At(i, j) > eps {
				basics = append(basics, cell{i, j})
			}
		}
	}

	// Sweep until no basic cell can resolve a new potential.
	var (
		changed bool
		c       cell
	)
	for {
		changed = false
		for _, c = range basics {
			switch {
			case pot.uKnown[c.i] && !pot.vKnown[c.j]:
				pot.v[c.j] = cost.At(c.i, c.j) - pot.u[c.i]
				pot.vKnown[c.j] = true
				changed = true
			case pot.vKnown[c.j] && !pot.uKnown[c.i]:
				pot.u[c.i] = cost.At(c.i, c.j) - pot.v[c.j]
				pot.uKnown[c.i] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return pot
}
