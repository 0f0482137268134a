// Package simplex_test exercises the driver end-to-end through the public
// API: feasibility of returned allocations, monotone cost logs, balancing
// round-trips, and the degenerate stop conditions.
package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/transport/problem"
	"github.com/katalvlaran/transport/simplex"
)

const tol = 1e-9

// unbalanced 3×4 instance: total supply 75 vs total demand 70, so the
// solver must add (and later strip) a dummy demand column of 5.
func unbalancedInstance() (*mat.Dense, []float64, []float64) {
	cost := mat.NewDense(3, 4, []float64{
		8, 6, 10, 9,
		9, 12, 13, 7,
		14, 9, 16, 5,
	})

	return cost, []float64{20, 30, 25}, []float64{10, 25, 25, 10}
}

// balanced 3×4 instance (total 100 on both sides).
func balancedInstance() (*mat.Dense, []float64, []float64) {
	cost := mat.NewDense(3, 4, []float64{
		2, 10, 15, 20,
		4, 8, 16, 18,
		6, 12, 14, 10,
	})

	return cost, []float64{40, 35, 25}, []float64{30, 25, 25, 20}
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}

	return s
}

// TestSolve_BalancedFeasibleOptimal checks the core contract on a balanced
// instance: exact feasibility, Optimal status, and a non-increasing cost log.
func TestSolve_BalancedFeasibleOptimal(t *testing.T) {
	cost, supply, demand := balancedInstance()

	res, err := simplex.Solve(cost, supply, demand, simplex.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, simplex.Optimal, res.Status)
	assert.InDeltaSlice(t, supply, problem.SumRows(res.Allocation), tol, "row sums must equal supply")
	assert.InDeltaSlice(t, demand, problem.SumCols(res.Allocation), tol, "column sums must equal demand")

	require.NotEmpty(t, res.Log)
	for k := 1; k < len(res.Log); k++ {
		assert.LessOrEqual(t, res.Log[k].Cost, res.Log[k-1].Cost+tol,
			"simplex cost sequence must be non-increasing (k=%d)", k)
		assert.GreaterOrEqual(t, res.Log[k].Elapsed, res.Log[k-1].Elapsed,
			"elapsed time must be non-decreasing (k=%d)", k)
	}
	assert.InDelta(t, res.Cost, res.Log[len(res.Log)-1].Cost, tol,
		"final cost matches the last log record on a balanced instance")
}

// TestSolve_UnbalancedStripsDummy runs the unbalanced scenario: the result
// and every log snapshot must come back in the original 3×4 shape, demand
// satisfied exactly, and total shipped equal to total demand.
func TestSolve_UnbalancedStripsDummy(t *testing.T) {
	cost, supply, demand := unbalancedInstance()

	res, err := simplex.Solve(cost, supply, demand, simplex.DefaultOptions())
	require.NoError(t, err)

	m, n := res.Allocation.Dims()
	assert.Equal(t, 3, m)
	assert.Equal(t, 4, n)

	assert.InDeltaSlice(t, demand, problem.SumCols(res.Allocation), tol,
		"every sink receives exactly its demand")

	rows := problem.SumRows(res.Allocation)
	for i := range rows {
		assert.LessOrEqual(t, rows[i], supply[i]+tol, "no source ships more than its supply")
	}
	assert.InDelta(t, sum(demand), sum(rows), tol,
		"the 5-unit surplus stays on the dummy and is stripped")

	for _, rec := range res.Log {
		lm, ln := rec.Allocation.Dims()
		assert.Equal(t, 3, lm, "log snapshots must be stripped too")
		assert.Equal(t, 4, ln)
	}
}

// TestSolve_DegenerateUniformCosts: with uniform costs every feasible plan
// costs the same; the solver must stop immediately with no improving
// entering variable.
func TestSolve_DegenerateUniformCosts(t *testing.T) {
	cost := mat.NewDense(3, 3, []float64{
		5, 5, 5,
		5, 5, 5,
		5, 5, 5,
	})
	supply := []float64{30, 20, 10}
	demand := []float64{30, 20, 10}

	res, err := simplex.Solve(cost, supply, demand, simplex.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, simplex.Optimal, res.Status)
	assert.Equal(t, 0, res.Iterations, "no pivot can improve a uniform-cost plan")
	assert.InDelta(t, 5*sum(supply), res.Cost, tol, "cost is 5 × total supply regardless of pattern")
	assert.Len(t, res.Log, 1, "only the iteration-0 record is produced")
}

// TestSolve_MaxIterZero: the returned log is exactly the iteration-0 record
// and the allocation is the initial least-cost solution.
func TestSolve_MaxIterZero(t *testing.T) {
	cost, supply, demand := unbalancedInstance()

	opts := simplex.DefaultOptions()
	opts.MaxIter = 0

	res, err := simplex.Solve(cost, supply, demand, opts)
	require.NoError(t, err)

	require.Len(t, res.Log, 1)
	assert.Equal(t, 0, res.Log[0].Iteration)
	assert.Equal(t, simplex.MaxIterReached, res.Status)

	// Recompute the initial solution independently and compare.
	bal, pad := problem.Balance(cost, supply, demand)
	initial, err := problem.LeastCost(bal)
	require.NoError(t, err)
	want := problem.Strip(initial, pad)

	assert.True(t, mat.EqualApprox(want, res.Allocation, tol),
		"MaxIter=0 must return the untouched initial solution")
}

// TestSolve_PivotImproves runs an instance whose greedy start (cost 95) is
// suboptimal: one pivot on the entering cell (0,2) must reach the optimum
// at cost 75.
func TestSolve_PivotImproves(t *testing.T) {
	cost := mat.NewDense(2, 3, []float64{
		1, 5, 4,
		2, 3, 9,
	})
	supply := []float64{10, 20}
	demand := []float64{15, 10, 5}

	res, err := simplex.Solve(cost, supply, demand, simplex.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, simplex.Optimal, res.Status)
	assert.Equal(t, 1, res.Iterations)
	require.Len(t, res.Log, 2)
	assert.InDelta(t, 95, res.Log[0].Cost, tol, "greedy initial cost")
	assert.InDelta(t, 75, res.Log[1].Cost, tol, "cost after the single pivot")
	assert.InDelta(t, 75, res.Cost, tol)

	assert.InDeltaSlice(t, supply, problem.SumRows(res.Allocation), tol)
	assert.InDeltaSlice(t, demand, problem.SumCols(res.Allocation), tol)
}

// TestSolve_PreconditionViolations: boundary errors surface before solving.
func TestSolve_PreconditionViolations(t *testing.T) {
	cost := mat.NewDense(2, 2, []float64{1, 2, 3, -4})

	_, err := simplex.Solve(cost, []float64{1, 1}, []float64{1, 1}, simplex.DefaultOptions())
	assert.ErrorIs(t, err, problem.ErrNegativeCost)

	ok := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	_, err = simplex.Solve(ok, []float64{1}, []float64{1, 1}, simplex.DefaultOptions())
	assert.ErrorIs(t, err, problem.ErrDimensionMismatch)

	opts := simplex.DefaultOptions()
	opts.MaxIter = -1
	_, err = simplex.Solve(ok, []float64{1, 1}, []float64{1, 1}, opts)
	assert.ErrorIs(t, err, simplex.ErrBadOptions)
}

// BenchmarkSolve measures the driver on the balanced 3×4 instance.
func BenchmarkSolve(b *testing.B) {
	cost, supply, demand := balancedInstance()
	opts := simplex.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := simplex.Solve(cost, supply, demand, opts); err != nil {
			b.Fatal(err)
		}
	}
}
