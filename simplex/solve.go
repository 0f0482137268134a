// Package simplex - driver state machine.
//
// Solve wires the per-iteration pipeline (potentials → entering scan →
// cycle search → pivot) around the shared problem routines:
//
//	validate → balance → least-cost initial solution → iterate → strip dummy
//
// States: INITIALIZING → ITERATING → {Optimal, Stalled, MaxIterReached}.
// Degenerate conditions (no cycle, indeterminate potentials) terminate or
// degrade gracefully per the taxonomy in the problem package; only
// boundary precondition violations surface as errors.
package simplex

import (
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/transport/problem"
)

// Solve runs the transportation simplex on (cost, supply, demand).
//
// Contracts:
//   - cost is m×n with finite entries ≥ 0; len(supply)==m, len(demand)==n,
//     entries ≥ 0 (checked; violations return problem.* sentinels).
//   - Unbalanced totals are accepted and balanced internally; the returned
//     allocation and every log snapshot are stripped back to m×n.
//
// The returned log always contains the iteration-0 record (initial
// least-cost solution) plus one record per applied pivot; its cost
// sequence is non-increasing. With MaxIter == 0 the log is exactly the
// iteration-0 record and the allocation is the initial solution.
//
// Complexity: O(MaxIter · m·n) plus cycle searches; see doc.go.
func Solve(cost *mat.Dense, supply, demand []float64, opts Options) (Result, error) {
	// Stage 1 - boundary validation (options first, then instance).
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if err := problem.Validate(cost, supply, demand); err != nil {
		return Result{}, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	start := time.Now()

	// Stage 2 - balance and build the initial basic feasible solution.
	bal, pad := problem.Balance(cost, supply, demand)
	alloc, err := problem.LeastCost(bal)
	if err != nil {
		return Result{}, err
	}

	log := []problem.IterationRecord{{
		Iteration:  0,
		Cost:       problem.TotalCost(bal.Cost, alloc),
		Allocation: mat.DenseCopyOf(alloc),
		Elapsed:    0,
	}}

	// Stage 3 - iterate until optimality, stall, or the pivot budget.
	var (
		status = MaxIterReached
		pivots int
		iter   int
	)
	for iter = 1; iter <= opts.MaxIter; iter++ {
		pot := computePotentials(bal.Cost, alloc, opts.Eps)

		entering, delta, found := selectEntering(bal.Cost, alloc, pot, opts.Eps)
		if !found {
			status = Optimal
			break
		}

		cycle, ok := findCycle(alloc, entering, opts.Eps)
		if !ok {
			// Degenerate basis: no loop reaches the entering cell. Stop
			// gracefully with the current allocation.
			status = Stalled
			break
		}

		alloc = applyPivot(alloc, cycle, opts.Eps)
		pivots++

		iterCost := problem.TotalCost(bal.Cost, alloc)
		log = append(log, problem.IterationRecord{
			Iteration:  iter,
			Cost:       iterCost,
			Allocation: mat.DenseCopyOf(alloc),
			Elapsed:    time.Since(start),
		})
		logger.Debug("pivot applied",
			zap.Int("iteration", iter),
			zap.Float64("cost", iterCost),
			zap.Float64("delta", delta),
			zap.Int("cycle_len", len(cycle)),
		)
	}

	// Stage 4 - strip the dummy (if any) and recompute against the
	// caller's cost matrix.
	final := problem.Strip(alloc, pad)
	log = problem.StripLog(log, pad)
	finalCost := problem.TotalCost(cost, final)

	logger.Info("simplex solve finished",
		zap.Stringer("status", status),
		zap.Int("pivots", pivots),
		zap.Float64("cost", finalCost),
		zap.Duration("elapsed", time.Since(start)),
	)

	return Result{
		Allocation: final,
		Cost:       finalCost,
		Log:        log,
		Status:     status,
		Iterations: pivots,
	}, nil
}
