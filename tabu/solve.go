// Package tabu - driver state machine.
//
// States: INITIALIZING → ITERATING → DONE (MaxIter reached). There is no
// early-optimality stop; a metaheuristic does not know when it is optimal.
//
// Per iteration:
//  1. Generate a candidate batch from the current solution.
//  2. Cost and fingerprint every candidate in generation order.
//  3. Skip candidates whose fingerprint is tabu; among the rest pick the
//     cheapest (first-encountered wins ties).
//  4. All tabu ⇒ accept the first candidate regardless (override rule;
//     prevents deadlock, an expected condition rather than an error).
//  5. Walk: current = chosen; best updates only on strict improvement.
//  6. Remember the chosen move's fingerprint; log the chosen candidate.
package tabu

import (
	"math"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/transport/problem"
)

// Solve runs Tabu Search on (cost, supply, demand).
//
// Contracts match simplex.Solve: preconditions are validated up front,
// unbalanced totals are balanced internally, and both the best allocation
// and every log snapshot are stripped back to the submitted m×n shape,
// with the final cost recomputed against the caller's cost matrix.
//
// The log contains the iteration-0 record (initial least-cost solution)
// plus exactly MaxIter records, one per iteration, each carrying the
// *chosen* candidate of that iteration - the walk, not the incumbent.
//
// Complexity: O(MaxIter · Neighbors · m·n).
func Solve(cost *mat.Dense, supply, demand []float64, opts Options) (Result, error) {
	// Stage 1 - boundary validation.
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

	// Stage 2 - balance and build the initial solution.
	bal, pad := problem.Balance(cost, supply, demand)
	current, err := problem.LeastCost(bal)
	if err != nil {
		return Result{}, err
	}
	best := mat.DenseCopyOf(current)
	bestCost := problem.TotalCost(bal.Cost, best)

	log := []problem.IterationRecord{{
		Iteration:  0,
		Cost:       bestCost,
		Allocation: mat.DenseCopyOf(current),
		Elapsed:    0,
	}}
	list := NewList(opts.Capacity)

	// Stage 3 - the walk.
	var (
		iter, k    int
		chosen     *mat.Dense
		chosenCost float64
		chosenFp   float64
		fp         float64
		candCost   float64
	)
	for iter = 1; iter <= opts.MaxIter; iter++ {
		// Independent deterministic substream per iteration.
		rng := deriveRNG(opts.Seed, uint64(iter))
		batch := neighbors(rng, current, opts.Variant, opts.Neighbors, opts.Swaps)

		// Pick the cheapest admissible candidate in generation order.
		chosen = nil
		chosenCost = math.Inf(1)
		for k = range batch {
			fp = fingerprint(batch[k], current)
			if list.Contains(fp) {
				continue
			}
			candCost = problem.TotalCost(bal.Cost, batch[k])
			if candCost < chosenCost {
				chosen = batch[k]
				chosenCost = candCost
				chosenFp = fp
			}
		}
		if chosen == nil {
			// Override rule: every candidate is tabu, take the first one.
			chosen = batch[0]
			chosenCost = problem.TotalCost(bal.Cost, chosen)
			chosenFp = fingerprint(chosen, current)
		}

		current = chosen
		if chosenCost < bestCost {
			best = mat.DenseCopyOf(chosen)
			bestCost = chosenCost
		}
		list.Push(chosenFp)

		log = append(log, problem.IterationRecord{
			Iteration:  iter,
			Cost:       chosenCost,
			Allocation: mat.DenseCopyOf(current),
			Elapsed:    time.Since(start),
		})
		logger.Debug("move accepted",
			zap.Int("iteration", iter),
			zap.Float64("cost", chosenCost),
			zap.Float64("fingerprint", chosenFp),
			zap.Float64("best", bestCost),
		)
	}

	// Stage 4 - strip the dummy and recompute against the caller's matrix.
	final := problem.Strip(best, pad)
	log = problem.StripLog(log, pad)
	finalCost := problem.TotalCost(cost, final)

	logger.Info("tabu solve finished",
		zap.Int("iterations", opts.MaxIter),
		zap.Float64("cost", finalCost),
		zap.Duration("elapsed", time.Since(start)),
	)

	return Result{
		Allocation: final,
		Cost:       finalCost,
		Log:        log,
		Iterations: opts.MaxIter,
	}, nil
}
