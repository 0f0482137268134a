package tabu

import (
	"errors"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/transport/problem"
)

// ErrBadOptions is returned when Options carry nonsensical values.
var ErrBadOptions = errors.New("tabu: invalid options")

// Defaults for the driver knobs; see Options.
const (
	DefaultMaxIter   = 100
	DefaultCapacity  = 5
	DefaultNeighbors = 10
	DefaultSwaps     = 3
)

// Variant selects the neighbor perturbation rule.
type Variant int

const (
	// SwapCells exchanges the values of two distinct random cells. Row and
	// column sums are preserved automatically, so feasible solutions stay
	// feasible. This is the default.
	SwapCells Variant = iota

	// UnitShift adds or subtracts one unit at a single random cell
	// (clamped at zero). Kept from the design history as an explicit
	// opt-in: it can violate the supply/demand equalities and is useful
	// only for experiments that tolerate infeasible intermediates.
	UnitShift
)

// Options configures the tabu driver.
//
//   - MaxIter: exact number of iterations to run (0 ⇒ only the initial
//     solution is produced and logged).
//   - Capacity: tabu-list length; the oldest fingerprint is evicted once
//     the list exceeds it. 0 disables the memory entirely.
//   - Neighbors: candidates generated per iteration (≥ 1; the override
//     rule needs a first candidate to fall back to).
//   - Swaps: perturbation operations applied per candidate.
//   - Variant: SwapCells (default) or UnitShift.
//   - Seed: RNG seed; 0 selects the fixed default stream.
//   - Logger: optional structured logger; nil ⇒ no logging.
type Options struct {
	MaxIter   int
	Capacity  int
	Neighbors int
	Swaps     int
	Variant   Variant
	Seed      int64
	Logger    *zap.Logger
}

// DefaultOptions returns the canonical configuration.
func DefaultOptions() Options {
	return Options{
		MaxIter:   DefaultMaxIter,
		Capacity:  DefaultCapacity,
		Neighbors: DefaultNeighbors,
		Swaps:     DefaultSwaps,
		Variant:   SwapCells,
	}
}

func (o Options) validate() error {
	if o.MaxIter < 0 || o.Capacity < 0 || o.Swaps < 0 {
		return ErrBadOptions
	}
	if o.Neighbors < 1 {
		return ErrBadOptions
	}
	switch o.Variant {
	case SwapCells, UnitShift:
	default:
		return ErrBadOptions
	}

	return nil
}

// Result is the outcome of a tabu solve.
//
// Allocation is the best solution encountered, stripped back to the shape
// of the submitted instance; Cost is recomputed against the caller's cost
// matrix. The Log holds the iteration-0 record plus one record per
// iteration (the chosen candidate, not the best-so-far) and is owned by
// the caller from the moment Solve returns.
type Result struct {
	Allocation *mat.Dense
	Cost       float64
	Log        []problem.IterationRecord
	Iterations int
}
