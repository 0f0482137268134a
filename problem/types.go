package problem

import (
	"errors"
	"time"

	"gonum.org/v1/gonum/mat"
)

// ErrDimensionMismatch is returned when the cost matrix shape and the
// supply/demand vector lengths disagree, or when the matrix is nil/empty.
var ErrDimensionMismatch = errors.New("problem: dimension mismatch")

// ErrNegativeCost is returned when the cost matrix contains a negative entry.
var ErrNegativeCost = errors.New("problem: negative cost entry")

// ErrNegativeSupply is returned when the supply vector contains a negative entry.
var ErrNegativeSupply = errors.New("problem: negative supply entry")

// ErrNegativeDemand is returned when the demand vector contains a negative entry.
var ErrNegativeDemand = errors.New("problem: negative demand entry")

// ErrNonFinite is returned when any input entry is NaN or ±Inf.
var ErrNonFinite = errors.New("problem: non-finite input entry")

// ErrIncompleteAllocation is returned by LeastCost when a balanced instance
// exhausts remaining supply and demand without fully allocating. This cannot
// happen on a balanced instance with finite costs, so it signals an invariant
// violation, never a normal exit.
var ErrIncompleteAllocation = errors.New("problem: incomplete initial allocation")

// FeasTol is the tolerance used for feasibility comparisons: balancing
// (ΣSupply vs ΣDemand), basic-cell detection, and row/column sum checks.
const FeasTol = 1e-9

// Problem is a balanced or unbalanced transportation instance. Constructors
// in this package always deep-copy, so a Problem never aliases caller data.
type Problem struct {
	// Cost is the m×n shipping cost matrix, entries ≥ 0.
	Cost *mat.Dense

	// Supply holds the quantity available at each of the m sources.
	Supply []float64

	// Demand holds the quantity required at each of the n sinks.
	Demand []float64
}

// Dims returns (m, n) of the instance.
func (p Problem) Dims() (int, int) {
	return p.Cost.Dims()
}

// Padding records which dummy the balancer appended, so that callers can
// strip it from result allocations after solving.
type Padding int

const (
	// PadNone - the instance was already balanced; nothing to strip.
	PadNone Padding = iota

	// PadRow - a zero-cost dummy source row absorbed excess demand.
	PadRow

	// PadColumn - a zero-cost dummy sink column absorbed excess supply.
	PadColumn
)

// IterationRecord is one entry of a solver's append-only iteration log.
//
// Allocation is a deep snapshot of the allocation at that point; after the
// solver returns, every snapshot matches the un-padded problem shape.
// Elapsed is measured from solve start on a monotonic clock and is
// non-decreasing across a log.
type IterationRecord struct {
	Iteration  int
	Cost       float64
	Allocation *mat.Dense
	Elapsed    time.Duration
}
