package simplex

import (
	"errors"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/transport/problem"
)

// ErrBadOptions is returned when Options carry nonsensical values
// (negative MaxIter or Eps).
var ErrBadOptions = errors.New("simplex: invalid options")

// DefaultMaxIter bounds the number of pivots when callers do not choose one.
const DefaultMaxIter = 100

// Status reports how a solve terminated.
type Status int

const (
	// Optimal - no entering variable with negative reduced cost remains.
	Optimal Status = iota

	// Stalled - an improving entering cell exists but no closed loop
	// through the current basis reaches it (degenerate/malformed basis).
	// The current allocation is returned as final; this is an expected
	// edge case, not an error.
	Stalled

	// MaxIterReached - the pivot budget ran out before optimality.
	MaxIterReached
)

// String implements fmt.Stringer for log output.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Stalled:
		return "stalled"
	case MaxIterReached:
		return "max-iter-reached"
	default:
		return "unknown"
	}
}

// Options configures the simplex driver.
//
//   - MaxIter: maximum number of pivots (0 ⇒ return the initial solution).
//   - Eps: tolerance separating basic (allocation > Eps) from non-basic
//     cells and guarding float comparisons.
//   - Logger: optional structured logger; nil ⇒ no logging.
type Options struct {
	MaxIter int
	Eps     float64
	Logger  *zap.Logger
}

// DefaultOptions returns the canonical configuration.
func DefaultOptions() Options {
	return Options{
		MaxIter: DefaultMaxIter,
		Eps:     problem.FeasTol,
	}
}

func (o Options) validate() error {
	if o.MaxIter < 0 || o.Eps < 0 {
		return ErrBadOptions
	}

	return nil
}

// Result is the outcome of a simplex solve.
//
// Allocation and every Log snapshot match the shape of the instance the
// caller submitted (dummy row/column already stripped); Cost is computed
// against the caller's cost matrix. The Log is owned by the caller from
// the moment Solve returns.
type Result struct {
	Allocation *mat.Dense
	Cost       float64
	Log        []problem.IterationRecord
	Status     Status
	Iterations int
}

// cell addresses one allocation entry (row, column).
type cell struct {
	i, j int
}
