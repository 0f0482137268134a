// Package problem models the classical transportation problem and the
// routines shared by its solvers.
//
// A transportation instance is a cost matrix (m sources × n sinks) plus a
// supply vector and a demand vector. The package provides:
//
//   - Validate    — boundary precondition checks (shape, negativity, NaN/Inf)
//   - Balance     — dummy-row/column balancing so that ΣSupply == ΣDemand
//   - Strip       — the inverse of Balance, applied to result allocations
//   - LeastCost   — greedy minimum-cost initial basic feasible solution
//   - TotalCost   — Σ allocation⊙cost
//   - IterationRecord — the per-iteration log entry both solvers produce
//
// Both the simplex (MODI) solver and the tabu-search solver build on these
// primitives; see the simplex and tabu packages.
//
// All functions are pure with respect to their inputs: matrices and vectors
// are copied on entry, callers' data is never aliased or mutated.
package problem
