// Package simplex solves the transportation problem exactly with the
// MODI (modified distribution) / stepping-stone method, a primal-simplex
// variant specialized for transportation networks.
//
// Pipeline per iteration:
//
//	dual potentials (u,v) → entering-variable scan → closed-loop search →
//	±θ pivot along the loop
//
// starting from a greedy least-cost basic feasible solution (problem
// package) on a balanced copy of the instance, until no improving entering
// variable exists (Optimal), no closed loop can be found for the entering
// cell (Stalled - a degenerate basis, handled gracefully, never an error),
// or Options.MaxIter pivots have been applied (MaxIterReached).
//
// Use this package when you need the provably optimal distribution plan;
// use package tabu when you want a metaheuristic baseline to compare
// against. Both consume the same problem model and produce the same
// iteration-log shape.
//
// Complexity: each iteration is O(m·n) for potentials and the entering scan
// plus a cycle search that is worst-case exponential in pathological
// degenerate bases but O(m·n) on the sparse basis trees arising in
// practice (a non-degenerate basis has only m+n−1 cells).
package simplex
