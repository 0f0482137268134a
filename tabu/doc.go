// Package tabu solves the transportation problem heuristically with Tabu
// Search: a neighborhood search over allocation matrices guarded by a
// short-term memory of recent moves.
//
// Each iteration generates a batch of candidate allocations by perturbing
// the current one (value swaps between random cell pairs by default),
// discards candidates whose move fingerprint sits in the tabu list, walks
// to the cheapest admissible candidate, and remembers the move. When every
// candidate is tabu the first one is accepted anyway - the override rule
// that keeps the search from deadlocking.
//
// Unlike the exact solver in package simplex, the driver runs exactly
// Options.MaxIter iterations with no early-optimality stop, and the best
// solution seen anywhere along the walk is what it returns.
//
// Determinism: all randomness flows from Options.Seed through an injected
// generator (seed 0 selects a fixed default stream); identical seeds yield
// identical trajectories. Per-iteration substreams are derived with a
// SplitMix64-style mix so candidate k of iteration t does not depend on
// how many draws earlier iterations consumed.
package tabu
