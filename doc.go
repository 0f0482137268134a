// Package transport solves the classical transportation problem: the
// minimum-cost distribution of goods from supply nodes to demand nodes
// under capacity-equality constraints.
//
// 🚚 What is transport?
//
//	A small, deterministic solver library built around two independent
//	methods that share one problem model:
//		• simplex/ — exact MODI (modified distribution) / stepping-stone
//		  method: dual potentials, entering-variable scan, closed-loop
//		  search, ±θ pivots
//		• tabu/    — Tabu Search metaheuristic: random swap neighborhoods,
//		  bounded short-term memory, deterministic seeded walks
//		• problem/ — shared model: validation, dummy-row/column balancing,
//		  greedy least-cost initial solutions, iteration logs
//
// ✨ Why choose transport?
//
//   - Reproducible – every random draw flows from an injected seed;
//     identical inputs yield identical iteration logs
//   - Honest about degeneracy – disconnected bases, stalled pivots, and
//     all-tabu batches are handled as expected states, not errors
//   - Comparable – both solvers emit the same log-record shape, so their
//     cost trajectories can be plotted side by side
//
// Unbalanced instances (ΣSupply ≠ ΣDemand) are accepted: a zero-cost dummy
// source or sink absorbs the difference internally and results come back
// in the shape the caller submitted.
//
// The cmd/transport CLI runs a set of built-in benchmark scenarios through
// both solvers.
package transport
