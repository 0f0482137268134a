// Package simplex - closed-loop (stepping-stone cycle) search.
//
// The basic cells plus the entering cell form an implicit graph: two cells
// are adjacent iff they share a row or a column. A stepping-stone cycle is
// a closed walk through that graph, starting and ending at the entering
// cell, in which consecutive moves strictly alternate between row moves
// and column moves. The alternation constraint is enforced explicitly (an
// axis flag threaded through the search); without it the search can close
// degenerate walks that are not valid pivot loops.
//
// The adjacency is materialized once per search as two index tables
// (row → basic columns, column → basic rows) and the walk is found by a
// depth-first search with an explicit visited set.
package simplex

import "gonum.org/v1/gonum/mat"

// axis of the previous move in the walk.
const (
	axisNone = iota // at the start cell, both axes are open
	axisRow         // previous move stayed in a row
	axisCol         // previous move stayed in a column
)

// findCycle searches for a stepping-stone cycle through the basic cells of
// alloc (entries > eps) plus start.
//
// The returned slice holds the distinct cells of the loop in walk order,
// beginning with start; its length is even and ≥ 4. Cells at odd positions
// are the −θ cells of the subsequent pivot. ok == false means no cycle
// exists - a degenerate or malformed basis the driver must treat as a stop
// condition, not a retryable error.
//
// Complexity: O(m·n) to index the basis; the DFS visits each basic cell at
// most once per axis state in ordinary bases.
func findCycle(alloc *mat.Dense, start cell, eps float64) (cycle []cell, ok bool) {
	m, n := alloc.Dims()

	// Index the basis: rowCols[i] lists basic columns in row i, colRows[j]
	// lists basic rows in column j. The entering cell joins provisionally.
	rowCols := make([][]int, m)
	colRows := make([][]int, n)

	var i, j int
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			if alloc.At(i, j) > eps || (i == start.i && j == start.j) {
				rowCols[i] = append(rowCols[i], j)
				colRows[j] = append(colRows[j], i)
			}
		}
	}

	var (
		path    = []cell{start}
		visited = map[cell]bool{start: true}
		dfs     func(cur cell, lastAxis int) bool
	)

	// step attempts to extend the walk to next; closing back into start is
	// legal once the walk has even length ≥ 4 (the closing move's axis
	// already differs from lastAxis by construction).
	step := func(next cell, nextAxis int) bool {
		if next == path[0] {
			return len(path) >= 4 && len(path)%2 == 0
		}
		if visited[next] {
			return false
		}
		visited[next] = true
		path = append(path, next)
		if dfs(next, nextAxis) {
			return true
		}
		path = path[:len(path)-1]
		delete(visited, next)

		return false
	}

	dfs = func(cur cell, lastAxis int) bool {
		var k int

		// Row moves: only when the previous move was not a row move.
		if lastAxis != axisRow {
			for _, k = range rowCols[cur.i] {
				if k == cur.j {
					continue
				}
				if step(cell{cur.i, k}, axisRow) {
					return true
				}
			}
		}
		// Column moves: only when the previous move was not a column move.
		if lastAxis != axisCol {
			for _, k = range colRows[cur.j] {
				if k == cur.i {
					continue
				}
				if step(cell{k, cur.j}, axisCol) {
					return true
				}
			}
		}

		return false
	}

	if !dfs(start, axisNone) {
		return nil, false
	}

	return path, true
}
