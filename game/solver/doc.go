// Package solver implements A* search over sliding-tile boards.
//
// The search expands the frontier node with the lowest f = g + h, where g is
// the move count from the initial board and h is the Manhattan-distance
// heuristic. Manhattan distance never overestimates the true remaining cost
// and is consistent, so the first path that pops the goal is optimal in move
// count and expanded states never need revisiting.
//
// Ties on f break by lower h, then by the canonical board serialization,
// making the returned path deterministic for a given input.
//
// Usage:
//
//	path, err := solver.Solve(board)
//	if err != nil {
//		// solver.ErrUnsolvable — should not happen for shuffled boards
//	}
//	for _, snapshot := range path {
//		// apply snapshots in order to replay the solution
//	}
//
// Branching factor is at most 4, but a well-shuffled 4×4 instance can still
// demand a large number of expansions; Run accepts an expansion budget for
// callers that need bounded work.
package solver
