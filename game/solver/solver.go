package solver

import (
	"container/heap"
	"errors"

	"github.com/slidegame/npuzzle/game/engine"
)

var (
	// ErrUnsolvable is returned when the frontier empties without reaching
	// the goal. A board accepted by engine.IsSolvable never triggers this;
	// seeing it for a shuffled board is a defect signal, not a normal
	// outcome.
	ErrUnsolvable = errors.New("puzzle is unsolvable")

	// ErrExpansionLimit is returned when a caller-imposed expansion budget
	// runs out before the goal is found.
	ErrExpansionLimit = errors.New("expansion limit exceeded")
)

// Path is an ordered sequence of board snapshots from the state after the
// first move to the goal state. It is immutable once produced.
type Path []*engine.Board

// Result carries a solution path together with search statistics.
type Result struct {
	Path     Path
	Expanded int
}

// Solve computes an optimal move sequence from the given board to the goal
// using A* with the Manhattan-distance heuristic.
//
// Solvability is the caller's responsibility: the search does not re-verify
// it, and a genuinely unsolvable board makes it exhaust the full reachable
// state space before reporting ErrUnsolvable. Boards produced by the
// shuffler are always solvable.
func Solve(board *engine.Board) (Path, error) {
	result, err := Run(board, 0)
	if err != nil {
		return nil, err
	}
	return result.Path, nil
}

// AsSolveFunc adapts Solve to the engine's injection point.
func AsSolveFunc() engine.SolveFunc {
	return func(b *engine.Board) ([]*engine.Board, error) {
		return Solve(b)
	}
}

// Run is Solve with an expansion budget; maxExpand == 0 means unlimited.
// The analyze tool uses the budget to keep pathological 4×4 instances from
// running away.
func Run(board *engine.Board, maxExpand int) (*Result, error) {
	if board == nil {
		return nil, errors.New("solver: nil board")
	}

	// Early exit: nothing to do.
	if board.IsGoal() {
		return &Result{Path: Path{}}, nil
	}

	open := &frontier{}
	heap.Init(open)
	heap.Push(open, newState(board.Clone(), 0, nil))

	// Closed set of expanded layouts, keyed by board value. Manhattan
	// distance is consistent, so the first expansion of a state is already
	// optimal and re-expansion is never needed.
	closed := make(map[string]bool)
	expanded := 0

	for open.Len() > 0 {
		current := heap.Pop(open).(*State)

		if current.board.IsGoal() {
			return &Result{Path: reconstruct(current), Expanded: expanded}, nil
		}

		if closed[current.key] {
			continue
		}
		closed[current.key] = true
		expanded++
		if maxExpand > 0 && expanded > maxExpand {
			return nil, ErrExpansionLimit
		}

		for _, next := range current.neighbors() {
			if closed[next.key] {
				continue
			}
			heap.Push(open, next)
		}
	}

	return nil, ErrUnsolvable
}

// reconstruct walks parent links from the goal back to the root and
// reverses, yielding the snapshots after each move. The root itself is
// excluded: the caller already holds the initial board.
func reconstruct(goal *State) Path {
	path := make(Path, 0, goal.g)
	for s := goal; s.parent != nil; s = s.parent {
		path = append(path, s.board)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
