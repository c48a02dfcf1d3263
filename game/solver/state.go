package solver

import (
	"container/heap"

	"github.com/slidegame/npuzzle/game/engine"
)

// State is a node in the A* search tree. It owns an independent copy of a
// board plus the path cost to reach it, the Manhattan heuristic computed
// once at construction, and a back-reference to its parent for path
// reconstruction. Two states with identical tile layouts are the same
// search state regardless of the path taken, so identity is the board key.
type State struct {
	board  *engine.Board
	key    string
	g      int // moves from the initial state
	h      int // Manhattan distance to the goal
	parent *State
	index  int // heap bookkeeping
}

func newState(board *engine.Board, g int, parent *State) *State {
	return &State{
		board:  board,
		key:    board.Key(),
		g:      g,
		h:      engine.ManhattanSum(board),
		parent: parent,
	}
}

// f is the A* priority: path cost plus heuristic.
func (s *State) f() int {
	return s.g + s.h
}

// neighbors generates up to four successor states, one per legal blank
// swap. Each successor deep-copies the board before mutating it, so nodes
// never alias.
func (s *State) neighbors() []*State {
	blank := s.board.BlankPos()
	positions := s.board.NeighborsOf(blank.Row, blank.Col)
	out := make([]*State, 0, len(positions))
	for _, p := range positions {
		next := s.board.Clone()
		if err := next.ApplyMove(p.Row, p.Col); err != nil {
			// NeighborsOf only yields slidable tiles; a failure here is a
			// board invariant violation.
			panic("solver: neighbor generation produced an illegal move: " + err.Error())
		}
		out = append(out, newState(next, s.g+1, s))
	}
	return out
}

// frontier is the A* open set: a min-heap ordered by f = g + h. Ties break
// deterministically — lower heuristic first, then the canonical board key —
// so a given board always yields the same optimal path across runs.
type frontier []*State

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	fi, fj := f[i].f(), f[j].f()
	if fi != fj {
		return fi < fj
	}
	if f[i].h != f[j].h {
		return f[i].h < f[j].h
	}
	return f[i].key < f[j].key
}

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier) Push(x any) {
	s := x.(*State)
	s.index = len(*f)
	*f = append(*f, s)
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	s.index = -1
	*f = old[:n-1]
	return s
}

var _ heap.Interface = (*frontier)(nil)
