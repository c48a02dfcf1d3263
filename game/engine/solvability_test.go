package engine

import (
	"testing"
)

func TestInversions(t *testing.T) {
	// Flattened non-zero values 1,2,3,4,6,7,5,8 contain the inverted pairs
	// (6,5) and (7,5).
	b := mustBoard(t, [][]int{{1, 2, 3}, {4, 0, 6}, {7, 5, 8}})
	if got := Inversions(b); got != 2 {
		t.Errorf("expected 2 inversions, got %d", got)
	}

	// Swapping 1 and 2 in the goal creates exactly one inversion.
	swapped := mustBoard(t, [][]int{{2, 1, 3}, {4, 5, 6}, {7, 8, 0}})
	if got := Inversions(swapped); got != 1 {
		t.Errorf("expected 1 inversion, got %d", got)
	}

	goal, _ := NewGoalBoard(3)
	if got := Inversions(goal); got != 0 {
		t.Errorf("goal board should have 0 inversions, got %d", got)
	}
}

func TestIsSolvableOddGrid(t *testing.T) {
	// One inversion on an odd-width grid: unsolvable.
	unsolvable := mustBoard(t, [][]int{{2, 1, 3}, {4, 5, 6}, {7, 8, 0}})
	if IsSolvable(unsolvable) {
		t.Error("board with odd inversion count on 3x3 must be unsolvable")
	}

	// Two slides from the goal (8 right, 5 down): even inversions, solvable.
	solvable := mustBoard(t, [][]int{{1, 2, 3}, {4, 0, 6}, {7, 5, 8}})
	if !IsSolvable(solvable) {
		t.Error("board two slides from goal must be solvable")
	}

	oneAway := mustBoard(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}})
	if !IsSolvable(oneAway) {
		t.Error("one slide from goal must be solvable")
	}

	goal, _ := NewGoalBoard(3)
	if !IsSolvable(goal) {
		t.Error("goal board must be solvable")
	}
}

func TestIsSolvableEvenGrid(t *testing.T) {
	goal, _ := NewGoalBoard(4)
	if !IsSolvable(goal) {
		t.Error("4x4 goal board must be solvable")
	}

	// Swapping two adjacent tiles (not the blank) flips parity without
	// moving the blank row: unsolvable.
	cells := goal.Cells()
	cells[0][0], cells[0][1] = cells[0][1], cells[0][0]
	swapped := mustBoard(t, cells)
	if IsSolvable(swapped) {
		t.Error("single tile transposition must be unsolvable")
	}
}

// bfsReachable enumerates every layout reachable from the goal by legal
// slides. Feasible for 2x2 (12 states) and 3x3 (181440 states).
func bfsReachable(t *testing.T, size int) map[string]bool {
	t.Helper()
	goal, err := NewGoalBoard(size)
	if err != nil {
		t.Fatalf("NewGoalBoard failed: %v", err)
	}

	visited := map[string]bool{goal.Key(): true}
	frontier := []*Board{goal}
	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]

		blank := current.BlankPos()
		for _, p := range current.NeighborsOf(blank.Row, blank.Col) {
			next := current.Clone()
			if err := next.ApplyMove(p.Row, p.Col); err != nil {
				t.Fatalf("neighbor move failed: %v", err)
			}
			if !visited[next.Key()] {
				visited[next.Key()] = true
				frontier = append(frontier, next)
			}
		}
	}
	return visited
}

func TestParityMatchesReachability2x2(t *testing.T) {
	reachable := bfsReachable(t, 2)

	// Exactly half of the 24 permutations of a 2x2 grid are reachable.
	if len(reachable) != 12 {
		t.Fatalf("expected 12 reachable 2x2 states, got %d", len(reachable))
	}

	// Every permutation must agree with the parity formula.
	perm := []int{0, 1, 2, 3}
	var walk func(k int)
	checked := 0
	walk = func(k int) {
		if k == len(perm) {
			b := mustBoard(t, [][]int{{perm[0], perm[1]}, {perm[2], perm[3]}})
			if IsSolvable(b) != reachable[b.Key()] {
				t.Errorf("parity formula disagrees with BFS for %v", perm)
			}
			checked++
			return
		}
		for i := k; i < len(perm); i++ {
			perm[k], perm[i] = perm[i], perm[k]
			walk(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	walk(0)

	if checked != 24 {
		t.Fatalf("expected to check 24 permutations, checked %d", checked)
	}
}

func TestParityMatchesReachability3x3(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping exhaustive 3x3 reachability in short mode")
	}

	// BFS from the goal, asserting the parity formula accepts every state
	// actually reachable by legal slides.
	goal, _ := NewGoalBoard(3)
	visited := map[string]bool{goal.Key(): true}
	frontier := []*Board{goal}
	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]

		if !IsSolvable(current) {
			t.Fatalf("reachable state rejected by parity formula: %s", current.Key())
		}

		blank := current.BlankPos()
		for _, p := range current.NeighborsOf(blank.Row, blank.Col) {
			next := current.Clone()
			if err := next.ApplyMove(p.Row, p.Col); err != nil {
				t.Fatalf("neighbor move failed: %v", err)
			}
			if !visited[next.Key()] {
				visited[next.Key()] = true
				frontier = append(frontier, next)
			}
		}
	}

	// 9!/2 layouts are reachable; the formula accepting all of them while
	// half the permutation space stays unvisited pins down both directions.
	if len(visited) != 181440 {
		t.Fatalf("expected 181440 reachable 3x3 states, got %d", len(visited))
	}
}
