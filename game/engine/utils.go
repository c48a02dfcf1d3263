package engine

import (
	"fmt"
	"strings"
)

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	dr := from.Row - to.Row
	if dr < 0 {
		dr = -dr
	}
	dc := from.Col - to.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// GoalPosition returns where a tile value belongs in the solved layout of a
// size×size board. The blank's home is the bottom-right corner.
func GoalPosition(value, size int) Position {
	if value == Blank {
		return Position{Row: size - 1, Col: size - 1}
	}
	return Position{Row: (value - 1) / size, Col: (value - 1) % size}
}

// ManhattanSum is the Manhattan-distance heuristic: the sum over all tiles
// of the distance between each tile's current and goal positions. The blank
// does not contribute, which keeps the heuristic admissible.
func ManhattanSum(b *Board) int {
	sum := 0
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			v := b.cells[r][c]
			if v == Blank {
				continue
			}
			sum += ManhattanDistance(Position{Row: r, Col: c}, GoalPosition(v, b.size))
		}
	}
	return sum
}

// RenderBoard formats a board as fixed-width text rows, with the blank shown
// as a dot. Transports attach this to state snapshots so humans and agents
// can read the grid without parsing the cell matrix.
func RenderBoard(cells [][]int) []string {
	width := 2
	if len(cells) > 3 {
		// Two digits plus padding for 4x4 and up.
		width = 3
	}

	lines := make([]string, 0, len(cells))
	for _, row := range cells {
		var sb strings.Builder
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if v == Blank {
				sb.WriteString(fmt.Sprintf("%*s", width, "."))
			} else {
				sb.WriteString(fmt.Sprintf("%*d", width, v))
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}
