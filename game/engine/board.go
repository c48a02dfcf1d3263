package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrInvalidBoard = errors.New("invalid board")
)

// Board is the raw N×N grid of tile values plus the position of the blank.
// It is pure data with adjacency queries; counters, replay state, and
// everything else session-related lives in PuzzleEngine.
//
// Board is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
type Board struct {
	size  int
	cells [][]int
	blank Position
}

// NewGoalBoard creates a solved board of the given size: values 1..N²−1 in
// row-major order with the blank in the bottom-right corner.
func NewGoalBoard(size int) (*Board, error) {
	if size < MinGridSize || size > MaxGridSize {
		return nil, fmt.Errorf("%w: size must be between %d and %d, got %d", ErrInvalidBoard, MinGridSize, MaxGridSize, size)
	}

	cells := make([][]int, size)
	value := 1
	for r := range cells {
		cells[r] = make([]int, size)
		for c := range cells[r] {
			cells[r][c] = value
			value++
		}
	}
	cells[size-1][size-1] = Blank

	return &Board{
		size:  size,
		cells: cells,
		blank: Position{Row: size - 1, Col: size - 1},
	}, nil
}

// NewBoard creates a board from explicit cell values. The grid must be
// square and contain each of 0..N²−1 exactly once; anything else fails with
// ErrInvalidBoard rather than producing a board in an impossible state.
func NewBoard(cells [][]int) (*Board, error) {
	size := len(cells)
	if size < MinGridSize || size > MaxGridSize {
		return nil, fmt.Errorf("%w: size must be between %d and %d, got %d", ErrInvalidBoard, MinGridSize, MaxGridSize, size)
	}

	seen := make([]bool, size*size)
	blank := Position{Row: -1, Col: -1}
	copied := make([][]int, size)

	for r, row := range cells {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, r, len(row), size)
		}
		copied[r] = make([]int, size)
		for c, v := range row {
			if v < 0 || v >= size*size {
				return nil, fmt.Errorf("%w: value %d at (%d,%d) out of range", ErrInvalidBoard, v, r, c)
			}
			if seen[v] {
				return nil, fmt.Errorf("%w: duplicate value %d at (%d,%d)", ErrInvalidBoard, v, r, c)
			}
			seen[v] = true
			copied[r][c] = v
			if v == Blank {
				blank = Position{Row: r, Col: c}
			}
		}
	}

	// The value-set check above guarantees exactly one zero, so blank is set.
	return &Board{size: size, cells: copied, blank: blank}, nil
}

// Size returns the grid dimension N.
func (b *Board) Size() int {
	return b.size
}

// Tile returns the value at (row, col). The caller is responsible for
// passing in-bounds coordinates.
func (b *Board) Tile(row, col int) int {
	return b.cells[row][col]
}

// Blank returns the position of the empty slot.
func (b *Board) BlankPos() Position {
	return b.blank
}

// Cells returns a deep copy of the grid contents.
func (b *Board) Cells() [][]int {
	out := make([][]int, b.size)
	for r := range b.cells {
		out[r] = make([]int, b.size)
		copy(out[r], b.cells[r])
	}
	return out
}

// Clone returns an independent copy of the board. Search nodes branch on
// clones so that no two nodes ever alias the same grid.
func (b *Board) Clone() *Board {
	return &Board{size: b.size, cells: b.Cells(), blank: b.blank}
}

// InBounds reports whether (row, col) lies inside the grid.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// NeighborsOf returns the up-to-four orthogonally adjacent positions of
// (row, col), filtered to the grid bounds.
func (b *Board) NeighborsOf(row, col int) []Position {
	deltas := [4]Position{{Row: -1, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 1}}
	out := make([]Position, 0, 4)
	for _, d := range deltas {
		nr, nc := row+d.Row, col+d.Col
		if b.InBounds(nr, nc) {
			out = append(out, Position{Row: nr, Col: nc})
		}
	}
	return out
}

// CanSlide reports whether the tile at (row, col) is adjacent to the blank
// and can therefore slide into it.
func (b *Board) CanSlide(row, col int) bool {
	if !b.InBounds(row, col) {
		return false
	}
	for _, p := range b.NeighborsOf(row, col) {
		if p == b.blank {
			return true
		}
	}
	return false
}

// ApplyMove slides the tile at (row, col) into the blank slot. It requires
// CanSlide(row, col); otherwise the board is left untouched and
// ErrIllegalMove is returned.
func (b *Board) ApplyMove(row, col int) error {
	if !b.CanSlide(row, col) {
		return fmt.Errorf("%w: tile at (%d,%d) is not adjacent to the blank", ErrIllegalMove, row, col)
	}

	br, bc := b.blank.Row, b.blank.Col
	b.cells[br][bc], b.cells[row][col] = b.cells[row][col], b.cells[br][bc]
	b.blank = Position{Row: row, Col: col}

	if b.cells[row][col] != Blank {
		// Losing the unique blank is a programming error, not a game state.
		panic(fmt.Sprintf("engine: board lost its blank after move (%d,%d)", row, col))
	}
	return nil
}

// IsGoal reports whether the board is in the canonical solved layout.
func (b *Board) IsGoal() bool {
	want := 1
	last := b.size*b.size - 1
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if want == last+1 {
				return b.cells[r][c] == Blank
			}
			if b.cells[r][c] != want {
				return false
			}
			want++
		}
	}
	return true
}

// Key returns a canonical serialization of the grid. Two boards with the
// same tile layout produce the same key regardless of how they were reached,
// which is what the solver's visited set relies on.
func (b *Board) Key() string {
	var sb strings.Builder
	sb.Grow(b.size * b.size * 3)
	for r, row := range b.cells {
		if r > 0 {
			sb.WriteByte('|')
		}
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%d", v)
		}
	}
	return sb.String()
}

// Equal reports whether two boards hold identical tile layouts.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}
