package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrShuffleExhausted is returned when the shuffler fails to draw a usable
// permutation within its attempt budget. Half of all permutations are
// solvable, so hitting this in practice means the RNG is broken.
var ErrShuffleExhausted = errors.New("shuffle attempts exhausted")

// Shuffler produces random boards that are guaranteed solvable and not
// already in the goal layout.
type Shuffler struct {
	rng      *rand.Rand
	attempts int
}

// NewShuffler creates a shuffler. A zero seed means "seed from the clock";
// any other value gives a reproducible sequence, which the tests and the
// analyze tool rely on.
func NewShuffler(seed int64) *Shuffler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Shuffler{
		rng:      rand.New(rand.NewSource(seed)),
		attempts: DefaultShuffleAttempts,
	}
}

// Shuffle draws uniform random permutations of 0..N²−1 until one is both
// solvable and not the goal, then returns it as a board. The expected number
// of draws is about two.
func (s *Shuffler) Shuffle(size int) (*Board, error) {
	if size < MinGridSize || size > MaxGridSize {
		return nil, fmt.Errorf("%w: size must be between %d and %d, got %d", ErrInvalidBoard, MinGridSize, MaxGridSize, size)
	}

	values := make([]int, size*size)
	for i := range values {
		values[i] = i
	}

	for attempt := 0; attempt < s.attempts; attempt++ {
		s.rng.Shuffle(len(values), func(i, j int) {
			values[i], values[j] = values[j], values[i]
		})

		cells := make([][]int, size)
		for r := range cells {
			cells[r] = values[r*size : (r+1)*size]
		}

		board, err := NewBoard(cells)
		if err != nil {
			return nil, err
		}
		if !IsSolvable(board) || board.IsGoal() {
			continue
		}
		return board, nil
	}

	return nil, fmt.Errorf("%w: no solvable non-goal permutation in %d attempts", ErrShuffleExhausted, s.attempts)
}
