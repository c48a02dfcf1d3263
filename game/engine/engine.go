package engine

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrReplayInProgress rejects manual moves while a queued solution is
	// being stepped through. Wraps ErrIllegalMove so callers can treat both
	// as the same recoverable condition.
	ErrReplayInProgress = fmt.Errorf("%w: solution replay in progress", ErrIllegalMove)

	// ErrNoSolver is returned by RequestSolve on an engine built without a
	// solve function.
	ErrNoSolver = errors.New("no solver configured")
)

// SolveFunc computes an optimal move sequence for a board, returned as the
// ordered snapshots from the state after the first move to the goal state.
// The engine injects its board as an independent copy, so implementations
// may consume it freely.
type SolveFunc func(*Board) ([]*Board, error)

// Engine provides the main interface for puzzle operations
type Engine interface {
	// State access
	Snapshot() *GameState
	Board() *Board
	IsSolved() bool
	IsReplaying() bool
	MoveCount() int
	Elapsed() time.Duration

	// Play operations
	RequestMove(row, col int) error
	RequestSolve() (int, error)
	StepAutoSolve() (bool, error)
	NewGame() error

	// Configuration and history
	GetConfig() *GameConfig
	GetMoveHistory() []MoveHistoryEntry
}

// PuzzleEngine implements the Engine interface. It owns exactly one board
// and all session counters; nothing else in the process mutates the board.
// The engine itself is not goroutine-safe — the service layer serializes
// access, which also keeps board mutation single-writer while a solution is
// pending or replaying.
type PuzzleEngine struct {
	config   *GameConfig
	board    *Board
	shuffler *Shuffler
	solve    SolveFunc

	moves     int
	startedAt time.Time
	won       bool
	history   []MoveHistoryEntry

	// Pending solution replay. path holds board snapshots from the first
	// move to the goal; pathIndex is the next snapshot to apply.
	path      []*Board
	pathIndex int
}

// NewEngine creates a puzzle engine from a validated configuration. The
// board starts shuffled, matching a fresh interactive game.
func NewEngine(config *GameConfig, solve SolveFunc) (*PuzzleEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	e := &PuzzleEngine{
		config:   config,
		shuffler: NewShuffler(config.Seed),
		solve:    solve,
	}
	e.shuffler.attempts = config.ShuffleAttempts

	if err := e.NewGame(); err != nil {
		return nil, fmt.Errorf("failed to set up initial board: %w", err)
	}
	return e, nil
}

// NewEngineWithBoard creates an engine over an explicit starting board,
// bypassing the shuffler. Used by tests and the analyze tool.
func NewEngineWithBoard(config *GameConfig, board *Board, solve SolveFunc) (*PuzzleEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	if board.Size() != config.GridSize {
		return nil, fmt.Errorf("%w: board size %d does not match config grid_size %d", ErrInvalidBoard, board.Size(), config.GridSize)
	}

	e := &PuzzleEngine{
		config:    config,
		board:     board.Clone(),
		shuffler:  NewShuffler(config.Seed),
		solve:     solve,
		startedAt: time.Now(),
		won:       board.IsGoal(),
	}
	e.shuffler.attempts = config.ShuffleAttempts
	return e, nil
}

// Board returns an independent copy of the current board.
func (e *PuzzleEngine) Board() *Board {
	return e.board.Clone()
}

// IsSolved reports whether the board is in the goal layout.
func (e *PuzzleEngine) IsSolved() bool {
	return e.won
}

// IsReplaying reports whether a computed solution is queued for stepping.
func (e *PuzzleEngine) IsReplaying() bool {
	return e.path != nil && e.pathIndex < len(e.path)
}

// MoveCount returns the number of accepted moves since the last shuffle.
func (e *PuzzleEngine) MoveCount() int {
	return e.moves
}

// Elapsed returns the time since the last shuffle.
func (e *PuzzleEngine) Elapsed() time.Duration {
	return time.Since(e.startedAt)
}

// GetConfig returns the engine's configuration.
func (e *PuzzleEngine) GetConfig() *GameConfig {
	return e.config
}

// GetMoveHistory returns the cumulative move history.
func (e *PuzzleEngine) GetMoveHistory() []MoveHistoryEntry {
	return e.history
}

// QueuedSteps returns how many auto-solve steps remain to be played.
func (e *PuzzleEngine) QueuedSteps() int {
	if !e.IsReplaying() {
		return 0
	}
	return len(e.path) - e.pathIndex
}

// RequestMove slides the tile at (row, col) into the blank. It is rejected
// while a solution replay is in progress, and when the target is not
// adjacent to the blank. Rejections are recorded in the history.
func (e *PuzzleEngine) RequestMove(row, col int) error {
	if e.IsReplaying() {
		e.recordMove("move", row, col, false)
		return ErrReplayInProgress
	}

	from := Position{Row: row, Col: col}
	if !e.board.InBounds(row, col) || !e.board.CanSlide(row, col) {
		e.recordMove("move", row, col, false)
		return fmt.Errorf("%w: tile at (%d,%d) is not adjacent to the blank", ErrIllegalMove, row, col)
	}

	tile := e.board.Tile(row, col)
	if err := e.board.ApplyMove(row, col); err != nil {
		return err
	}
	e.moves++
	e.won = e.board.IsGoal()
	e.appendHistory(MoveHistoryEntry{
		Action:     "move",
		Tile:       tile,
		From:       from,
		To:         e.board.BlankPos(),
		Timestamp:  time.Now().Unix(),
		Success:    true,
		MoveNumber: e.moves,
	})
	return nil
}

// RequestSolve computes an optimal solution for the current board and
// queues it for stepwise playback. It is idempotent: calling it again while
// a path is already queued, or after the puzzle is solved, changes nothing
// and reports the remaining path length.
//
// Callers get boards from the shuffler, which only emits solvable layouts;
// the solver does not re-verify solvability.
func (e *PuzzleEngine) RequestSolve() (int, error) {
	if e.won {
		return 0, nil
	}
	if e.IsReplaying() {
		return e.QueuedSteps(), nil
	}
	if e.solve == nil {
		return 0, ErrNoSolver
	}

	path, err := e.solve(e.board.Clone())
	if err != nil {
		return 0, fmt.Errorf("solve failed: %w", err)
	}

	e.path = path
	e.pathIndex = 0
	return len(path), nil
}

// StepAutoSolve advances exactly one queued move. The external scheduler
// calls it at its own pacing; the engine owns no timer. It reports whether
// a step was applied.
func (e *PuzzleEngine) StepAutoSolve() (bool, error) {
	if !e.IsReplaying() {
		return false, nil
	}

	next := e.path[e.pathIndex]
	prevBlank := e.board.BlankPos()

	e.board = next.Clone()
	e.pathIndex++
	e.moves++
	e.won = e.board.IsGoal()
	e.appendHistory(MoveHistoryEntry{
		Action:     "auto",
		Tile:       e.board.Tile(prevBlank.Row, prevBlank.Col),
		From:       e.board.BlankPos(),
		To:         prevBlank,
		Timestamp:  time.Now().Unix(),
		Success:    true,
		MoveNumber: e.moves,
	})

	if e.pathIndex >= len(e.path) {
		e.path = nil
		e.pathIndex = 0
	}
	return true, nil
}

// NewGame replaces the board with a fresh solvable shuffle and resets the
// session counters. Any queued solution is discarded.
func (e *PuzzleEngine) NewGame() error {
	board, err := e.shuffler.Shuffle(e.config.GridSize)
	if err != nil {
		return err
	}

	e.board = board
	e.moves = 0
	e.won = false
	e.path = nil
	e.pathIndex = 0
	e.startedAt = time.Now()
	e.appendHistory(MoveHistoryEntry{
		Action:    "shuffle",
		Timestamp: time.Now().Unix(),
		Success:   true,
	})
	return nil
}

// Snapshot builds a read-only state snapshot for transports.
func (e *PuzzleEngine) Snapshot() *GameState {
	return &GameState{
		Size:           e.board.Size(),
		Cells:          e.board.Cells(),
		Blank:          e.board.BlankPos(),
		Moves:          e.moves,
		Solved:         e.won,
		Replaying:      e.IsReplaying(),
		StepsRemaining: e.QueuedSteps(),
		ElapsedSeconds: int(e.Elapsed().Seconds()),
		ConfigName:     e.config.Name,
	}
}

func (e *PuzzleEngine) recordMove(action string, row, col int, success bool) {
	tile := 0
	if e.board.InBounds(row, col) {
		tile = e.board.Tile(row, col)
	}
	e.appendHistory(MoveHistoryEntry{
		Action:    action,
		Tile:      tile,
		From:      Position{Row: row, Col: col},
		Timestamp: time.Now().Unix(),
		Success:   success,
	})
}

func (e *PuzzleEngine) appendHistory(entry MoveHistoryEntry) {
	e.history = append(e.history, entry)
}
