package engine

// Blank is the cell value that marks the empty slot on the board.
const Blank = 0

const (
	// Validation constants
	MinGridSize            = 2
	MaxGridSize            = 6
	DefaultGridSize        = 4
	DefaultShuffleAttempts = 1000
	WebSocketBufferSize    = 256
)

// Position identifies a cell by row and column, both 0-based.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// GameConfig represents the puzzle configuration from JSON
type GameConfig struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	GridSize        int    `json:"grid_size"`
	Seed            int64  `json:"seed"`
	ShuffleAttempts int    `json:"shuffle_attempts"`
	MaxExpansions   int    `json:"max_expansions"`
	Messages        struct {
		Welcome       string `json:"welcome"`
		Shuffled      string `json:"shuffled"`
		Solved        string `json:"solved"`
		IllegalMove   string `json:"illegal_move"`
		SolveQueued   string `json:"solve_queued"`
		AlreadySolved string `json:"already_solved"`
	} `json:"messages"`
}

// GameState is a read-only snapshot of a puzzle session, safe to hand to
// transports. It never aliases the engine's live board.
type GameState struct {
	Size           int      `json:"size"`
	Cells          [][]int  `json:"cells"`
	Blank          Position `json:"blank"`
	Moves          int      `json:"moves"`
	Solved         bool     `json:"solved"`
	Replaying      bool     `json:"replaying"`
	StepsRemaining int      `json:"steps_remaining"`
	ElapsedSeconds int      `json:"elapsed_seconds"`
	ConfigName     string   `json:"config_name"`
	Message        string   `json:"message,omitempty"`
	BoardLines     []string `json:"board_lines,omitempty"`
}

// MoveHistoryEntry represents a single move in the session history
type MoveHistoryEntry struct {
	Action     string   `json:"action"` // "move", "auto", "shuffle"
	Tile       int      `json:"tile"`
	From       Position `json:"from"`
	To         Position `json:"to"`
	Timestamp  int64    `json:"timestamp"`
	Success    bool     `json:"success"`
	MoveNumber int      `json:"move_number"`
}
