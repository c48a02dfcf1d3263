package engine

import (
	"fmt"
)

// ValidateGameConfig validates a puzzle configuration for correctness.
// Configurations loaded from disk go through this before an engine will
// accept them.
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if config.GridSize < MinGridSize || config.GridSize > MaxGridSize {
		return fmt.Errorf("config validation: grid_size must be between %d and %d, got %d", MinGridSize, MaxGridSize, config.GridSize)
	}

	if config.ShuffleAttempts < 0 {
		return fmt.Errorf("config validation: shuffle_attempts must not be negative, got %d", config.ShuffleAttempts)
	}
	if config.ShuffleAttempts == 0 {
		config.ShuffleAttempts = DefaultShuffleAttempts
	}

	if config.MaxExpansions < 0 {
		return fmt.Errorf("config validation: max_expansions must not be negative, got %d", config.MaxExpansions)
	}

	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.Shuffled == "" {
		return fmt.Errorf("config validation: messages.shuffled is required")
	}
	if config.Messages.Solved == "" {
		return fmt.Errorf("config validation: messages.solved is required")
	}

	return nil
}

// DefaultGameConfig returns the built-in classic 4×4 configuration. It is
// used when no config directory entry is requested.
func DefaultGameConfig() *GameConfig {
	config := &GameConfig{
		Name:            "Classic 15-Puzzle",
		Description:     "The classic 4x4 sliding-tile puzzle",
		GridSize:        DefaultGridSize,
		ShuffleAttempts: DefaultShuffleAttempts,
	}
	config.Messages.Welcome = "Welcome! Slide tiles into the blank to restore order."
	config.Messages.Shuffled = "Board shuffled. Good luck!"
	config.Messages.Solved = "Congratulations! Puzzle solved!"
	config.Messages.IllegalMove = "That tile is not next to the blank."
	config.Messages.SolveQueued = "Solution found: %d moves queued."
	config.Messages.AlreadySolved = "The puzzle is already solved."
	return config
}
