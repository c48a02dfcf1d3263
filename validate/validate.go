// Command validate provides a small CLI that validates puzzle configuration
// JSON files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Grid size bounds (2x2 up to 6x6)
//   - Shuffle and solver budgets (non-negative)
//   - Required message keys
//   - Feasibility: a seeded shuffle of the configured grid is solvable and
//     the solver finds an optimal path within the expansion budget
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/slidegame/npuzzle/game/engine"
	"github.com/slidegame/npuzzle/game/solver"
)

// Config mirrors the JSON schema for a puzzle configuration.
type Config struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	GridSize        int               `json:"grid_size"`
	Seed            int64             `json:"seed"`
	ShuffleAttempts int               `json:"shuffle_attempts"`
	MaxExpansions   int               `json:"max_expansions"`
	Messages        map[string]string `json:"messages"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// feasibilityGridLimit bounds the solve check; shuffled 5x5+ boards can
// blow past any reasonable expansion budget.
const feasibilityGridLimit = 4

// validateConfig loads and validates a single configuration JSON file.
// It performs structural checks, message presence, and a shuffle-and-solve
// feasibility run on small grids.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "name is required")
	}

	if config.Description == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "description is required")
	}

	if config.GridSize < engine.MinGridSize || config.GridSize > engine.MaxGridSize {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("grid_size must be between %d and %d, got %d",
			engine.MinGridSize, engine.MaxGridSize, config.GridSize))
	}

	if config.ShuffleAttempts < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("shuffle_attempts must not be negative, got %d", config.ShuffleAttempts))
	}

	if config.MaxExpansions < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("max_expansions must not be negative, got %d", config.MaxExpansions))
	}

	// Validate messages
	requiredMessages := []string{
		"welcome",
		"shuffled",
		"solved",
	}
	for _, msg := range requiredMessages {
		if _, exists := config.Messages[msg]; !exists {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Missing required message: %s", msg))
		}
	}

	// Feasibility validation - shuffle the configured grid and solve it
	if result.Valid {
		feasibility := validateFeasibility(&config)
		if !feasibility.Valid {
			result.Valid = false
		}
		result.Errors = append(result.Errors, feasibility.Errors...)
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid: %dx%d", config.GridSize, config.GridSize))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Shuffle attempts: %d", config.ShuffleAttempts))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Expansion budget: %d", config.MaxExpansions))
	}

	return result
}

// validateFeasibility shuffles the configured grid with a fixed seed and
// runs the solver over the result. Grids larger than feasibilityGridLimit
// are only shuffle-checked; an optimal solve there is too expensive for a
// validation pass.
func validateFeasibility(config *Config) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	seed := config.Seed
	if seed == 0 {
		seed = 1
	}

	shuffler := engine.NewShuffler(seed)
	board, err := shuffler.Shuffle(config.GridSize)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Shuffle failure: %v", err))
		return result
	}

	if !engine.IsSolvable(board) {
		result.Valid = false
		result.Errors = append(result.Errors, "Shuffle produced an unsolvable board")
		return result
	}

	if config.GridSize > feasibilityGridLimit {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Feasibility: shuffle solvable (solve check skipped for %dx%d)",
			config.GridSize, config.GridSize))
		return result
	}

	// A zero budget means unlimited, same as the solver itself.
	budget := config.MaxExpansions

	res, err := solver.Run(board, budget)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Solve failure within budget %d: %v", budget, err))
		return result
	}

	result.Errors = append(result.Errors, fmt.Sprintf("✓ Feasibility: solved sample shuffle in %d moves (%d expansions)",
		len(res.Path), res.Expanded))
	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
