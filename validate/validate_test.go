package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpfile.Close()
	return tmpfile.Name()
}

func TestValidateConfig_ValidConfig(t *testing.T) {
	validConfig := `{
		"name": "Test Mini",
		"description": "Test configuration",
		"grid_size": 3,
		"seed": 11,
		"shuffle_attempts": 100,
		"max_expansions": 200000,
		"messages": {
			"welcome": "Welcome!",
			"shuffled": "Shuffled!",
			"solved": "Solved!",
			"illegal_move": "No.",
			"solve_queued": "Queued.",
			"already_solved": "Done already."
		}
	}`

	path := writeTempConfig(t, validConfig)

	result := validateConfig(path)
	if !result.Valid {
		t.Errorf("Expected valid config, but got errors: %v", result.Errors)
	}

	if result.File != filepath.Base(path) {
		t.Errorf("Expected file name %s, got %s", filepath.Base(path), result.File)
	}

	// The feasibility check should report a solved sample shuffle
	found := false
	for _, info := range result.Errors {
		if strings.Contains(info, "Feasibility") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected feasibility info in results: %v", result.Errors)
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{"name": "test", invalid json}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid result for malformed JSON")
	}

	if len(result.Errors) == 0 || !strings.Contains(result.Errors[0], "Invalid JSON") {
		t.Errorf("Expected JSON error, got: %v", result.Errors)
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig(filepath.Join(t.TempDir(), "missing.json"))
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
}

func TestValidateConfig_GridSizeOutOfBounds(t *testing.T) {
	config := `{
		"name": "Huge",
		"description": "Too big",
		"grid_size": 9,
		"messages": {
			"welcome": "w",
			"shuffled": "s",
			"solved": "v"
		}
	}`

	result := validateConfig(writeTempConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid result for oversized grid")
	}

	found := false
	for _, e := range result.Errors {
		if strings.Contains(e, "grid_size") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected grid_size error, got: %v", result.Errors)
	}
}

func TestValidateConfig_MissingMessages(t *testing.T) {
	config := `{
		"name": "Quiet",
		"description": "No messages",
		"grid_size": 3,
		"messages": {}
	}`

	result := validateConfig(writeTempConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid result for missing messages")
	}

	missing := 0
	for _, e := range result.Errors {
		if strings.Contains(e, "Missing required message") {
			missing++
		}
	}
	if missing != 3 {
		t.Errorf("Expected 3 missing message errors, got %d: %v", missing, result.Errors)
	}
}

func TestValidateConfig_NegativeBudgets(t *testing.T) {
	config := `{
		"name": "Negative",
		"description": "Bad budgets",
		"grid_size": 3,
		"shuffle_attempts": -1,
		"max_expansions": -5,
		"messages": {
			"welcome": "w",
			"shuffled": "s",
			"solved": "v"
		}
	}`

	result := validateConfig(writeTempConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid result for negative budgets")
	}
}

func TestValidateFeasibility_SolvesSmallGrid(t *testing.T) {
	config := &Config{
		Name:        "Pocket",
		Description: "2x2",
		GridSize:    2,
		Seed:        3,
	}

	result := validateFeasibility(config)
	if !result.Valid {
		t.Fatalf("Expected feasible config, got: %v", result.Errors)
	}
}

func TestValidateFeasibility_SkipsLargeGrid(t *testing.T) {
	config := &Config{
		Name:            "Big",
		Description:     "5x5",
		GridSize:        5,
		Seed:            3,
		ShuffleAttempts: 100,
	}

	result := validateFeasibility(config)
	if !result.Valid {
		t.Fatalf("Expected feasible config, got: %v", result.Errors)
	}

	found := false
	for _, info := range result.Errors {
		if strings.Contains(info, "solve check skipped") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected skip notice for 5x5 grid, got: %v", result.Errors)
	}
}
