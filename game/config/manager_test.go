package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/slidegame/npuzzle/game/engine"
)

func writeConfigFile(t *testing.T, dir, name string, config *engine.GameConfig) {
	t.Helper()

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".json"), data, 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}

func testConfig(name string, gridSize int) *engine.GameConfig {
	config := engine.DefaultGameConfig()
	config.Name = name
	config.GridSize = gridSize
	return config
}

func TestNewManagerMissingDirectory(t *testing.T) {
	_, err := NewManager(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for missing config directory")
	}
}

func TestNewManagerEmptyDirectoryFallsBackToBuiltin(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	def := m.GetDefault()
	if def == nil {
		t.Fatal("expected a default config")
	}
	if def.GridSize != engine.DefaultGridSize {
		t.Errorf("expected built-in default grid size %d, got %d", engine.DefaultGridSize, def.GridSize)
	}
}

func TestNewManagerPrefersClassic(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "classic", testConfig("Classic", 4))
	writeConfigFile(t, dir, "mini", testConfig("Mini", 3))

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if got := m.GetDefault().Name; got != "Classic" {
		t.Errorf("expected default config Classic, got %q", got)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "mini", testConfig("Mini", 3))

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	config, err := m.LoadConfig("mini")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.GridSize != 3 {
		t.Errorf("expected grid size 3, got %d", config.GridSize)
	}

	// Loading with an explicit .json suffix should work too
	again, err := m.LoadConfig("mini.json")
	if err != nil {
		t.Fatalf("LoadConfig with suffix failed: %v", err)
	}
	if again.Name != config.Name {
		t.Errorf("expected same config, got %q and %q", again.Name, config.Name)
	}
}

func TestLoadConfigNotFound(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if _, err := m.LoadConfig("nope"); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "huge", testConfig("Huge", 99))

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if _, err := m.LoadConfig("huge"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadConfigUsesCache(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "mini", testConfig("Mini", 3))

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if _, err := m.LoadConfig("mini"); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	// Remove the file; the cached copy should still be served
	if err := os.Remove(filepath.Join(dir, "mini.json")); err != nil {
		t.Fatalf("failed to remove config file: %v", err)
	}
	if _, err := m.LoadConfig("mini"); err != nil {
		t.Errorf("expected cached config, got error: %v", err)
	}

	// After a refresh the removal is visible
	if err := m.RefreshCache(); err != nil {
		t.Fatalf("RefreshCache failed: %v", err)
	}
	if _, err := m.LoadConfig("mini"); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound after refresh, got %v", err)
	}
}

func TestListConfigsSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "mini", testConfig("Mini", 3))
	writeConfigFile(t, dir, "broken", testConfig("Broken", 1))
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a config"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	configs, err := m.ListConfigs()
	if err != nil {
		t.Fatalf("ListConfigs failed: %v", err)
	}
	if len(configs) != 1 {
		t.Fatalf("expected 1 config, got %d", len(configs))
	}
	if configs[0].ConfigID != "mini" {
		t.Errorf("expected config ID mini, got %q", configs[0].ConfigID)
	}
	if configs[0].GridSize != 3 {
		t.Errorf("expected grid size 3, got %d", configs[0].GridSize)
	}
}

func TestSetDefault(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "classic", testConfig("Classic", 4))
	writeConfigFile(t, dir, "mini", testConfig("Mini", 3))

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if err := m.SetDefault("mini"); err != nil {
		t.Fatalf("SetDefault failed: %v", err)
	}
	if got := m.GetDefault().Name; got != "Mini" {
		t.Errorf("expected default Mini, got %q", got)
	}

	if err := m.SetDefault("missing"); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestSaveConfig(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if err := m.SaveConfig("pocket", testConfig("Pocket", 2)); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "pocket.json")); err != nil {
		t.Errorf("expected config file on disk: %v", err)
	}

	loaded, err := m.LoadConfig("pocket")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.GridSize != 2 {
		t.Errorf("expected grid size 2, got %d", loaded.GridSize)
	}
}

func TestSaveConfigRejectsInvalid(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if err := m.SaveConfig("bad", testConfig("Bad", 1)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
