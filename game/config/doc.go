// Package config provides configuration management for the sliding puzzle.
//
// The config package handles:
//   - Loading puzzle configurations from JSON files
//   - Configuration validation and verification
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Puzzle configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - Grid size (2x2 up to 6x6)
//   - Shuffle parameters (seed, attempt cap)
//   - Solver expansion budget
//   - Messages shown for game events
//
// Available Configurations:
//
// The package ships with several grid sizes:
//   - classic: the standard 4x4 fifteen puzzle
//   - mini: a 3x3 eight puzzle
//   - pocket: a 2x2 three puzzle for quick games
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("mini")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Configurations are cached after first load. Use RefreshCache to pick up
// changes made on disk while the process is running.
package config
