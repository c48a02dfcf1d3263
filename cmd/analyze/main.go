// Command analyze prints quick, human-readable difficulty statistics for the
// configuration files in the project's configs directory. For each config it
// runs a batch of seeded shuffles through the optimal solver and summarizes
// solution lengths and search effort, which is how new configs get their
// expansion budgets tuned.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/slidegame/npuzzle/game/config"
	"github.com/slidegame/npuzzle/game/engine"
	"github.com/slidegame/npuzzle/game/solver"
)

// solveGridLimit bounds the per-shuffle optimal solve; shuffled boards above
// this size routinely need millions of expansions.
const solveGridLimit = 4

// batchStats aggregates solver results over a batch of shuffles.
type batchStats struct {
	Runs          int
	Solved        int
	Failed        int
	MinPath       int
	MaxPath       int
	TotalPath     int
	TotalExpanded int
}

func main() {
	cmd := &cli.Command{
		Name:  "analyze",
		Usage: "measure shuffle difficulty for puzzle configurations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "configs",
				Value: "configs",
				Usage: "directory containing configuration JSON files",
			},
			&cli.IntFlag{
				Name:  "runs",
				Value: 20,
				Usage: "number of seeded shuffles to solve per config",
			},
			&cli.IntFlag{
				Name:  "seed",
				Value: 1,
				Usage: "base RNG seed; run i uses seed+i",
			},
			&cli.IntFlag{
				Name:  "budget",
				Value: 0,
				Usage: "override expansion budget per solve (0 uses the config's)",
			},
		},
		Action: runAnalyze,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func runAnalyze(ctx context.Context, cmd *cli.Command) error {
	configDir := cmd.String("configs")
	runs := int(cmd.Int("runs"))
	baseSeed := int64(cmd.Int("seed"))
	budgetOverride := int(cmd.Int("budget"))

	if runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", runs)
	}

	manager, err := config.NewManager(configDir)
	if err != nil {
		return fmt.Errorf("failed to open config directory: %w", err)
	}

	infos, err := manager.ListConfigs()
	if err != nil {
		return fmt.Errorf("failed to list configs: %w", err)
	}
	if len(infos) == 0 {
		return fmt.Errorf("no configuration files found in %s", configDir)
	}

	for _, info := range infos {
		gameConfig, err := manager.LoadConfig(info.ConfigID)
		if err != nil {
			fmt.Printf("\n=== %s ===\nskipped: %v\n", info.Filename, err)
			continue
		}

		fmt.Printf("\n=== Analyzing %s ===\n", info.Filename)
		fmt.Printf("Name: %s\n", gameConfig.Name)
		fmt.Printf("Grid: %dx%d\n", gameConfig.GridSize, gameConfig.GridSize)

		if gameConfig.GridSize > solveGridLimit {
			fmt.Printf("Solve skipped: %dx%d boards exceed the optimal-solve limit\n",
				gameConfig.GridSize, gameConfig.GridSize)
			continue
		}

		budget := gameConfig.MaxExpansions
		if budgetOverride > 0 {
			budget = budgetOverride
		}

		stats := analyzeBatch(gameConfig.GridSize, runs, baseSeed, budget)
		printStats(stats, budget)
	}

	return nil
}

// analyzeBatch shuffles and optimally solves a batch of boards, one seed per
// run so results are reproducible.
func analyzeBatch(size, runs int, baseSeed int64, budget int) *batchStats {
	stats := &batchStats{Runs: runs}

	for i := 0; i < runs; i++ {
		shuffler := engine.NewShuffler(baseSeed + int64(i))
		board, err := shuffler.Shuffle(size)
		if err != nil {
			stats.Failed++
			continue
		}

		res, err := solver.Run(board, budget)
		if err != nil {
			stats.Failed++
			continue
		}

		length := len(res.Path)
		if stats.Solved == 0 || length < stats.MinPath {
			stats.MinPath = length
		}
		if length > stats.MaxPath {
			stats.MaxPath = length
		}
		stats.Solved++
		stats.TotalPath += length
		stats.TotalExpanded += res.Expanded
	}

	return stats
}

func printStats(stats *batchStats, budget int) {
	fmt.Printf("Shuffles solved: %d/%d\n", stats.Solved, stats.Runs)
	if stats.Failed > 0 {
		fmt.Printf("⚠️  %d shuffles failed or exceeded the budget (%d expansions)\n", stats.Failed, budget)
	}
	if stats.Solved == 0 {
		return
	}

	fmt.Printf("Optimal path length: min=%d avg=%.1f max=%d\n",
		stats.MinPath, float64(stats.TotalPath)/float64(stats.Solved), stats.MaxPath)
	fmt.Printf("Search effort: avg %.0f expansions per solve\n",
		float64(stats.TotalExpanded)/float64(stats.Solved))
}
