// Package engine provides the core logic for the sliding-tile puzzle.
//
// The engine package implements:
//   - Board representation with adjacency queries and legal-move application
//   - The inversion-parity solvability test
//   - Randomized shuffle generation guaranteed to produce solvable boards
//   - Session orchestration: manual moves, solve requests, and pull-based
//     stepwise replay of a computed solution
//   - Configuration validation
//
// Core Types:
//
// The Engine interface defines the contract for puzzle operations,
// implemented by PuzzleEngine. Board is the pure grid data; GameState is the
// read-only snapshot handed to transports. GameConfig defines grid size,
// shuffle behavior, and user-facing messages loaded from JSON files.
//
// Usage:
//
//	config := engine.DefaultGameConfig()
//	eng, err := engine.NewEngine(config, solver.AsSolveFunc())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Slide the tile at row 2, column 3 into the blank
//	if err := eng.RequestMove(2, 3); err != nil {
//		// not adjacent to the blank, or a replay is running
//	}
//
//	// Queue an optimal solution and play it back one step at a time
//	steps, err := eng.RequestSolve()
//	for eng.IsReplaying() {
//		eng.StepAutoSolve()
//	}
//
// Game Rules:
//
// An N×N grid holds tiles 1..N²−1 plus one blank. A legal move slides a tile
// orthogonally adjacent to the blank into the blank's slot. The puzzle is
// solved when tiles read 1..N²−1 in row-major order with the blank last.
// Exactly half of all permutations can reach that layout; the shuffler only
// ever hands out boards from the solvable half.
package engine
