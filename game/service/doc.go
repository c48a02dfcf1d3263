// Package service provides the business logic layer for the sliding-tile
// puzzle.
//
// The service package implements:
//   - Multi-session puzzle management
//   - Manual move and auto-solve orchestration
//   - Move history tracking with pagination
//   - Configuration management
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level puzzle
// operations. SessionManager handles session creation, retrieval, and
// lifecycle. ConfigManager manages puzzle configuration loading.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP)
// and the puzzle engine, providing session isolation and serialized board
// access. Each session owns an independent engine; the service mutex keeps
// board mutation single-writer, so manual moves cannot interleave with a
// pending solve or its replay.
//
// Usage:
//
//	sessionMgr := session.NewManager(solver.AsSolveFunc())
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	info, err := gameService.CreateSession(ctx, "mini")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.Move(ctx, info.ID, 2, 1)
//	solveRes, err := gameService.Solve(ctx, info.ID)
//	stepRes, err := gameService.Step(ctx, info.ID)
package service
