// Package mcp provides a Model Context Protocol interface for the sliding puzzle.
//
// The mcp package implements:
//   - An MCP server for AI agent integration
//   - Tool definitions for every puzzle operation
//   - A thin HTTP client that proxies tool calls to the REST API
//   - Text formatting of boards and results for language models
//
// Architecture:
//
// The Client holds no game state of its own. Every tool call becomes an
// HTTP request against the REST API, so MCP agents and web clients always
// observe the same sessions.
//
// Available Tools:
//   - create_session, get_session, list_sessions
//   - board_state, move_tile, solve, step_solution, new_game
//   - move_history, list_configs, describe_tile, game_instructions
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// The move_tile tool carries an optional intent parameter. It is not
// interpreted; it nudges agents into stating their plan before acting.
package mcp
