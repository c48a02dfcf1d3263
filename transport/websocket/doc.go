// Package websocket provides real-time board updates for the sliding puzzle.
//
// The websocket package implements:
//   - A Hub that tracks connected clients per session
//   - Fan-out of board state updates after every accepted move
//   - Custom event broadcasts (solve queued, puzzle solved)
//   - Ping/pong keepalive handling
//
// Architecture:
//
// The Hub owns the session-to-clients map and only touches it from its
// Run goroutine. Registration, unregistration and broadcasts all flow
// through channels, so transports can call BroadcastToSession from any
// goroutine without extra locking.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// In an HTTP handler, after validating the session:
//	hub.ServeWS(w, r, sessionID)
//
//	// After a move is applied:
//	hub.BroadcastToSession(sessionID, state)
//
// Clients connect to /ws?session=<id> and receive JSON Message frames
// with the full board snapshot after each change.
package websocket
