// Package api provides HTTP REST API handlers for the sliding puzzle.
//
// The api package implements:
//   - RESTful endpoints for puzzle operations
//   - Session management endpoints
//   - Configuration listing and creation
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (body: {"config_id": "classic"})
//   - GET /api/sessions - List all sessions (sort, order, limit query params)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Play Operations:
//   - GET /api/sessions/{id}/state - Current board snapshot
//   - POST /api/sessions/{id}/move - Slide the tile at {"row": r, "col": c}
//   - POST /api/sessions/{id}/solve - Compute an optimal solution
//   - POST /api/sessions/{id}/step - Advance the queued solution by one move
//   - POST /api/sessions/{id}/new-game - Reshuffle the board
//   - GET /api/sessions/{id}/history - Move history with pagination
//
// Configuration:
//   - GET /api/configs - List available configurations
//   - GET /api/configs/{name} - Get a single configuration
//   - POST /api/configs - Save a new configuration
//
// Request/Response Format:
//
// All endpoints accept and return JSON. A move request targets a board
// cell by zero-based row and column:
//
//	{
//	  "row": 2,
//	  "col": 1
//	}
//
// An illegal move is not an HTTP error; the response carries
// accepted=false and a reason, plus the unchanged board state.
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
//
// WebSocket:
//
// Clients connect to /ws?session=<id> and receive a full board snapshot
// after every accepted move, solve, step and reshuffle.
package api
