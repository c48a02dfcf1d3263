// Package session provides in-memory session management for the
// sliding-tile puzzle.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management and expiry cleanup
//
// Core Types:
//
// Manager is the session manager handling all session operations. Each
// session wraps an independent puzzle engine plus metadata like creation
// time and last access time.
//
// Session Identifiers:
//
// Sessions use 8-character hex IDs derived from random UUIDs, looked up
// case-insensitively.
//
// Concurrency:
//
// The manager is safe for concurrent use. Note that it guards only its own
// map; serializing access to an individual session's engine is the service
// layer's job.
//
// Persistence:
//
// Sessions are memory-only by design — a restart starts everyone on a
// fresh shuffle.
package session
