package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/slidegame/npuzzle/game/engine"
)

// gameServiceImpl implements the GameService interface. Its mutex is the
// single-writer guard for every board: engines are never touched outside
// it, so manual moves, solves, replay steps, and shuffles serialize. At
// most one solve runs for a session at a time, and a new game discards any
// queued solution before the next step can fire.
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config name, used for
// consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new puzzle session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      s.snapshot(session),
		GameConfig:     session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name),
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      s.snapshot(session),
		GameConfig:     session.Config,
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name),
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			GameState:      s.snapshot(sess),
			GameConfig:     sess.Config,
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Move requests a manual slide of the tile at (row, col). Rejections — the
// tile not being adjacent to the blank, or a solution replay being in
// flight — come back as an unaccepted result, not an error.
func (s *gameServiceImpl) Move(ctx context.Context, sessionID string, row, col int) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	moveErr := sess.Engine.RequestMove(row, col)
	state := s.snapshot(sess)

	if moveErr != nil {
		if errors.Is(moveErr, engine.ErrIllegalMove) {
			reason := moveErr.Error()
			state.Message = sess.Config.Messages.IllegalMove
			return &MoveResult{
				Accepted:  false,
				Reason:    reason,
				GameState: state,
				Events: []GameEvent{{
					Type:      "rejected",
					Message:   reason,
					Timestamp: time.Now(),
					Position:  engine.Position{Row: row, Col: col},
				}},
			}, nil
		}
		return nil, moveErr
	}

	events := []GameEvent{{
		Type:      "move",
		Message:   fmt.Sprintf("Slid tile into (%d,%d)", row, col),
		Timestamp: time.Now(),
		Position:  engine.Position{Row: row, Col: col},
	}}
	if state.Solved {
		state.Message = sess.Config.Messages.Solved
		events = append(events, GameEvent{
			Type:      "solved",
			Message:   sess.Config.Messages.Solved,
			Timestamp: time.Now(),
		})
	}

	return &MoveResult{Accepted: true, GameState: state, Events: events}, nil
}

// Solve computes an optimal solution for the session's board and queues it
// for stepping. Idempotent while a path is already queued.
func (s *gameServiceImpl) Solve(ctx context.Context, sessionID string) (*SolveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if sess.Engine.IsSolved() {
		state := s.snapshot(sess)
		state.Message = sess.Config.Messages.AlreadySolved
		return &SolveResult{AlreadySolved: true, GameState: state}, nil
	}

	length, err := sess.Engine.RequestSolve()
	if err != nil {
		return nil, fmt.Errorf("solve failed for session %s: %w", sessionID, err)
	}

	state := s.snapshot(sess)
	if sess.Config.Messages.SolveQueued != "" {
		state.Message = fmt.Sprintf(sess.Config.Messages.SolveQueued, length)
	}

	return &SolveResult{
		PathLength: length,
		GameState:  state,
		Events: []GameEvent{{
			Type:      "solve_queued",
			Message:   fmt.Sprintf("Optimal solution of %d moves queued", length),
			Timestamp: time.Now(),
		}},
	}, nil
}

// Step advances the queued solution by exactly one move. The caller paces
// the replay; the service owns no timer.
func (s *gameServiceImpl) Step(ctx context.Context, sessionID string) (*StepResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	advanced, err := sess.Engine.StepAutoSolve()
	if err != nil {
		return nil, fmt.Errorf("step failed for session %s: %w", sessionID, err)
	}

	state := s.snapshot(sess)
	result := &StepResult{
		Advanced:  advanced,
		Remaining: sess.Engine.QueuedSteps(),
		GameState: state,
	}
	if advanced {
		result.Events = append(result.Events, GameEvent{
			Type:      "auto_step",
			Message:   fmt.Sprintf("Auto-solve step applied, %d remaining", result.Remaining),
			Timestamp: time.Now(),
		})
	}
	if state.Solved {
		state.Message = sess.Config.Messages.Solved
		result.Events = append(result.Events, GameEvent{
			Type:      "solved",
			Message:   sess.Config.Messages.Solved,
			Timestamp: time.Now(),
		})
	}

	return result, nil
}

// NewGame reshuffles the session's board and resets its counters
func (s *gameServiceImpl) NewGame(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if err := sess.Engine.NewGame(); err != nil {
		return nil, fmt.Errorf("new game failed for session %s: %w", sessionID, err)
	}

	state := s.snapshot(sess)
	state.Message = sess.Config.Messages.Shuffled
	return state, nil
}

// GetGameState retrieves the current puzzle state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return s.snapshot(sess), nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.GetMoveHistory()
	total := len(history)

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var moves []engine.MoveHistoryEntry
	if opts.Order == "desc" {
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			moves = append(moves, history[i])
		}
	} else {
		if start < total {
			moves = history[start:end]
		}
	}
	if moves == nil {
		moves = []engine.MoveHistoryEntry{}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available puzzle configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific puzzle configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a puzzle configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// snapshot builds an engine state snapshot enriched with the rendered board
func (s *gameServiceImpl) snapshot(sess *Session) *engine.GameState {
	state := sess.Engine.Snapshot()
	state.BoardLines = engine.RenderBoard(state.Cells)
	return state
}
