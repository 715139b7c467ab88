// Package server tracks the game sessions hosted by one process and keeps
// their shared leaderboard. Every session runs its own independent game;
// the server never touches game state.
package server

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Host is the interface clients use to communicate with the session host.
// Decouples the Client from the concrete Server implementation.
type Host interface {
	Register(username string) *SessionHandle
	Unregister(id int)
	ReportScore(id int, score int)
	TopScores() []ScoreEntry
}

// Server manages connected sessions and the leaderboard.
type Server struct {
	mu       sync.RWMutex
	sessions map[int]*SessionHandle
	nextID   int
	board    *Leaderboard
	logger   *log.Logger
}

// Compile-time check that Server implements Host.
var _ Host = (*Server)(nil)

// SessionHandle represents one connected player.
type SessionHandle struct {
	ID       int
	Username string
	EventsCh chan Event // Events sent to the session (shutdown)
	Started  time.Time
}

// Event represents an event sent from server to a session.
type Event struct {
	Type EventType
}

// EventType identifies the type of session event.
type EventType int

const (
	EventServerShutdown EventType = iota
)

// NewServer creates a server keeping the top boardSize scores.
func NewServer(logger *log.Logger, boardSize int) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		sessions: make(map[int]*SessionHandle),
		nextID:   1,
		board:    NewLeaderboard(boardSize),
		logger:   logger,
	}
}

// Register adds a session for username and returns its handle.
func (s *Server) Register(username string) *SessionHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle := &SessionHandle{
		ID:       s.nextID,
		Username: username,
		EventsCh: make(chan Event, 4),
		Started:  time.Now(),
	}
	s.nextID++
	s.sessions[handle.ID] = handle

	s.logger.Info("session registered", "id", handle.ID, "user", username, "active", len(s.sessions))
	return handle
}

// Unregister removes a session and closes its event channel. Unknown IDs are ignored.
func (s *Server) Unregister(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, ok := s.sessions[id]
	if !ok {
		return
	}
	close(handle.EventsCh)
	delete(s.sessions, id)

	s.logger.Info("session unregistered", "id", id, "user", handle.Username,
		"duration", time.Since(handle.Started).Round(time.Second), "active", len(s.sessions))
}

// ReportScore records the final score of a finished game.
func (s *Server) ReportScore(id int, score int) {
	s.mu.RLock()
	handle, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return
	}

	if s.board.Submit(ScoreEntry{Username: handle.Username, Score: score, sessionID: id}) {
		s.logger.Info("new top score", "user", handle.Username, "score", score)
	}
}

// TopScores returns the leaderboard, best first.
func (s *Server) TopScores() []ScoreEntry {
	return s.board.Entries()
}

// Active returns the number of connected sessions.
func (s *Server) Active() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Shutdown gracefully shuts down the server by notifying all connected sessions
// and waiting for them to disconnect (up to the given timeout).
func (s *Server) Shutdown(timeout time.Duration) {
	s.mu.RLock()
	for _, handle := range s.sessions {
		select {
		case handle.EventsCh <- Event{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.RUnlock()

	// Wait for all sessions to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			s.logger.Warn("shutdown timed out", "remaining", s.Active())
			return
		case <-ticker.C:
			if s.Active() == 0 {
				return
			}
		}
	}
}
