package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/ksa/internal/logger"
	"github.com/abhisek/ksa/internal/progress"
	"github.com/abhisek/ksa/internal/store"
)

// Manager keeps the live sessions of the HTTP API in memory.
type Manager struct {
	deps Deps
	log  *logger.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(deps Deps) *Manager {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
		deps.Logger = log
	}
	return &Manager{
		deps:     deps,
		log:      log,
		sessions: make(map[string]*Session),
	}
}

// Create starts a session for user under a fresh UUID. A user without an
// ID takes the session ID.
func (m *Manager) Create(ctx context.Context, user progress.UserProgress) *Session {
	id := uuid.NewString()
	if user.ID == "" {
		user.ID = id
	}
	s := New(id, user, m.deps)

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	m.recordLifecycle(ctx, store.SessionStart, s)
	m.log.Info("session created", "session_id", id, "user", user.Name, "role", string(user.Role))
	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Delete ends the session. Any attempt in flight is cancelled.
func (m *Manager) Delete(ctx context.Context, id string) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return false
	}
	s.CancelAssessment()
	m.recordLifecycle(ctx, store.SessionEnd, s)
	m.log.Info("session ended", "session_id", id)
	return true
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep ends sessions unused for longer than maxIdle and returns how many
// were removed.
func (m *Manager) Sweep(ctx context.Context, maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	m.mu.RLock()
	var stale []string
	for id, s := range m.sessions {
		if s.IdleSince().Before(cutoff) {
			stale = append(stale, id)
		}
	}
	m.mu.RUnlock()

	n := 0
	for _, id := range stale {
		if m.Delete(ctx, id) {
			n++
		}
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is done.
func (m *Manager) RunSweeper(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(ctx, maxIdle); n > 0 {
				m.log.Info("expired idle sessions", "count", n)
			}
		}
	}
}

func (m *Manager) recordLifecycle(ctx context.Context, action string, s *Session) {
	if m.deps.Events == nil {
		return
	}
	user := s.Progress()
	err := m.deps.Events.AppendSessionEvent(context.WithoutCancel(ctx), store.SessionEventData{
		SessionID: s.ID(),
		Action:    action,
		UserName:  user.Name,
		Role:      string(user.Role),
		Points:    user.Points,
		Badges:    len(user.Badges),
	})
	if err != nil {
		m.log.Warn("failed to record session event", "session_id", s.ID(), "action", action, "error", err)
	}
}
