package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the session token.
const CookieName = "switchboard_session"

// Session is server-held proof of a successful admin login, referenced by
// an opaque token.
type Session struct {
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Manager owns the process-wide session table. The raw map is never
// exposed; all access goes through Create/Validate/Destroy.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session // token -> Session
	ttl      time.Duration
	now      func() time.Time
}

// NewManager creates a session manager with the given time-to-live.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// SetTimeNow overrides the manager clock (tests only).
func (m *Manager) SetTimeNow(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Create establishes a new authenticated session and returns it.
func (m *Manager) Create() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	s := &Session{
		Token:     uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	m.sessions[s.Token] = s
	return s
}

// Validate reports whether token refers to a live session.
// An expired session is treated identically to an absent one.
func (m *Manager) Validate(token string) bool {
	if token == "" {
		return false
	}

	m.mu.RLock()
	s, ok := m.sessions[token]
	now := m.now()
	m.mu.RUnlock()

	if !ok {
		return false
	}
	if now.After(s.ExpiresAt) {
		m.Destroy(token)
		return false
	}
	return true
}

// Destroy invalidates a session immediately. Unknown tokens are a no-op.
func (m *Manager) Destroy(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}

// Sweep drops every expired session and returns how many were removed.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for token, s := range m.sessions {
		if now.After(s.ExpiresAt) {
			delete(m.sessions, token)
			removed++
		}
	}
	return removed
}

// Count returns the number of sessions currently held, expired included.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
