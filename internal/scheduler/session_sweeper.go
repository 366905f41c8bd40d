package scheduler

import (
	"context"
	"time"

	"github.com/switchboard-io/switchboard/internal/logger"
	"github.com/switchboard-io/switchboard/internal/session"
)

const (
	// DefaultSweepInterval is how often expired sessions are pruned
	DefaultSweepInterval = time.Hour
)

// SessionSweeper periodically prunes expired sessions from the session
// table. Validation already evicts expired tokens lazily; the sweeper
// keeps abandoned sessions from accumulating between logins.
type SessionSweeper struct {
	sessions *session.Manager
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
}

// NewSessionSweeper creates a new session sweeper
func NewSessionSweeper(sessions *session.Manager, log logger.Logger, interval time.Duration) *SessionSweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	return &SessionSweeper{
		sessions: sessions,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic sweep. Runs once immediately, then on every tick.
func (s *SessionSweeper) Start(ctx context.Context) {
	s.sweep()

	ticker := time.NewTicker(s.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the sweeper
func (s *SessionSweeper) Stop() {
	close(s.stopCh)
}

func (s *SessionSweeper) sweep() {
	removed := s.sessions.Sweep()
	if removed > 0 {
		s.logger.Info("expired sessions removed",
			logger.Int("removed", removed),
			logger.Int("remaining", s.sessions.Count()))
	} else {
		s.logger.Debug("no expired sessions to remove")
	}
}
