package deps

import (
	"time"

	"github.com/switchboard-io/switchboard/internal/domain"
	"github.com/switchboard-io/switchboard/internal/logger"
	"github.com/switchboard-io/switchboard/internal/session"
)

type Deps struct {
	Logger        logger.Logger
	Store         domain.Store     // Domain record persistence
	Sessions      *session.Manager // Server-side session table
	AdminPassword string           // Shared secret checked on login
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time // for testing, defaults to time.Now
}
