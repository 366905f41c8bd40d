package mw

import (
	"encoding/json"
	"net/http"

	"github.com/switchboard-io/switchboard/internal/logger"
	"github.com/switchboard-io/switchboard/internal/session"
)

// RequireSession gates admin routes behind a valid, non-expired session.
// On failure it answers 401 before the handler runs, so no store
// mutation can happen unauthenticated.
func RequireSession(sessions *session.Manager, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil || !sessions.Validate(cookie.Value) {
				log.Debug("rejected unauthenticated request",
					logger.String("path", r.URL.Path))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error": "authentication required",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
