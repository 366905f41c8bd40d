package handlers

import (
	"net/http"

	"github.com/switchboard-io/switchboard/internal/httpserver/deps"
)

// Ping is the liveness probe used by external keep-alive monitors.
func Ping(deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("pong"))
	}
}
