package handlers

import (
	"net/http"

	"github.com/switchboard-io/switchboard/internal/domain"
	"github.com/switchboard-io/switchboard/internal/httpserver/deps"
	"github.com/switchboard-io/switchboard/internal/logger"
)

// Redirect sends anonymous root-path traffic to the current target: the
// first enabled domain by creation time. An empty enabled set is an
// expected operating state and answers 200, not an error.
func Redirect(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target, err := domain.FirstEnabled(r.Context(), d.Store)
		if err != nil {
			d.Logger.Error("failed to resolve redirect target", logger.Error(err))
			http.Error(w, "server error", http.StatusInternalServerError)
			return
		}

		if target == nil {
			d.Logger.Debug("no enabled domain, nothing to redirect to")
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte("no redirect target available"))
			return
		}

		d.Logger.Info("redirecting visitor", logger.String("url", target.URL))
		http.Redirect(w, r, target.URL, http.StatusFound)
	}
}

// FirstDomain exposes the current redirect target as data for clients
// that build the destination link themselves.
func FirstDomain(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target, err := domain.FirstEnabled(r.Context(), d.Store)
		if err != nil {
			d.Logger.Error("failed to resolve redirect target", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to resolve redirect target")
			return
		}

		if target == nil {
			writeJSON(w, http.StatusOK, map[string]any{
				"url":     nil,
				"message": "no redirect target available",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"url": target.URL})
	}
}
