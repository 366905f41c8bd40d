package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/switchboard-io/switchboard/internal/httpserver/deps"
	"github.com/switchboard-io/switchboard/internal/httpserver/handlers"
)

func init() { Register(registerPing) }

func registerPing(r chi.Router, d deps.Deps) {
	r.Get("/ping", handlers.Ping(d))
	r.Get("/healthz", handlers.Healthz(d))
}
