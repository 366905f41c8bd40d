package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/switchboard-io/switchboard/internal/httpserver/deps"
	"github.com/switchboard-io/switchboard/internal/httpserver/handlers"
	"github.com/switchboard-io/switchboard/internal/httpserver/mw"
)

func init() { Register(registerDomains) }

// All domain CRUD routes sit behind the session gate.
func registerDomains(r chi.Router, d deps.Deps) {
	admin := r.With(mw.RequireSession(d.Sessions, d.Logger))
	admin.Get("/api/domains", handlers.ListDomains(d))
	admin.Post("/api/domains", handlers.CreateDomain(d))
	admin.Post("/api/domains/batch", handlers.BatchCreateDomains(d))
	admin.Put("/api/domains/{id}", handlers.UpdateDomain(d))
	admin.Delete("/api/domains/{id}", handlers.DeleteDomain(d))
}
