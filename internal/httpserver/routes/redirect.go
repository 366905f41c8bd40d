package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/switchboard-io/switchboard/internal/httpserver/deps"
	"github.com/switchboard-io/switchboard/internal/httpserver/handlers"
)

func init() { Register(registerRedirect) }

// Anonymous surface: the root redirect and the public target query.
func registerRedirect(r chi.Router, d deps.Deps) {
	r.Get("/", handlers.Redirect(d))
	r.Get("/api/first-domain", handlers.FirstDomain(d))
}
