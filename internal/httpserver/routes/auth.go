package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/switchboard-io/switchboard/internal/httpserver/deps"
	"github.com/switchboard-io/switchboard/internal/httpserver/handlers"
	"github.com/switchboard-io/switchboard/internal/httpserver/mw"
)

func init() { Register(registerAuth) }

func registerAuth(r chi.Router, d deps.Deps) {
	r.Post("/api/login", handlers.Login(d))
	r.With(mw.RequireSession(d.Sessions, d.Logger)).Post("/api/logout", handlers.Logout(d))
}
