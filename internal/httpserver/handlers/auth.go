package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/switchboard-io/switchboard/internal/httpserver/deps"
	"github.com/switchboard-io/switchboard/internal/session"
)

type loginRequest struct {
	Password string `json:"password"`
}

// Login checks the shared admin secret and establishes a session,
// handing the token back in a cookie.
func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if subtle.ConstantTimeCompare([]byte(req.Password), []byte(d.AdminPassword)) != 1 {
			d.Logger.Warn("login failed: wrong password")
			writeError(w, http.StatusUnauthorized, "wrong password")
			return
		}

		s := d.Sessions.Create()
		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    s.Token,
			Path:     "/",
			MaxAge:   int(d.Sessions.TTL().Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		d.Logger.Info("operator logged in")
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// Logout destroys the presented session immediately.
func Logout(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(session.CookieName); err == nil {
			d.Sessions.Destroy(cookie.Value)
		}

		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
