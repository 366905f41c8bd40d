package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/switchboard-io/switchboard/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// storeErrorStatus maps domain store errors onto HTTP statuses.
// The original admin API reported duplicates as 400, not 409.
func storeErrorStatus(err error) (int, string) {
	switch {
	case domain.IsInvalidID(err):
		return http.StatusBadRequest, "invalid domain id"
	case domain.IsNotFound(err):
		return http.StatusNotFound, "domain not found"
	case domain.IsDuplicate(err):
		return http.StatusBadRequest, "domain url already exists"
	default:
		return http.StatusInternalServerError, "domain store unavailable"
	}
}
