package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/switchboard-io/switchboard/internal/domain"
	"github.com/switchboard-io/switchboard/internal/httpserver/deps"
	"github.com/switchboard-io/switchboard/internal/logger"
)

// ListDomains returns every record, ascending creation time.
func ListDomains(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := d.Store.ListAll(r.Context())
		if err != nil {
			d.Logger.Error("failed to list domains", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to list domains")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"domains": records})
	}
}

type createDomainRequest struct {
	URL string `json:"url"`
}

// CreateDomain inserts a single domain after normalization.
func CreateDomain(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDomainRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		url := domain.NormalizeURL(req.URL)
		if url == "" {
			writeError(w, http.StatusBadRequest, "domain url must not be empty")
			return
		}

		rec, err := d.Store.Insert(r.Context(), url)
		if err != nil {
			status, msg := storeErrorStatus(err)
			if status >= http.StatusInternalServerError {
				d.Logger.Error("failed to insert domain",
					logger.String("url", url),
					logger.Error(err))
			}
			writeError(w, status, msg)
			return
		}

		d.Logger.Info("domain added", logger.String("url", rec.URL))
		writeJSON(w, http.StatusCreated, map[string]any{
			"message": "domain added",
			"domain":  rec,
		})
	}
}

// batchCreateRequest accepts either a JSON array of urls or a single
// newline-delimited string (textarea input from the admin UI).
type batchCreateRequest struct {
	URLs json.RawMessage `json:"urls"`
}

func (req *batchCreateRequest) urls() ([]string, error) {
	if len(req.URLs) == 0 {
		return nil, nil
	}

	var list []string
	if err := json.Unmarshal(req.URLs, &list); err == nil {
		return list, nil
	}

	var text string
	if err := json.Unmarshal(req.URLs, &text); err == nil {
		return domain.SplitURLList(text), nil
	}

	return nil, fmt.Errorf("urls must be a list of strings or a newline-delimited string")
}

// BatchCreateDomains inserts urls one at a time, best-effort: duplicates
// are skipped without aborting siblings. Partial success answers 207.
func BatchCreateDomains(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req batchCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		raw, err := req.urls()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		urls := make([]string, 0, len(raw))
		for _, u := range raw {
			if normalized := domain.NormalizeURL(u); normalized != "" {
				urls = append(urls, normalized)
			}
		}
		if len(urls) == 0 {
			writeError(w, http.StatusBadRequest, "domain list must not be empty")
			return
		}

		inserted := make([]*domain.Record, 0, len(urls))
		for _, url := range urls {
			rec, err := d.Store.Insert(r.Context(), url)
			switch {
			case err == nil:
				inserted = append(inserted, rec)
			case domain.IsDuplicate(err):
				d.Logger.Debug("skipping duplicate domain in batch",
					logger.String("url", url))
			default:
				d.Logger.Error("failed to insert domain in batch",
					logger.String("url", url),
					logger.Error(err))
				writeError(w, http.StatusInternalServerError, "domain store unavailable")
				return
			}
		}

		if len(inserted) == 0 {
			writeError(w, http.StatusBadRequest, "all domains already exist")
			return
		}

		status := http.StatusCreated
		if len(inserted) < len(urls) {
			status = http.StatusMultiStatus
		}

		d.Logger.Info("batch domain insert",
			logger.Int("inserted", len(inserted)),
			logger.Int("submitted", len(urls)))
		writeJSON(w, status, map[string]any{
			"message": fmt.Sprintf("added %d of %d domains", len(inserted), len(urls)),
			"count":   len(inserted),
			"domains": inserted,
		})
	}
}

type updateDomainRequest struct {
	Enabled *bool `json:"enabled"`
}

// UpdateDomain toggles the enabled flag of a record.
func UpdateDomain(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req updateDomainRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Enabled == nil {
			writeError(w, http.StatusBadRequest, "missing enabled flag")
			return
		}

		rec, err := d.Store.UpdateEnabled(r.Context(), id, *req.Enabled)
		if err != nil {
			status, msg := storeErrorStatus(err)
			if status >= http.StatusInternalServerError {
				d.Logger.Error("failed to update domain",
					logger.String("id", id),
					logger.Error(err))
			}
			writeError(w, status, msg)
			return
		}

		d.Logger.Info("domain updated",
			logger.String("url", rec.URL),
			logger.String("enabled", fmt.Sprintf("%t", rec.Enabled)))
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "domain updated",
			"domain":  rec,
		})
	}
}

// DeleteDomain removes a record.
func DeleteDomain(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := d.Store.Delete(r.Context(), id); err != nil {
			status, msg := storeErrorStatus(err)
			if status >= http.StatusInternalServerError {
				d.Logger.Error("failed to delete domain",
					logger.String("id", id),
					logger.Error(err))
			}
			writeError(w, status, msg)
			return
		}

		d.Logger.Info("domain deleted", logger.String("id", id))
		writeJSON(w, http.StatusOK, map[string]string{"message": "domain deleted"})
	}
}
