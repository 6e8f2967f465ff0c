package handler

import (
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"codexam/internal/cache"
)

const defaultResultLimit = 20

// ResultHandler handles submission result endpoints
type ResultHandler struct {
	results cache.ResultCache
}

// NewResultHandler creates a new result handler.
func NewResultHandler(results cache.ResultCache) *ResultHandler {
	return &ResultHandler{results: results}
}

// RecentResults handles GET /v1/results/recent
func (h *ResultHandler) RecentResults(w http.ResponseWriter, r *http.Request) {
	limit := defaultResultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	records, err := h.results.Recent(r.Context(), limit)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch recent results")
		writeError(w, http.StatusInternalServerError, "Failed to fetch results")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"results": records})
}
