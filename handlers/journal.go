// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/star-wars-characters/db"
	"github.com/danielhkuo/star-wars-characters/middleware"
	"github.com/danielhkuo/star-wars-characters/models"
)

type JournalHandler struct {
	log *db.ActionLog
}

func NewJournalHandler(log *db.ActionLog) *JournalHandler {
	return &JournalHandler{log: log}
}

// Recent handles GET /actions
// Returns the most recent journaled actions, newest first
func (h *JournalHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := db.DefaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > db.MaxRecentLimit {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be between 1 and "+strconv.Itoa(db.MaxRecentLimit))
			return
		}
		limit = n
	}

	entries, err := h.log.Recent(r.Context(), limit)
	if err != nil {
		slog.Error("failed to read action log", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ActionsResponse{Entries: entries})
}
