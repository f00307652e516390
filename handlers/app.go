// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/danielhkuo/star-wars-characters/characters"
	"github.com/danielhkuo/star-wars-characters/middleware"
	"github.com/danielhkuo/star-wars-characters/models"
	"github.com/danielhkuo/star-wars-characters/store"
	"github.com/danielhkuo/star-wars-characters/views"
)

// CharacterSource is the remote API as seen by the shell
type CharacterSource interface {
	FetchCharacters(send store.Sender)
	Get(ctx context.Context, id string) (models.Character, error)
}

type AppHandler struct {
	store  *store.Store
	source CharacterSource
}

func NewAppHandler(s *store.Store, source CharacterSource) *AppHandler {
	return &AppHandler{store: s, source: source}
}

// Index handles GET /
// Renders the shell with the current character list and no detail
func (h *AppHandler) Index(w http.ResponseWriter, r *http.Request) {
	st := h.store.State()
	templ.Handler(views.Page(views.CharacterList(st.Characters), nil)).ServeHTTP(w, r)
}

// Fetch handles POST /fetch
// Dispatches the fetch thunk; the request itself does not wait for the API
func (h *AppHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	h.store.Dispatch(store.Deferred(h.source.FetchCharacters))

	if middleware.WantsJSON(r) {
		middleware.JSONResponse(w, http.StatusAccepted, stateResponse(h.store.State()))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Character handles GET /characters/{id}
// Renders the list plus the detail view for the matched id
func (h *AppHandler) Character(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "character id required")
		return
	}

	character, err := h.source.Get(r.Context(), id)

	status := http.StatusOK
	message := ""
	if err != nil {
		status, message = http.StatusBadGateway, "Could not load character"
		if errors.Is(err, characters.ErrNotFound) {
			status, message = http.StatusNotFound, "Character not found"
		} else {
			slog.Error("failed to load character", "id", id, "error", err)
		}
	}

	if middleware.WantsJSON(r) {
		if err != nil {
			middleware.ErrorResponse(w, status, message)
			return
		}
		middleware.JSONResponse(w, http.StatusOK, models.CharacterBody{Character: character})
		return
	}

	detail := views.CharacterView(character)
	if err != nil {
		detail = views.DetailError(message)
	}

	st := h.store.State()
	page := views.Page(views.CharacterList(st.Characters), detail)
	templ.Handler(page, templ.WithStatus(status)).ServeHTTP(w, r)
}

// State handles GET /state
// Returns the full state, including loading and error
func (h *AppHandler) State(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, stateResponse(h.store.State()))
}

func stateResponse(st store.State) models.StateResponse {
	resp := models.StateResponse{
		Characters: st.Characters,
		Loading:    st.Loading,
	}
	if resp.Characters == nil {
		resp.Characters = []models.Character{}
	}
	if st.Err != nil {
		msg := st.Err.Error()
		resp.Error = &msg
	}
	return resp
}
