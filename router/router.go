// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/star-wars-characters/db"
	"github.com/danielhkuo/star-wars-characters/handlers"
	"github.com/danielhkuo/star-wars-characters/middleware"
	"github.com/danielhkuo/star-wars-characters/store"
)

// Deps are the collaborators shared by all handlers
type Deps struct {
	Store   *store.Store
	Source  handlers.CharacterSource
	Journal *db.ActionLog
}

func NewRouter(deps Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	appHandler := handlers.NewAppHandler(deps.Store, deps.Source)
	journalHandler := handlers.NewJournalHandler(deps.Journal)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Application shell
	mux.HandleFunc("GET /{$}", middleware.WithLogging(appHandler.Index))
	mux.HandleFunc("POST /fetch", middleware.WithLogging(appHandler.Fetch))
	mux.HandleFunc("GET /characters/{id}", middleware.WithLogging(appHandler.Character))

	// Inspection
	mux.HandleFunc("GET /state", middleware.WithLogging(appHandler.State))
	mux.HandleFunc("GET /actions", middleware.WithLogging(journalHandler.Recent))

	return mux
}
