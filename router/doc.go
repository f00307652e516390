// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the character browser.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(router.Deps{Store: s, Source: client, Journal: actionLog})

# Endpoints

Health:

	GET /health

Application shell (HTML, or JSON with Accept: application/json):

	GET  /                 - Character list
	POST /fetch            - Trigger a character fetch
	GET  /characters/{id}  - Character list plus detail view

Inspection (JSON):

	GET /state    - Characters, loading flag, and last error
	GET /actions  - Recent journaled actions

# Handler Initialization

The router creates handler instances with dependency injection:

	appHandler := handlers.NewAppHandler(deps.Store, deps.Source)
	journalHandler := handlers.NewJournalHandler(deps.Journal)
*/
package router
