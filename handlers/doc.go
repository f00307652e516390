// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers of the application shell.

# Handler Types

  - AppHandler: the shell itself (page, fetch trigger, detail route, state)
  - JournalHandler: read access to the action journal

Handlers are created via constructor functions with their dependencies:

	app := handlers.NewAppHandler(s, client)
	journal := handlers.NewJournalHandler(actionLog)

# Shell

The shell owns one store for the life of the process. It starts in the
loading state and never fetches on its own:

	GET  /                 → Index (list view, empty detail region)
	POST /fetch            → Fetch (dispatches the fetch thunk)
	GET  /characters/{id}  → Character (list view plus detail view)
	GET  /state            → State (JSON snapshot)

Index and Character render HTML. Loading and error are tracked in the store
and exposed by /state, but the HTML shell does not display them.

Fetch and Character answer JSON when the request's Accept header asks for
application/json.

# Journal

	GET /actions?limit=N → Recent
*/
package handlers
