// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Star Wars Characters server.

The server keeps one application state in memory, fetches the character
list from a remote API when asked, and renders a list view with a
per-character detail view at /characters/{id}.

# Starting the Server

No configuration is required:

	go run .

Or with flags:

	go run . -p 3318 -e "https://star-wars-character-search.glitch.me/api"

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 3318)
  - API_ENDPOINT (-e): Character API base address
  - DATABASE_URL (-d): Action journal database (default: file:swchars.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ENV_FILE (-env-file): Dotenv file (default: .env)

# Architecture

  - store: State, actions, reducer, and the dispatch adapter
  - characters: Fetch orchestrator and detail lookup against the API
  - endpoint: Base address of the API
  - handlers: HTTP handlers of the application shell
  - views: templ components for the HTML shell
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request logging, CORS, JSON helpers
  - db: Action journal (sqlite or PostgreSQL)
  - models: Domain and response types
  - cliparse: Configuration parsing
  - cmd/swctl: Command-line client for a running server

See package documentation for each component.
*/
package main
