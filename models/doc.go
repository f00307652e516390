// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types for the
character browser.

# Domain Types

  - Character: an opaque JSON object as returned by the remote API. Only the
    "id" and "name" fields are interpreted, via ID and Name.
  - ActionEntry: one row of the action journal.

# Remote API Bodies

Types for decoding the character API:

  - CharacterListBody: {"characters": [...]}
  - CharacterBody: {"character": {...}}

# Response Types

Types for JSON responses:

  - StateResponse: characters, loading, error
  - ActionsResponse: entries
  - ErrorResponse: error, message

# Constants

Action types, as recorded in the journal:

	ActionLoading          = "LOADING"
	ActionResponseComplete = "RESPONSE_COMPLETE"
	ActionError            = "ERROR"
*/
package models
