// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package characters talks to the remote character API.

# Fetch Orchestrator

FetchCharacters is a store.Thunk. Dispatching it sends LOADING at once, then
issues one GET to <endpoint>/characters in a new goroutine and sends exactly
one of RESPONSE_COMPLETE or ERROR when that request finishes:

	client := characters.NewClient(cfg.Endpoint, nil)
	s.Dispatch(store.Deferred(client.FetchCharacters))

There is no cancellation, timeout, retry, or de-duplication. Overlapping
fetches each complete independently and the last one to land wins.

# Failures

Network errors, non-2xx responses, and undecodable bodies are all the same
kind of failure: the error is carried by the ERROR action and kept in state.

# Detail Lookup

Get fetches a single character from <endpoint>/characters/<id> for the
detail view. A 404 maps to ErrNotFound.
*/
package characters
