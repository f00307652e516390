// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds the application state and the single entry point that
changes it.

# State

State has three fields: the fetched characters, a loading flag, and the most
recent fetch error. A fresh store starts from InitialState:

	{Characters: [], Loading: true, Err: nil}

# Actions

Three actions drive every transition:

	Loading{}                     // LOADING
	ResponseComplete{Characters}  // RESPONSE_COMPLETE
	Failed{Err}                   // ERROR

Reduce is the pure transition function. Any other Action implementation is
unrecognized and leaves state unchanged.

# Dispatch

Dispatch accepts a Dispatchable, a tagged union of an Action or a Thunk:

	s.Dispatch(store.Plain(store.Loading{}))
	s.Dispatch(store.Deferred(client.FetchCharacters))

A thunk is invoked immediately with the store's Send and may call it any
number of times later, from any goroutine. Send serializes reductions with a
mutex, so concurrent dispatches interleave but never overlap.

# Observers

Observe registers a callback that runs after each applied action with its
sequence number and the resulting state. The action journal uses this.
*/
package store
