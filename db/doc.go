// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db manages the action journal database.

# Drivers

Open selects the driver from the configured database type:

	sqlite   → modernc.org/sqlite (default, pure Go)
	postgres → github.com/lib/pq

# Schema Creation

CreateSchema creates the journal table if it doesn't exist:

	if err := db.CreateSchema(conn); err != nil {
	    log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Action Journal

Every action applied to the store is recorded as one row:

	action_log
	  id              uuid of the entry
	  session_id      id of the store instance that applied it
	  seq             store sequence number
	  type            LOADING, RESPONSE_COMPLETE, ERROR, or other
	  character_count characters in state after the action
	  error           error text for ERROR actions
	  dispatched_at   RFC 3339 timestamp

ActionLog.Observer adapts the journal to store.Observe. Write failures are
logged and never affect the store.
*/
package db
