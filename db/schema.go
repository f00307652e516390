// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/star-wars-characters/cliparse"
)

// Open connects to the journal database and verifies the connection
func Open(dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case cliparse.DatabaseSQLite, "":
		driver = "sqlite"
	case cliparse.DatabasePostgres:
		driver = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	// sqlite allows a single writer
	if driver == "sqlite" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS action_log (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL,
    seq BIGINT NOT NULL,
    type TEXT NOT NULL,
    character_count INTEGER NOT NULL DEFAULT 0,
    error TEXT,
    dispatched_at TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_action_log_session ON action_log(session_id, seq)`,
	`CREATE INDEX IF NOT EXISTS idx_action_log_dispatched_at ON action_log(dispatched_at)`,
}
