// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/star-wars-characters/models"
	"github.com/danielhkuo/star-wars-characters/store"
)

const (
	DefaultRecentLimit = 50
	MaxRecentLimit     = 500

	// fixed width so text ordering matches time ordering
	timeLayout = "2006-01-02T15:04:05.000000000Z"
)

type ActionLog struct {
	db  *sql.DB
	now func() time.Time
}

func NewActionLog(db *sql.DB) *ActionLog {
	return &ActionLog{db: db, now: time.Now}
}

// Record stores one applied action for the given store session. The row is
// stamped with applied.At, which the store assigns in reduction order.
func (l *ActionLog) Record(ctx context.Context, sessionID string, applied store.Applied) (models.ActionEntry, error) {
	action := store.Canonical(applied.Action)
	dispatchedAt := applied.At
	if dispatchedAt.IsZero() {
		dispatchedAt = l.now()
	}

	entry := models.ActionEntry{
		ID:             uuid.NewString(),
		SessionID:      sessionID,
		Seq:            applied.Seq,
		Type:           actionType(action),
		CharacterCount: len(applied.State.Characters),
		DispatchedAt:   dispatchedAt.UTC(),
	}

	var errText sql.NullString
	if failed, ok := action.(store.Failed); ok && failed.Err != nil {
		msg := failed.Err.Error()
		entry.Error = &msg
		errText = sql.NullString{String: msg, Valid: true}
	}

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO action_log (id, session_id, seq, type, character_count, error, dispatched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, entry.ID, entry.SessionID, entry.Seq, entry.Type, entry.CharacterCount, errText,
		entry.DispatchedAt.Format(timeLayout))
	if err != nil {
		return models.ActionEntry{}, fmt.Errorf("failed to record action: %w", err)
	}

	return entry, nil
}

// Recent returns up to limit entries, newest first. Within a session the
// sequence number breaks ties between equal timestamps.
func (l *ActionLog) Recent(ctx context.Context, limit int) ([]models.ActionEntry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	rows, err := l.db.QueryContext(ctx, `
		SELECT id, session_id, seq, type, character_count, error, dispatched_at
		FROM action_log
		ORDER BY dispatched_at DESC, seq DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query action log: %w", err)
	}
	defer rows.Close()

	entries := []models.ActionEntry{}
	for rows.Next() {
		var entry models.ActionEntry
		var errText sql.NullString
		var dispatchedAt string

		if err := rows.Scan(
			&entry.ID,
			&entry.SessionID,
			&entry.Seq,
			&entry.Type,
			&entry.CharacterCount,
			&errText,
			&dispatchedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan action: %w", err)
		}

		if errText.Valid {
			msg := errText.String
			entry.Error = &msg
		}
		entry.DispatchedAt, err = time.Parse(timeLayout, dispatchedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid dispatched_at %q: %w", dispatchedAt, err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read action log: %w", err)
	}

	return entries, nil
}

// Observer records every applied action of the store s
func (l *ActionLog) Observer(s *store.Store) store.Observer {
	sessionID := s.ID()
	return func(applied store.Applied) {
		if _, err := l.Record(context.Background(), sessionID, applied); err != nil {
			slog.Error("failed to journal action", "seq", applied.Seq, "error", err)
		}
	}
}

func actionType(a store.Action) string {
	if a == nil {
		return "UNKNOWN"
	}
	return string(a.Type())
}
