// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"time"
)

// Action type constants
const (
	ActionLoading          = "LOADING"
	ActionResponseComplete = "RESPONSE_COMPLETE"
	ActionError            = "ERROR"
)

// Domain types

// Character is a record as returned by the remote API. No schema is enforced.
type Character map[string]any

// ID returns the "id" field as text, or "" when absent
func (c Character) ID() string {
	v, ok := c["id"]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Name returns the "name" field, falling back to the ID
func (c Character) Name() string {
	if name, ok := c["name"].(string); ok && name != "" {
		return name
	}
	return c.ID()
}

type ActionEntry struct {
	ID             string    `json:"id"`
	SessionID      string    `json:"session_id"`
	Seq            int64     `json:"seq"`
	Type           string    `json:"type"`
	CharacterCount int       `json:"character_count"`
	Error          *string   `json:"error,omitempty"`
	DispatchedAt   time.Time `json:"dispatched_at"`
}

// Remote API bodies

type CharacterListBody struct {
	Characters []Character `json:"characters"`
}

type CharacterBody struct {
	Character Character `json:"character"`
}

// Response types

type StateResponse struct {
	Characters []Character `json:"characters"`
	Loading    bool        `json:"loading"`
	Error      *string     `json:"error"`
}

type ActionsResponse struct {
	Entries []ActionEntry `json:"entries"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
