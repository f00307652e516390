// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package characters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/star-wars-characters/endpoint"
	"github.com/danielhkuo/star-wars-characters/models"
	"github.com/danielhkuo/star-wars-characters/store"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrNotFound         = errors.New("character not found")
)

// StatusError reports a non-2xx response from the API
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

func (e *StatusError) Is(target error) bool {
	if target == ErrUnexpectedStatus {
		return true
	}
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

type Client struct {
	base string
	http *http.Client
}

// NewClient creates a client for the API at base. A nil httpClient uses
// http.DefaultClient, which has no timeout.
func NewClient(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{base: endpoint.Resolve(base), http: httpClient}
}

// Endpoint returns the resolved API base address
func (c *Client) Endpoint() string {
	return c.base
}

// FetchCharacters sends LOADING, then RESPONSE_COMPLETE or ERROR once the
// list request completes. It does not block.
func (c *Client) FetchCharacters(send store.Sender) {
	send(store.Loading{})

	go func() {
		list, err := c.List(context.Background())
		if err != nil {
			slog.Warn("character fetch failed", "endpoint", c.base, "error", err)
			send(store.Failed{Err: err})
			return
		}
		send(store.ResponseComplete{Characters: list})
	}()
}

// List requests the full character list
func (c *Client) List(ctx context.Context) ([]models.Character, error) {
	var body models.CharacterListBody
	if err := c.getJSON(ctx, endpoint.Characters(c.base), &body); err != nil {
		return nil, err
	}
	if body.Characters == nil {
		return []models.Character{}, nil
	}
	return body.Characters, nil
}

// Get requests a single character by id
func (c *Client) Get(ctx context.Context, id string) (models.Character, error) {
	var body models.CharacterBody
	if err := c.getJSON(ctx, endpoint.Character(c.base, id), &body); err != nil {
		return nil, err
	}
	if body.Character == nil {
		return nil, fmt.Errorf("character %s: %w", id, ErrNotFound)
	}
	return body.Character, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach character API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: url, Code: resp.StatusCode}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}
	return nil
}
