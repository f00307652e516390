// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielhkuo/star-wars-characters/cliparse"
	"github.com/danielhkuo/star-wars-characters/db"
	"github.com/danielhkuo/star-wars-characters/models"
)

// TestDBURL is an in-memory sqlite database, private to one connection
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig()
	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration. Its endpoint refuses
// connections; point it at a FakeAPI when a test needs one.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		Endpoint:     "http://127.0.0.1:0/api",
		DatabaseURL:  TestDBURL,
		DatabaseType: cliparse.DatabaseSQLite,
	}
}

// FakeAPI is a stand-in for the remote character API
type FakeAPI struct {
	*httptest.Server
	listHits atomic.Int32
	fail     atomic.Bool
}

// ListHits counts requests to /characters
func (f *FakeAPI) ListHits() int {
	return int(f.listHits.Load())
}

// FailWith makes the list endpoint answer 500 until reset with false
func (f *FakeAPI) FailWith(fail bool) {
	f.fail.Store(fail)
}

// NewFakeAPI serves GET /characters and GET /characters/{id} from chars.
// The server is closed when the test ends.
func NewFakeAPI(t *testing.T, chars []models.Character) *FakeAPI {
	t.Helper()

	api := &FakeAPI{}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /characters", func(w http.ResponseWriter, r *http.Request) {
		api.listHits.Add(1)
		if api.fail.Load() {
			http.Error(w, "unavailable", http.StatusInternalServerError)
			return
		}
		writeJSON(w, models.CharacterListBody{Characters: chars})
	})

	mux.HandleFunc("GET /characters/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		for _, c := range chars {
			if c.ID() == id {
				writeJSON(w, models.CharacterBody{Character: c})
				return
			}
		}
		http.NotFound(w, r)
	})

	api.Server = httptest.NewServer(mux)
	t.Cleanup(api.Close)

	return api
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// SampleCharacters returns a small fixed roster
func SampleCharacters() []models.Character {
	return []models.Character{
		{"id": 1, "name": "Luke Skywalker", "eyeColor": "blue"},
		{"id": 2, "name": "Leia Organa", "eyeColor": "brown"},
		{"id": 3, "name": "Han Solo", "eyeColor": "hazel"},
	}
}

// WaitFor polls cond until it holds or the timeout passes
func WaitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Condition not met within %s", timeout)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
