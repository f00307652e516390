// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/star-wars-characters/characters"
	"github.com/danielhkuo/star-wars-characters/models"
	"github.com/danielhkuo/star-wars-characters/store"
	"github.com/danielhkuo/star-wars-characters/testutil"
)

func newTestApp(t *testing.T) (*AppHandler, *store.Store, *testutil.FakeAPI) {
	t.Helper()
	api := testutil.NewFakeAPI(t, testutil.SampleCharacters())
	s := store.New(store.Reduce, store.InitialState())
	return NewAppHandler(s, characters.NewClient(api.URL, nil)), s, api
}

func waitLoaded(t *testing.T, s *store.Store) {
	t.Helper()
	testutil.WaitFor(t, 2*time.Second, func() bool { return !s.State().Loading })
}

func TestIndex_InitialState(t *testing.T) {
	handler, s, api := newTestApp(t)

	w := httptest.NewRecorder()
	handler.Index(w, testutil.MakeRequest("GET", "/", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()

	if !strings.Contains(body, "Fetch Characters") {
		t.Error("Expected fetch trigger in page")
	}
	if strings.Contains(body, "CharacterListItem") {
		t.Error("Expected empty list before any fetch")
	}
	if api.ListHits() != 0 {
		t.Errorf("Expected no automatic fetch on mount, got %d requests", api.ListHits())
	}

	st := s.State()
	if !st.Loading || st.Err != nil || len(st.Characters) != 0 {
		t.Errorf("Expected initial loading state, got %+v", st)
	}
}

func TestFetch_RedirectsBrowser(t *testing.T) {
	handler, s, api := newTestApp(t)

	w := httptest.NewRecorder()
	handler.Fetch(w, testutil.MakeRequest("POST", "/fetch", nil, nil))

	testutil.AssertStatus(t, w, http.StatusSeeOther)
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("Expected redirect to /, got %q", loc)
	}

	waitLoaded(t, s)

	if api.ListHits() != 1 {
		t.Errorf("Expected one list request, got %d", api.ListHits())
	}
	if got := len(s.State().Characters); got != 3 {
		t.Errorf("Expected 3 characters, got %d", got)
	}

	// The list view now renders every character
	w = httptest.NewRecorder()
	handler.Index(w, testutil.MakeRequest("GET", "/", nil, nil))
	body := w.Body.String()
	for _, want := range []string{
		`href="/characters/1">Luke Skywalker</a>`,
		`href="/characters/2">Leia Organa</a>`,
		`href="/characters/3">Han Solo</a>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected list to contain %s", want)
		}
	}
}

func TestFetch_JSONClient(t *testing.T) {
	handler, s, _ := newTestApp(t)

	w := httptest.NewRecorder()
	handler.Fetch(w, testutil.MakeRequest("POST", "/fetch", nil, map[string]string{"Accept": "application/json"}))

	testutil.AssertStatus(t, w, http.StatusAccepted)

	var resp models.StateResponse
	testutil.AssertJSON(t, w, &resp)

	// LOADING is applied before Fetch returns; the list may or may not have landed
	if resp.Error != nil {
		t.Errorf("Expected no error, got %s", *resp.Error)
	}
	if resp.Characters == nil {
		t.Error("Expected characters to encode as an array")
	}

	waitLoaded(t, s)
}

func TestFetch_ErrorTrackedButNotRendered(t *testing.T) {
	handler, s, api := newTestApp(t)
	api.FailWith(true)

	w := httptest.NewRecorder()
	handler.Fetch(w, testutil.MakeRequest("POST", "/fetch", nil, nil))
	waitLoaded(t, s)

	st := s.State()
	if st.Err == nil {
		t.Fatal("Expected fetch failure in state")
	}
	if len(st.Characters) != 0 {
		t.Errorf("Expected no characters after failure, got %d", len(st.Characters))
	}

	// Known gap: the shell tracks loading and error but never shows them
	w = httptest.NewRecorder()
	handler.Index(w, testutil.MakeRequest("GET", "/", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	if strings.Contains(body, st.Err.Error()) || strings.Contains(strings.ToLower(body), "error") {
		t.Error("Known gap changed: fetch error is now rendered by the shell")
	}
	if strings.Contains(strings.ToLower(body), "loading") {
		t.Error("Known gap changed: loading is now rendered by the shell")
	}

	// Still visible through /state
	w = httptest.NewRecorder()
	handler.State(w, testutil.MakeRequest("GET", "/state", nil, nil))
	var resp models.StateResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error == nil || resp.Loading {
		t.Errorf("Expected error state in /state, got %+v", resp)
	}

	// A new fetch clears the error
	api.FailWith(false)
	handler.Fetch(httptest.NewRecorder(), testutil.MakeRequest("POST", "/fetch", nil, nil))
	testutil.WaitFor(t, 2*time.Second, func() bool { return len(s.State().Characters) == 3 })
	if s.State().Err != nil {
		t.Error("Expected error cleared after successful refetch")
	}
}

func TestCharacter(t *testing.T) {
	handler, _, _ := newTestApp(t)

	tests := []struct {
		name           string
		id             string
		headers        map[string]string
		expectedStatus int
		contains       string
	}{
		{"html detail", "1", nil, http.StatusOK, "<h2>Luke Skywalker</h2>"},
		{"html not found", "99", nil, http.StatusNotFound, "Character not found"},
		{"json detail", "2", map[string]string{"Accept": "application/json"}, http.StatusOK, `"name":"Leia Organa"`},
		{"json not found", "99", map[string]string{"Accept": "application/json"}, http.StatusNotFound, `"error":"Not Found"`},
		{"missing id", "", nil, http.StatusBadRequest, "character id required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/characters/"+tt.id, nil, tt.headers)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.Character(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if !strings.Contains(w.Body.String(), tt.contains) {
				t.Errorf("Expected body to contain %q, got %s", tt.contains, w.Body.String())
			}
		})
	}
}

func TestCharacter_APIUnavailable(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer api.Close()

	s := store.New(store.Reduce, store.InitialState())
	handler := NewAppHandler(s, characters.NewClient(api.URL, nil))

	req := testutil.MakeRequest("GET", "/characters/1", nil, nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	handler.Character(w, req)

	testutil.AssertStatus(t, w, http.StatusBadGateway)
	if !strings.Contains(w.Body.String(), "Could not load character") {
		t.Errorf("Expected detail error message, got %s", w.Body.String())
	}
}

func TestCharacter_KeepsListView(t *testing.T) {
	handler, s, _ := newTestApp(t)
	s.Send(store.ResponseComplete{Characters: testutil.SampleCharacters()})

	req := testutil.MakeRequest("GET", "/characters/3", nil, nil)
	req.SetPathValue("id", "3")
	w := httptest.NewRecorder()

	handler.Character(w, req)

	body := w.Body.String()
	if !strings.Contains(body, `href="/characters/1">Luke Skywalker</a>`) {
		t.Error("Expected list view alongside detail")
	}
	if !strings.Contains(body, `data-id="3"`) {
		t.Error("Expected detail view for id 3")
	}
}

func TestState(t *testing.T) {
	handler, s, _ := newTestApp(t)

	w := httptest.NewRecorder()
	handler.State(w, testutil.MakeRequest("GET", "/state", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if body := strings.TrimSpace(w.Body.String()); body != `{"characters":[],"loading":true,"error":null}` {
		t.Errorf("Unexpected initial state body: %s", body)
	}

	s.Send(store.ResponseComplete{Characters: []models.Character{{"id": 1, "name": "Luke"}}})

	w = httptest.NewRecorder()
	handler.State(w, testutil.MakeRequest("GET", "/state", nil, nil))
	if body := strings.TrimSpace(w.Body.String()); body != `{"characters":[{"id":1,"name":"Luke"}],"loading":false,"error":null}` {
		t.Errorf("Unexpected state body: %s", body)
	}
}
