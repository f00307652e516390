// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/danielhkuo/star-wars-characters/models"
)

// unknownAction is not one of the three named transitions
type unknownAction struct{}

func (unknownAction) Type() ActionType { return "UNKNOWN" }
func (unknownAction) action()          {}

func TestInitialState(t *testing.T) {
	st := InitialState()

	if st.Characters == nil || len(st.Characters) != 0 {
		t.Errorf("Expected empty characters, got %v", st.Characters)
	}
	if !st.Loading {
		t.Error("Expected loading to be true initially")
	}
	if st.Err != nil {
		t.Errorf("Expected no error, got %v", st.Err)
	}
}

func TestReduce(t *testing.T) {
	luke := []models.Character{{"id": 1, "name": "Luke"}}
	networkDown := errors.New("network down")

	tests := []struct {
		name   string
		state  State
		action Action
		want   State
	}{
		{
			name:   "response complete from initial state",
			state:  InitialState(),
			action: ResponseComplete{Characters: luke},
			want:   State{Characters: luke, Loading: false, Err: nil},
		},
		{
			name:   "error from initial state",
			state:  InitialState(),
			action: Failed{Err: networkDown},
			want:   State{Characters: []models.Character{}, Loading: false, Err: networkDown},
		},
		{
			name:   "loading clears prior result",
			state:  State{Characters: luke, Loading: false},
			action: Loading{},
			want:   State{Characters: []models.Character{}, Loading: true, Err: nil},
		},
		{
			name:   "loading clears prior error",
			state:  State{Characters: []models.Character{}, Err: networkDown},
			action: Loading{},
			want:   State{Characters: []models.Character{}, Loading: true, Err: nil},
		},
		{
			name:   "response complete clears error",
			state:  State{Characters: []models.Character{}, Err: networkDown},
			action: ResponseComplete{Characters: luke},
			want:   State{Characters: luke, Loading: false, Err: nil},
		},
		{
			name:   "error clears characters",
			state:  State{Characters: luke},
			action: Failed{Err: networkDown},
			want:   State{Characters: []models.Character{}, Loading: false, Err: networkDown},
		},
		{
			name:   "nil character list normalized",
			state:  InitialState(),
			action: ResponseComplete{},
			want:   State{Characters: []models.Character{}, Loading: false, Err: nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reduce(tt.state, tt.action)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestReduce_ErrorMessage(t *testing.T) {
	st := Reduce(InitialState(), Failed{Err: errors.New("network down")})

	if st.Err == nil || st.Err.Error() != "network down" {
		t.Errorf("Expected error 'network down', got %v", st.Err)
	}
}

func TestReduce_UnrecognizedActionUnchanged(t *testing.T) {
	states := []State{
		InitialState(),
		{Characters: []models.Character{{"id": 2, "name": "Leia"}}, Loading: false},
		{Characters: []models.Character{}, Err: errors.New("boom")},
	}

	for _, st := range states {
		for _, a := range []Action{unknownAction{}, nil, (*Loading)(nil), (*Failed)(nil)} {
			got := Reduce(st, a)
			if !reflect.DeepEqual(got, st) {
				t.Errorf("Expected state unchanged for %T, got %+v", a, got)
			}
			if len(st.Characters) > 0 && &got.Characters[0] != &st.Characters[0] {
				t.Errorf("Expected the same character slice for %T", a)
			}
		}
	}
}

func TestReduce_PointerActionsMatchValues(t *testing.T) {
	luke := []models.Character{{"id": 1, "name": "Luke"}}
	loaded := State{Characters: luke, Loading: false}
	networkDown := errors.New("network down")

	tests := []struct {
		name  string
		state State
		value Action
		ptr   Action
	}{
		{"loading", loaded, Loading{}, &Loading{}},
		{"response complete", InitialState(), ResponseComplete{Characters: luke}, &ResponseComplete{Characters: luke}},
		{"error", loaded, Failed{Err: networkDown}, &Failed{Err: networkDown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := Reduce(tt.state, tt.value)
			got := Reduce(tt.state, tt.ptr)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Expected %+v, got %+v", want, got)
			}
			if tt.ptr.Type() != tt.value.Type() {
				t.Errorf("Expected tag %s, got %s", tt.value.Type(), tt.ptr.Type())
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	if got := Canonical(&Loading{}); got != (Loading{}) {
		t.Errorf("Expected Loading{}, got %#v", got)
	}
	if got := Canonical((*ResponseComplete)(nil)); got != nil {
		t.Errorf("Expected nil for a nil pointer, got %#v", got)
	}
	if got := Canonical(unknownAction{}); got != (unknownAction{}) {
		t.Errorf("Expected unknownAction unchanged, got %#v", got)
	}
}

func TestReduce_NeverCharactersAndError(t *testing.T) {
	rng := rand.New(rand.NewSource(1977))
	actions := []Action{
		Loading{},
		ResponseComplete{Characters: []models.Character{{"id": 1, "name": "Luke"}}},
		ResponseComplete{Characters: []models.Character{}},
		Failed{Err: errors.New("network down")},
		unknownAction{},
	}

	for run := 0; run < 200; run++ {
		st := InitialState()
		for step := 0; step < 20; step++ {
			a := actions[rng.Intn(len(actions))]
			st = Reduce(st, a)

			if len(st.Characters) > 0 && st.Err != nil {
				t.Fatalf("run %d step %d: both characters and error set after %T", run, step, a)
			}
			if _, ok := a.(Loading); ok {
				if len(st.Characters) != 0 || st.Err != nil || !st.Loading {
					t.Fatalf("run %d step %d: loading did not reset state: %+v", run, step, st)
				}
			}
		}
	}
}
