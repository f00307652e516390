// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"github.com/danielhkuo/star-wars-characters/models"
)

// State is the application state
type State struct {
	Characters []models.Character
	Loading    bool
	Err        error
}

// Reducer produces the next state from the current state and an action
type Reducer func(State, Action) State

// InitialState is loading by default; no fetch is triggered automatically
func InitialState() State {
	return State{
		Characters: []models.Character{},
		Loading:    true,
		Err:        nil,
	}
}

// Reduce is the application reducer. It has no side effects.
// The transition is chosen by the action's tag; the payload is read from the
// concrete value that carries it.
func Reduce(state State, action Action) State {
	action = Canonical(action)
	if action == nil {
		return state
	}

	switch action.Type() {
	case TypeLoading:
		return State{
			Characters: []models.Character{},
			Loading:    true,
			Err:        nil,
		}

	case TypeResponseComplete:
		a, ok := action.(ResponseComplete)
		if !ok {
			return state
		}
		characters := a.Characters
		if characters == nil {
			characters = []models.Character{}
		}
		return State{
			Characters: characters,
			Loading:    false,
			Err:        nil,
		}

	case TypeError:
		a, ok := action.(Failed)
		if !ok {
			return state
		}
		return State{
			Characters: []models.Character{},
			Loading:    false,
			Err:        a.Err,
		}
	}

	// Unrecognized actions are not an error
	return state
}
