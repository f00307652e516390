// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Applied describes one action after the reducer has run. Seq and At are
// assigned while the store is locked, so both follow the order of reduction
// even when observers run out of order.
type Applied struct {
	Seq    int64
	At     time.Time
	Action Action
	State  State
}

// Observer is notified after every applied action
type Observer func(Applied)

// Store owns the state for one application instance
type Store struct {
	id      string
	reducer Reducer

	mu        sync.Mutex
	state     State
	seq       int64
	last      time.Time
	observers []Observer
}

// New creates a store with the given reducer and initial state
func New(reducer Reducer, initial State) *Store {
	if reducer == nil {
		reducer = Reduce
	}
	return &Store{
		id:      uuid.NewString(),
		reducer: reducer,
		state:   initial,
	}
}

// ID identifies this store instance for the lifetime of the process
func (s *Store) ID() string {
	return s.id
}

// State returns a snapshot of the current state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.state)
}

// Observe registers fn to run after each applied action
func (s *Store) Observe(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Send is the base sender. It applies the reducer and notifies observers.
func (s *Store) Send(a Action) {
	a = Canonical(a)

	s.mu.Lock()
	s.state = s.reducer(s.state, a)
	s.seq++
	s.last = stamp(s.last)
	applied := Applied{
		Seq:    s.seq,
		At:     s.last,
		Action: a,
		State:  snapshot(s.state),
	}
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(applied)
	}
}

// Dispatch forwards plain actions to Send and runs thunks with Send
func (s *Store) Dispatch(d Dispatchable) {
	switch d.kind {
	case kindAction:
		s.Send(d.action)
	case kindThunk:
		if d.thunk != nil {
			d.thunk(s.Send)
		}
	}
}

// stamp returns the current time, never earlier than prev
func stamp(prev time.Time) time.Time {
	now := time.Now().UTC()
	if now.Before(prev) {
		return prev
	}
	return now
}

func snapshot(st State) State {
	st.Characters = slices.Clone(st.Characters)
	return st
}
