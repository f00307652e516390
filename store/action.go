// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"github.com/danielhkuo/star-wars-characters/models"
)

// ActionType names a state transition
type ActionType string

const (
	TypeLoading          ActionType = models.ActionLoading
	TypeResponseComplete ActionType = models.ActionResponseComplete
	TypeError            ActionType = models.ActionError
)

// Action is a tagged message describing a state transition. The set is
// closed: only Loading, ResponseComplete and Failed implement it.
type Action interface {
	Type() ActionType
	action()
}

// Loading starts a fetch cycle and discards any prior result
type Loading struct{}

func (Loading) Type() ActionType { return TypeLoading }
func (Loading) action()          {}

// ResponseComplete carries a successfully fetched character list
type ResponseComplete struct {
	Characters []models.Character
}

func (ResponseComplete) Type() ActionType { return TypeResponseComplete }
func (ResponseComplete) action()          {}

// Failed carries the error that ended a fetch
type Failed struct {
	Err error
}

func (Failed) Type() ActionType { return TypeError }
func (Failed) action()          {}

// Canonical returns the value form of a, so that a pointer to an action is
// applied and journaled exactly like the value it points to. A nil pointer
// canonicalizes to nil.
func Canonical(a Action) Action {
	switch p := a.(type) {
	case *Loading:
		if p == nil {
			return nil
		}
		return *p
	case *ResponseComplete:
		if p == nil {
			return nil
		}
		return *p
	case *Failed:
		if p == nil {
			return nil
		}
		return *p
	}
	return a
}

// Sender is the raw action sender
type Sender func(Action)

// Thunk is a deferred computation that sends actions through the raw sender
type Thunk func(Sender)

type dispatchKind int

const (
	kindAction dispatchKind = iota + 1
	kindThunk
)

// Dispatchable is either an Action or a Thunk. Build one with Plain or Deferred.
type Dispatchable struct {
	kind   dispatchKind
	action Action
	thunk  Thunk
}

// Plain wraps an action for Dispatch
func Plain(a Action) Dispatchable {
	return Dispatchable{kind: kindAction, action: a}
}

// Deferred wraps a thunk for Dispatch
func Deferred(t Thunk) Dispatchable {
	return Dispatchable{kind: kindThunk, thunk: t}
}
