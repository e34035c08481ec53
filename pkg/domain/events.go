package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventActionStart EventType = "action_start"
	EventActionEnd   EventType = "action_end"
	EventCommit      EventType = "commit"
	EventRollback    EventType = "rollback"
)

// ActionEvent describes the start or end of one action invocation.
type ActionEvent struct {
	Type   EventType `json:"type"`
	Action string    `json:"action"`
	// Transactional is true when the invocation went through Execute
	// rather than WithoutTransaction.
	Transactional bool          `json:"transactional"`
	Duration      time.Duration `json:"duration,omitempty"`
	Err           error         `json:"-"`
}

// ScopeEvent describes the resolution of a physical transaction scope.
type ScopeEvent struct {
	Type EventType `json:"type"`
	// Depth is the nesting depth at which the outcome was decided.
	// Physical commit and rollback always happen at depth 1.
	Depth int   `json:"depth"`
	Err   error `json:"-"`
}

// Hooks defines callbacks for executor observability. All fields are
// optional; nil hooks are skipped. Callbacks run synchronously on the
// executing call path and must be cheap.
type Hooks struct {
	OnActionStart func(context.Context, *ActionEvent)
	OnActionEnd   func(context.Context, *ActionEvent)
	OnCommit      func(context.Context, *ScopeEvent)
	OnRollback    func(context.Context, *ScopeEvent)
}
