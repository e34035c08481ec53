package domain

import (
	"errors"
	"fmt"
)

// Well-known business-rule codes. Sentinels anchor errors.Is matching:
// any *Error with the same code matches the sentinel.
var (
	ErrNotFound      = &Error{Code: "not_found", Message: "entity not found"}
	ErrUnauthorized  = &Error{Code: "unauthorized", Message: "operation not permitted"}
	ErrTerminalState = &Error{Code: "terminal_state", Message: "entity is in a terminal state"}
	ErrCancelled     = &Error{Code: "cancelled", Message: "operation cancelled"}
)

// Error is the root domain error: a typed signal for a business-rule
// violation raised inside an action's Handle. It propagates unmodified
// through transaction scopes and pipelines until the boundary layer
// translates it into a caller-facing response.
type Error struct {
	Code    string
	Message string
	Context map[string]any
}

func (e *Error) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches any *Error sharing the same code, so concrete violations
// compare equal to the exported sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// WithContext returns a copy of the error with an extra context entry.
// The receiver is never mutated; sentinels stay pristine.
func (e *Error) WithContext(key string, value any) *Error {
	clone := &Error{
		Code:    e.Code,
		Message: e.Message,
		Context: make(map[string]any, len(e.Context)+1),
	}
	for k, v := range e.Context {
		clone.Context[k] = v
	}
	clone.Context[key] = value
	return clone
}

// NewError creates a domain error with an explicit code.
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewNotFound signals that the referenced entity does not exist.
func NewNotFound(message string) *Error {
	return &Error{Code: ErrNotFound.Code, Message: message}
}

// NewUnauthorized signals that the caller may not perform the operation.
func NewUnauthorized(message string) *Error {
	return &Error{Code: ErrUnauthorized.Code, Message: message}
}

// NewTerminalState signals that the entity can no longer change state.
func NewTerminalState(message string) *Error {
	return &Error{Code: ErrTerminalState.Code, Message: message}
}

// NewCancelled signals that the operation was cancelled by a business rule.
func NewCancelled(message string) *Error {
	return &Error{Code: ErrCancelled.Code, Message: message}
}

// InfraError reports a failure in the transaction manager, the store, or a
// service collaborator. It is distinct from a business-rule violation and
// is not meant to be mapped to end-user messages.
type InfraError struct {
	// Op names the operation that failed, e.g. "commit transaction".
	Op  string
	Err error
}

func (e *InfraError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("infrastructure failure: %s", e.Op)
	}
	return fmt.Sprintf("infrastructure failure: %s: %v", e.Op, e.Err)
}

func (e *InfraError) Unwrap() error { return e.Err }

// NewInfra wraps a low-level failure with the operation that triggered it.
func NewInfra(op string, err error) *InfraError {
	return &InfraError{Op: op, Err: err}
}

// IsInfra reports whether err is (or wraps) an infrastructure failure.
func IsInfra(err error) bool {
	var infra *InfraError
	return errors.As(err, &infra)
}

// IsDomain reports whether err is (or wraps) a business-rule violation.
func IsDomain(err error) bool {
	var derr *Error
	return errors.As(err, &derr)
}
