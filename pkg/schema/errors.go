package schema

import (
	"fmt"
	"strings"
)

// FieldError records a single field validation failure.
type FieldError struct {
	Field  string // Field name
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation, nil if absent
}

func (e *FieldError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %T)", e.Field, e.Reason, e.Value)
}

// ValidationError aggregates every field failure found in one validation
// pass. It is raised only at DTO construction; a caller fixing its input
// gets the complete violation list in a single round trip.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return e.Fields[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d validation errors:\n", len(e.Fields))
	for i := range e.Fields {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, e.Fields[i].Error())
	}
	return b.String()
}

// FieldNames returns the violated field names in report order.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, len(e.Fields))
	for i := range e.Fields {
		names[i] = e.Fields[i].Field
	}
	return names
}

// AsValidation returns the aggregate if err is a *ValidationError.
func AsValidation(err error) (*ValidationError, bool) {
	verr, ok := err.(*ValidationError)
	return verr, ok
}
