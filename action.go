package cambium

import (
	"context"
	"fmt"
)

// Action is a unit of business logic. Implementations are created per
// invocation, hold their validated input and injected collaborators, and
// are discarded once the result is returned.
//
// Handle must be free of direct transaction management: the executor owns
// the scope. Handles reach the live transaction through TxFrom(ctx).
type Action interface {
	Handle(ctx context.Context) (any, error)
}

// Factory constructs the next pipeline stage from the previous stage's
// result. Returning an error aborts the pipeline before the stage runs.
type Factory func(input any) (Action, error)

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc func(ctx context.Context) (any, error)

// Handle calls f.
func (f ActionFunc) Handle(ctx context.Context) (any, error) { return f(ctx) }

// actionName resolves a human-readable name for hooks and logs. Actions
// may implement Name() string; the type name is the fallback.
func actionName(a Action) string {
	if n, ok := a.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", a)
}
