package cambium

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/cambium/internal/logging"
	"github.com/aretw0/cambium/pkg/domain"
	"github.com/aretw0/cambium/pkg/ports"
)

// Executor runs actions with the transactional discipline the caller
// picks per invocation. It is stateless between invocations and safe for
// concurrent use; each call path carries its own scope via the context.
type Executor struct {
	manager ports.Manager
	logger  *slog.Logger
	hooks   domain.Hooks
}

// Option defines a functional option for configuring the Executor.
type Option func(*Executor)

// WithLogger sets a custom structured logger for the executor.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) {
		e.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(e *Executor) {
		e.hooks = hooks
	}
}

// New creates an Executor delegating physical transactions to manager.
func New(manager ports.Manager, opts ...Option) *Executor {
	if manager == nil {
		panic("cambium: manager must not be nil")
	}
	e := &Executor{
		manager: manager,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs the action inside a transaction scope. If the call path
// already holds one, this invocation joins it: its "commit" is a no-op
// with respect to the physical boundary, and an error at any nesting
// depth unwinds the single physical transaction, undoing effects from all
// levels. Otherwise a new physical transaction is begun, committed when
// Handle returns normally and rolled back when it fails or panics.
//
// Errors from Handle propagate unmodified. A commit failure after a
// successful Handle surfaces as a *domain.InfraError; nothing is retried.
func (e *Executor) Execute(ctx context.Context, a Action) (any, error) {
	return e.withScope(ctx, func(ctx context.Context) (any, error) {
		return e.run(ctx, a, true)
	})
}

// WithoutTransaction runs Handle directly, with no scope creation or
// joining. Pipeline stages and callers that manage the scope themselves
// use this entry point.
func (e *Executor) WithoutTransaction(ctx context.Context, a Action) (any, error) {
	return e.run(ctx, a, false)
}

// InTransaction opens (or joins) a transaction scope around fn. It exists
// for callers that need atomicity across several actions or a whole
// pipeline: every Execute or store access inside fn joins this scope.
func (e *Executor) InTransaction(ctx context.Context, fn func(ctx context.Context) (any, error)) (any, error) {
	return e.withScope(ctx, fn)
}

// withScope is the reentrant scope guard. The outermost call begins the
// physical transaction and guarantees its release on every exit path,
// including panics; nested calls only move the depth counter.
func (e *Executor) withScope(ctx context.Context, fn func(ctx context.Context) (any, error)) (any, error) {
	if sc := scopeFrom(ctx); sc != nil {
		sc.depth++
		defer func() { sc.depth-- }()
		return fn(ctx)
	}

	tx, err := e.manager.Begin(ctx)
	if err != nil {
		return nil, domain.NewInfra("begin transaction", err)
	}

	sc := &scope{tx: tx, depth: 1}
	ctx = context.WithValue(ctx, scopeKey, sc)

	defer func() {
		if p := recover(); p != nil {
			e.rollback(ctx, sc, nil)
			panic(p)
		}
	}()

	result, err := fn(ctx)
	if err != nil {
		e.rollback(ctx, sc, err)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		infra := domain.NewInfra("commit transaction", err)
		e.logger.ErrorContext(ctx, "commit failed", "err", err)
		return nil, infra
	}
	if e.hooks.OnCommit != nil {
		e.hooks.OnCommit(ctx, &domain.ScopeEvent{Type: domain.EventCommit, Depth: sc.depth})
	}
	return result, nil
}

// rollback releases the physical transaction after a failure. The
// original error propagates unmodified; a rollback failure is only
// logged, never allowed to mask the cause.
func (e *Executor) rollback(ctx context.Context, sc *scope, cause error) {
	if err := sc.tx.Rollback(ctx); err != nil {
		e.logger.ErrorContext(ctx, "rollback failed", "err", err)
	}
	if e.hooks.OnRollback != nil {
		e.hooks.OnRollback(ctx, &domain.ScopeEvent{Type: domain.EventRollback, Depth: sc.depth, Err: cause})
	}
}

// run invokes Handle and emits lifecycle events around it.
func (e *Executor) run(ctx context.Context, a Action, transactional bool) (any, error) {
	name := actionName(a)

	if e.hooks.OnActionStart != nil {
		e.hooks.OnActionStart(ctx, &domain.ActionEvent{
			Type:          domain.EventActionStart,
			Action:        name,
			Transactional: transactional,
		})
	}
	e.logger.DebugContext(ctx, "action start", "action", name, "transactional", transactional)

	start := time.Now()
	result, err := a.Handle(ctx)
	elapsed := time.Since(start)

	if e.hooks.OnActionEnd != nil {
		e.hooks.OnActionEnd(ctx, &domain.ActionEvent{
			Type:          domain.EventActionEnd,
			Action:        name,
			Transactional: transactional,
			Duration:      elapsed,
			Err:           err,
		})
	}
	if err != nil {
		e.logger.DebugContext(ctx, "action failed", "action", name, "err", err, "duration", elapsed)
		return nil, err
	}
	e.logger.DebugContext(ctx, "action done", "action", name, "duration", elapsed)
	return result, nil
}
