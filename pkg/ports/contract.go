package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Harness adapts a concrete store to the manager contract suite. Mutate
// applies an observable write for key inside the given transaction;
// Visible reports whether that key's write is durably visible outside any
// transaction. The suite uses a distinct key per scenario.
type Harness struct {
	Mutate  func(ctx context.Context, tx Tx, key string) error
	Visible func(ctx context.Context, key string) (bool, error)
}

// RunManagerContract runs a suite of tests verifying that a Manager
// implementation adheres to the atomicity contract: committed work is
// visible, rolled-back work leaves no trace.
func RunManagerContract(t *testing.T, mgr Manager, h Harness) {
	ctx := context.Background()

	t.Run("Commit makes effects visible", func(t *testing.T) {
		tx, err := mgr.Begin(ctx)
		require.NoError(t, err, "Begin should not return error")

		require.NoError(t, h.Mutate(ctx, tx, "contract-commit"))
		require.NoError(t, tx.Commit(ctx), "Commit should not return error")

		visible, err := h.Visible(ctx, "contract-commit")
		require.NoError(t, err)
		assert.True(t, visible, "committed effect should be visible")
	})

	t.Run("Rollback leaves no partial effect", func(t *testing.T) {
		tx, err := mgr.Begin(ctx)
		require.NoError(t, err, "Begin should not return error")

		require.NoError(t, h.Mutate(ctx, tx, "contract-rollback"))
		require.NoError(t, tx.Rollback(ctx), "Rollback should not return error")

		visible, err := h.Visible(ctx, "contract-rollback")
		require.NoError(t, err)
		assert.False(t, visible, "rolled-back effect must not be visible")
	})

	t.Run("Uncommitted work is invisible", func(t *testing.T) {
		tx, err := mgr.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(ctx) }()

		require.NoError(t, h.Mutate(ctx, tx, "contract-inflight"))

		visible, err := h.Visible(ctx, "contract-inflight")
		require.NoError(t, err)
		assert.False(t, visible, "in-flight effect must not be visible")
	})
}
