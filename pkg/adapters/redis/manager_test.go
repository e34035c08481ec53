package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cambium/pkg/adapters/redis"
	"github.com/aretw0/cambium/pkg/ports"
)

func newTestManager(t *testing.T) *redis.Manager {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	return redis.NewFromClient(client)
}

func TestRedisManager_Contract(t *testing.T) {
	mgr := newTestManager(t)

	ports.RunManagerContract(t, mgr, ports.Harness{
		Mutate: func(ctx context.Context, tx ports.Tx, key string) error {
			tx.(*redis.Tx).Pipeline().Set(ctx, key, "written", 0)
			return nil
		},
		Visible: func(ctx context.Context, key string) (bool, error) {
			n, err := mgr.Client().Exists(ctx, key).Result()
			return n > 0, err
		},
	})
}

func TestCommit_AppliesAllQueuedCommands(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)

	tx, err := mgr.Begin(ctx)
	require.NoError(t, err)

	pipe := tx.(*redis.Tx).Pipeline()
	pipe.Set(ctx, "orders/1", "placed", 0)
	pipe.Incr(ctx, "orders/count")
	require.NoError(t, tx.Commit(ctx))

	v, err := mgr.Client().Get(ctx, "orders/1").Result()
	require.NoError(t, err)
	require.Equal(t, "placed", v)

	n, err := mgr.Client().Get(ctx, "orders/count").Int()
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
