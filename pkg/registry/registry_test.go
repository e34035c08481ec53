package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cambium"
	"github.com/aretw0/cambium/pkg/adapters/memory"
	"github.com/aretw0/cambium/pkg/registry"
)

func addStage(n int) cambium.Factory {
	return func(input any) (cambium.Action, error) {
		return cambium.ActionFunc(func(ctx context.Context) (any, error) {
			return input.(int) + n, nil
		}), nil
	}
}

func TestRegistry_ResolveAndNames(t *testing.T) {
	r := registry.New()
	r.Register("add.ten", addStage(10))
	r.Register("add.one", addStage(1))

	_, err := r.Resolve("add.ten")
	require.NoError(t, err)

	_, err = r.Resolve("multiply")
	assert.Error(t, err)

	assert.Equal(t, []string{"add.one", "add.ten"}, r.Names())
}

func TestChain_RunsNamedStagesInOrder(t *testing.T) {
	ctx := context.Background()
	exec := cambium.New(memory.NewManager(memory.NewStore()))

	r := registry.New()
	r.Register("add.ten", addStage(10))
	r.Register("add.one", addStage(1))

	start := cambium.ActionFunc(func(ctx context.Context) (any, error) {
		return 5, nil
	})

	p, err := r.Chain(exec, start, "add.ten", "add.one")
	require.NoError(t, err)

	result, err := p.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 16, result)
}

func TestChain_UnknownStageFailsBeforeExecution(t *testing.T) {
	exec := cambium.New(memory.NewManager(memory.NewStore()))

	r := registry.New()
	called := false
	start := cambium.ActionFunc(func(ctx context.Context) (any, error) {
		called = true
		return nil, nil
	})

	_, err := r.Chain(exec, start, "missing")
	assert.Error(t, err)
	assert.False(t, called, "chain building must not execute anything")
}
