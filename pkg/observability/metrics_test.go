package observability_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cambium"
	"github.com/aretw0/cambium/pkg/adapters/memory"
	"github.com/aretw0/cambium/pkg/domain"
	"github.com/aretw0/cambium/pkg/observability"
)

func TestMetrics_CountOutcomes(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	exec := cambium.New(memory.NewManager(memory.NewStore()),
		cambium.WithHooks(metrics.Hooks()))

	_, err := exec.Execute(ctx, cambium.ActionFunc(func(ctx context.Context) (any, error) {
		return "ok", nil
	}))
	require.NoError(t, err)

	_, err = exec.Execute(ctx, cambium.ActionFunc(func(ctx context.Context) (any, error) {
		return nil, domain.NewNotFound("missing")
	}))
	require.Error(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	counters := make(map[string]float64)
	for _, f := range families {
		for _, m := range f.GetMetric() {
			if m.GetCounter() != nil {
				counters[f.GetName()] += m.GetCounter().GetValue()
			}
		}
	}

	assert.Equal(t, 2.0, counters["cambium_actions_total"], "both invocations counted")
	assert.Equal(t, 1.0, counters["cambium_tx_commits_total"])
	assert.Equal(t, 1.0, counters["cambium_tx_rollbacks_total"])

	series, err := testutil.GatherAndCount(reg, "cambium_actions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series, "distinct outcome labels produce distinct series")
}
