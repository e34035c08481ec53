/*
Package observability exports executor lifecycle metrics to Prometheus.

Metrics plugs into the executor through domain.Hooks:

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	exec := cambium.New(manager, cambium.WithHooks(metrics.Hooks()))

Exposing the metrics endpoint is the host's concern (promhttp, typically).
*/
package observability
