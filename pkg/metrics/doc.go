/*
Package metrics exposes Prometheus metrics for the Plum agent.

Collectors are package-level variables registered in init and updated
directly by the owning components:

	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.ReconcileDuration)
	metrics.ReconcileCyclesTotal.Inc()

The /metrics endpoint is served only when the agent is started with a
metrics address; the agent is otherwise network-silent apart from its
controller traffic.
*/
package metrics
