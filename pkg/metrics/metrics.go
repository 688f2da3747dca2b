package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Reconciler metrics
	ReconcileCyclesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "plum_agent_reconcile_cycles_total",
			Help: "Total number of reconcile ticks executed",
		},
	)

	ReconcileDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "plum_agent_reconcile_duration_seconds",
			Help:    "Duration of a single reconcile tick in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	InstancesRunning = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "plum_agent_instances_running",
			Help: "Number of live child processes tracked by the agent",
		},
	)

	InstanceStartsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "plum_agent_instance_starts_total",
			Help: "Total number of instance starts",
		},
	)

	InstanceStopsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plum_agent_instance_stops_total",
			Help: "Total number of instance terminations by phase",
		},
		[]string{"phase"},
	)

	// Artifact metrics
	ArtifactDownloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plum_agent_artifact_downloads_total",
			Help: "Total number of artifact downloads by outcome",
		},
		[]string{"outcome"},
	)

	// Controller call metrics
	ControllerRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plum_agent_controller_requests_total",
			Help: "Total number of controller HTTP calls by path and status",
		},
		[]string{"path", "status"},
	)

	// Event nudger metrics
	NudgesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "plum_agent_nudges_total",
			Help: "Total number of stream nudges that woke the reconciler",
		},
	)

	StreamReconnectsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "plum_agent_stream_reconnects_total",
			Help: "Total number of event stream reconnect attempts",
		},
	)

	// Task-stream worker metrics
	TasksDispatchedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plum_worker_tasks_dispatched_total",
			Help: "Total number of task dispatches by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(ReconcileCyclesTotal)
	prometheus.MustRegister(ReconcileDuration)
	prometheus.MustRegister(InstancesRunning)
	prometheus.MustRegister(InstanceStartsTotal)
	prometheus.MustRegister(InstanceStopsTotal)
	prometheus.MustRegister(ArtifactDownloadsTotal)
	prometheus.MustRegister(ControllerRequestsTotal)
	prometheus.MustRegister(NudgesTotal)
	prometheus.MustRegister(StreamReconnectsTotal)
	prometheus.MustRegister(TasksDispatchedTotal)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve starts a metrics listener on addr. It returns immediately; the
// listener runs until the process exits.
func Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	go func() {
		_ = http.ListenAndServe(addr, mux)
	}()
}
