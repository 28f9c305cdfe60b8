package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Event loop metrics
	EventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatrelay_events_total",
			Help: "Inbound events processed by the event loop",
		},
		[]string{"event"},
	)

	EventFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatrelay_event_failures_total",
			Help: "Inbound events answered with a failure",
		},
		[]string{"event", "kind"},
	)

	EventDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chatrelay_event_duration_seconds",
			Help:    "Time spent handling one inbound event",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"event"},
	)

	QueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chatrelay_event_queue_depth",
			Help: "Requests waiting in the event loop channel",
		},
	)

	// Business metrics
	MessagesPosted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatrelay_messages_posted_total",
			Help: "Messages persisted",
		},
	)

	MessageRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatrelay_message_retries_total",
			Help: "Sends resolved to an already persisted message through their tempID",
		},
	)

	CallTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatrelay_call_transitions_total",
			Help: "Call views reaching a status",
		},
		[]string{"status"},
	)

	SignalsRelayed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatrelay_signals_relayed_total",
			Help: "WebRTC payloads relayed between peers",
		},
		[]string{"kind"},
	)

	DroppedDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatrelay_dropped_deliveries_total",
			Help: "Outbound events a connection rejected",
		},
		[]string{"reason"},
	)

	// Presence metrics
	Connections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chatrelay_connections",
			Help: "Live subscribed connections",
		},
	)

	OnlineUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chatrelay_online_users",
			Help: "Users with at least one live connection",
		},
	)

	// Process metrics
	ProcessRSS = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chatrelay_process_rss_bytes",
			Help: "Resident memory of the process",
		},
	)

	ProcessCPU = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chatrelay_process_cpu_percent",
			Help: "CPU usage of the process",
		},
	)

	WorkerRestarts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatrelay_worker_restarts_total",
			Help: "Supervised workers restarted after a crash",
		},
		[]string{"worker"},
	)
)
