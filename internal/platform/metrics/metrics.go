// Package metrics holds the Prometheus collectors shared by the services and the HTTP layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hawala"

// Results recorded on TransitionsTotal and TrackingLookups.
const (
	ResultSuccess  = "success"
	ResultConflict = "conflict"
	ResultInvalid  = "invalid"
	ResultHit      = "hit"
	ResultMiss     = "miss"
	ResultNotFound = "not_found"
)

var (
	// TransactionsCreated counts committed transactions per currency pair.
	TransactionsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_created_total",
			Help:      "Transactions committed, by source and target currency.",
		},
		[]string{"from", "to"},
	)

	// TransitionsTotal counts status change attempts by edge and outcome.
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transaction_transitions_total",
			Help:      "Status transition attempts by edge and result.",
		},
		[]string{"from", "to", "result"},
	)

	// ReferenceCodeCollisions counts unique violations on reference_code. A steadily
	// climbing value means the random suffix is too short for the traffic.
	ReferenceCodeCollisions = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reference_code_collisions_total",
			Help:      "Generated reference codes that collided with a stored one.",
		},
	)

	TrackingLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tracking_lookups_total",
			Help:      "Public tracking lookups by cache result.",
		},
		[]string{"result"},
	)

	EventPublishFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_failures_total",
			Help:      "Transaction events that could not be delivered, by publisher.",
		},
		[]string{"publisher"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)
)
