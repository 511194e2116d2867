package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP request handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// CascadeDeletedRecords counts records removed by delete operations,
	// labelled by the entity the delete started from and the kind removed.
	CascadeDeletedRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cascade_deleted_records_total",
			Help: "Total number of records removed by delete operations",
		},
		[]string{"root", "entity"},
	)

	EntitiesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entities_created_total",
			Help: "Total number of franchises, branches and products created",
		},
		[]string{"entity"},
	)
)
