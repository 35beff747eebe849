package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersIngested = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "flowlogix",
			Subsystem: "kafka_consumer",
			Name:      "orders_ingested_total",
			Help:      "Total number of successfully ingested orders",
		},
	)

	ordersFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "flowlogix",
			Subsystem: "kafka_consumer",
			Name:      "orders_failed_total",
			Help:      "Total number of failed order ingest attempts",
		},
	)

	ordersDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "flowlogix",
			Subsystem: "kafka_consumer",
			Name:      "orders_dlq_total",
			Help:      "Total number of orders written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "flowlogix",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	ingestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "flowlogix",
			Subsystem: "kafka_consumer",
			Name:      "ingest_duration_seconds",
			Help:      "Histogram of order ingest durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

var (
	listRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flowlogix",
			Subsystem: "http",
			Name:      "list_requests_total",
			Help:      "Total number of order list requests by outcome",
		},
		[]string{"outcome"},
	)

	listRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "flowlogix",
			Subsystem: "http",
			Name:      "list_request_duration_seconds",
			Help:      "Histogram of order list request durations",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersIngested,
		ordersFailed,
		ordersDLQ,
		commitErrors,
		ingestDuration,

		listRequestTotal,
		listRequestDuration,
	)
}
