package events

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	eventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Total number of order events written to Kafka",
		},
		[]string{"type"},
	)

	eventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "events",
			Name:      "failed_total",
			Help:      "Total number of order events that could not be written",
		},
	)

	publishDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_service",
			Subsystem: "events",
			Name:      "publish_duration_seconds",
			Help:      "Histogram of event batch write durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		eventsPublished,
		eventsFailed,
		publishDuration,
	)
}
