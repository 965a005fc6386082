package sweeper

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersExpired = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "sweeper",
			Name:      "orders_expired_total",
			Help:      "Total number of orders moved to EXPIRED",
		},
	)

	ordersPurged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "sweeper",
			Name:      "orders_purged_total",
			Help:      "Total number of expired orders deleted",
		},
	)

	sweepErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "sweeper",
			Name:      "errors_total",
			Help:      "Total number of failed sweep steps",
		},
		[]string{"step"},
	)

	sweepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_service",
			Subsystem: "sweeper",
			Name:      "run_duration_seconds",
			Help:      "Histogram of sweep durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		ordersExpired,
		ordersPurged,
		sweepErrors,
		sweepDuration,
	)
}
