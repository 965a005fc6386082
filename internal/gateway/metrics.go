package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatewayRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "gateway",
		Name:      "requests_total",
		Help:      "Total number of payment gateway calls by result.",
	}, []string{"result"})

	gatewayDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "order_service",
		Subsystem: "gateway",
		Name:      "request_duration_seconds",
		Help:      "Payment gateway call latencies in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)
