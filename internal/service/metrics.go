package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of orders created",
		},
	)

	orderDedupHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "orders",
			Name:      "dedup_hits_total",
			Help:      "Total number of order submissions answered with an existing order",
		},
		[]string{"source"},
	)

	statusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "orders",
			Name:      "tracking_status_changes_total",
			Help:      "Total number of administrative status changes",
		},
		[]string{"status"},
	)
)

var (
	gatewaySessions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "payments",
			Name:      "gateway_sessions_total",
			Help:      "Total number of gateway session attempts",
		},
		[]string{"result"},
	)

	gatewayCallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "payments",
			Name:      "gateway_callbacks_total",
			Help:      "Total number of gateway callbacks by outcome",
		},
		[]string{"kind", "result"},
	)

	manualPayments = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "payments",
			Name:      "manual_submissions_total",
			Help:      "Total number of manual payment submissions",
		},
		[]string{"method"},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		ordersCreated,
		orderDedupHits,
		statusChanges,

		gatewaySessions,
		gatewayCallbacks,
		manualPayments,
	)
}
