package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	errorResponses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "http",
			Name:      "error_responses_total",
			Help:      "Total number of error responses by error kind",
		},
		[]string{"kind"},
	)

	callbackRedirects = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "http",
			Name:      "callback_redirects_total",
			Help:      "Total number of gateway callbacks redirected to the storefront",
		},
		[]string{"result"},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		errorResponses,
		callbackRedirects,
	)
}
