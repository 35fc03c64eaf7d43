package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutsSucceeded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_backend",
			Subsystem: "checkout",
			Name:      "orders_created_total",
			Help:      "Total number of orders created via checkout",
		},
	)

	checkoutsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_backend",
			Subsystem: "checkout",
			Name:      "failed_total",
			Help:      "Total number of failed checkout attempts",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutsSucceeded,
		checkoutsFailed,
	)
}
