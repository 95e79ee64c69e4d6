// Package metrics holds the Prometheus instruments used across the
// service. Collectors register with the global registry, so importing this
// package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ContactsStoredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contacts_stored_total",
			Help: "Cumulative number of contact submissions stored.",
		})

	ContactsRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contacts_rejected_total",
			Help: "Cumulative number of submissions rejected by validation.",
		})

	SinkDeliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sink_deliveries_total",
			Help: "Cumulative sink delivery attempts by sink and outcome.",
		},
		[]string{"sink", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		ContactsStoredTotal,
		ContactsRejectedTotal,
		SinkDeliveriesTotal,
	)
}
