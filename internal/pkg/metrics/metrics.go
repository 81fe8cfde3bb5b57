// Package metrics holds the prometheus collectors of the ordering service. They
// register with the default registry, which the HTTP server exposes on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordering",
		Subsystem: "negotiation",
		Name:      "transitions_total",
		Help:      "Total number of applied order transitions broken down by action and resulting status.",
	}, []string{"action", "status"})

	rejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordering",
		Subsystem: "negotiation",
		Name:      "rejections_total",
		Help:      "Total number of rejected order actions broken down by action and error kind.",
	}, []string{"action", "kind"})

	writeConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordering",
		Subsystem: "write",
		Name:      "conflicts_total",
		Help:      "Total number of optimistic-concurrency conflicts broken down by outcome.",
	}, []string{"outcome"})

	notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordering",
		Subsystem: "notifications",
		Name:      "published_total",
		Help:      "Total number of notification publish attempts broken down by type and result.",
	}, []string{"type", "result"})
)

func RecordTransition(action, status string) {
	transitions.WithLabelValues(action, status).Inc()
}

func RecordRejection(action, kind string) {
	if kind == "" {
		kind = "other"
	}
	rejections.WithLabelValues(action, kind).Inc()
}

// RecordWriteConflict counts a CAS conflict; outcome is "retried" or "exhausted".
func RecordWriteConflict(outcome string) {
	writeConflicts.WithLabelValues(outcome).Inc()
}

func RecordPublish(notificationType string, ok bool) {
	result := "failed"
	if ok {
		result = "delivered"
	}
	notifications.WithLabelValues(notificationType, result).Inc()
}
