// Package metrics holds the process wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smarttask",
		Name:      "messages_sent_total",
		Help:      "Messages sent, by message type.",
	}, []string{"type"})

	NotificationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smarttask",
		Name:      "notifications_created_total",
		Help:      "Notifications created, by notification type.",
	}, []string{"type"})

	RealtimeEvents = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "smarttask",
		Name:      "realtime_events_delivered_total",
		Help:      "Realtime message events written to open streams.",
	})

	Degraded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smarttask",
		Name:      "degraded_results_total",
		Help:      "Fail-soft operations that returned a fallback, by path.",
	}, []string{"path"})

	AICompletions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smarttask",
		Name:      "ai_completions_total",
		Help:      "AI completions, by provider and outcome.",
	}, []string{"provider", "outcome"})
)
