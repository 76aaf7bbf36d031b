// Package metrics exposes Prometheus instrumentation for the dispatch
// pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors updated by the dispatch orchestrator.
type Metrics struct {
	// DispatchAttempts counts dispatch attempts by provider and terminal
	// outcome status.
	DispatchAttempts *prometheus.CounterVec

	// ProviderSendDuration observes the wall time of provider calls.
	ProviderSendDuration *prometheus.HistogramVec
}

// New registers and returns the dispatch collectors.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DispatchAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sms",
				Name:      "dispatch_attempts_total",
				Help:      "Dispatch attempts by provider and terminal outcome status.",
			},
			[]string{"provider", "status"},
		),
		ProviderSendDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "sms",
				Name:      "provider_send_duration_seconds",
				Help:      "Duration of outbound provider calls.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
	}

	reg.MustRegister(m.DispatchAttempts, m.ProviderSendDuration)
	return m
}
