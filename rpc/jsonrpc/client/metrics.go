package client

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	// MetricsSubsystem is a subsystem shared by all metrics exposed by this
	// package.
	MetricsSubsystem = "rpc_subscription"
)

// Metrics contains metrics exposed by this package.
type Metrics struct {
	// Number of reconnect attempts made after an unexpected disconnect.
	Reconnects metrics.Counter
	// Number of notifications delivered to the caller.
	Notifications metrics.Counter
	// Number of notifications dropped by the caller-supplied filter.
	FilteredNotifications metrics.Counter
}

// PrometheusMetrics returns Metrics built using Prometheus client library.
// Optionally, labels can be provided along with their values ("foo",
// "fooValue").
func PrometheusMetrics(namespace string, labelsAndValues ...string) *Metrics {
	labels := []string{}
	for i := 0; i < len(labelsAndValues); i += 2 {
		labels = append(labels, labelsAndValues[i])
	}
	return &Metrics{
		Reconnects: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "reconnects_total",
			Help:      "Number of reconnect attempts made after an unexpected disconnect.",
		}, labels).With(labelsAndValues...),
		Notifications: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "notifications_total",
			Help:      "Number of notifications delivered to the caller.",
		}, labels).With(labelsAndValues...),
		FilteredNotifications: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "filtered_notifications_total",
			Help:      "Number of notifications dropped by the caller-supplied filter.",
		}, labels).With(labelsAndValues...),
	}
}

// NopMetrics returns no-op Metrics.
func NopMetrics() *Metrics {
	return &Metrics{
		Reconnects:            discard.NewCounter(),
		Notifications:         discard.NewCounter(),
		FilteredNotifications: discard.NewCounter(),
	}
}
