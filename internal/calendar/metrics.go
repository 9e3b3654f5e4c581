package calendar

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	failureExtensionNotFound = "extension_not_found"
	failureConstruction      = "construction"
	failureConfigure         = "configure"
)

// Metrics records widget build outcomes
type Metrics struct {
	registry *prometheus.Registry
	built    *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewMetrics creates build metrics registered on a dedicated Prometheus registry
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		built: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "calwidget",
			Name:      "widgets_built_total",
			Help:      "Number of calendar widgets built, by variant.",
		}, []string{"variant"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "calwidget",
			Name:      "build_failures_total",
			Help:      "Number of failed calendar widget builds, by reason.",
		}, []string{"reason"}),
	}
	m.registry.MustRegister(m.built, m.failures)
	return m
}

// Gatherer exposes the metrics for scraping
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

func (m *Metrics) recordBuilt(variant string) {
	m.built.WithLabelValues(variant).Inc()
}

func (m *Metrics) recordFailure(err error) {
	m.failures.WithLabelValues(failureReason(err)).Inc()
}

func failureReason(err error) string {
	var ce *ConstructionError
	switch {
	case errors.Is(err, ErrExtensionNotFound):
		return failureExtensionNotFound
	case errors.As(err, &ce):
		return failureConstruction
	default:
		return failureConfigure
	}
}
