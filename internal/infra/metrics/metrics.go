// Package metrics tracks transaction outcomes for the HTTP facade.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry *prometheus.Registry
	applied  *prometheus.CounterVec
	rejected *prometheus.CounterVec
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		applied: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "transactions_applied_total",
			Help: "Transactions accepted by the engine, by kind.",
		}, []string{"kind"}),
		rejected: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "transactions_rejected_total",
			Help: "Transactions rejected with a reportable error, by reason.",
		}, []string{"reason"}),
	}
}

func (c *Collector) Applied(kind string) {
	c.applied.WithLabelValues(kind).Inc()
}

func (c *Collector) Rejected(reason string) {
	c.rejected.WithLabelValues(reason).Inc()
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
