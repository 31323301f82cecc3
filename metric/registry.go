package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics contains the canonicalizer service metrics.
type Metrics struct {
	RecordsReceived    *prometheus.CounterVec
	RecordsPublished   *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	Canonicalizations  *prometheus.CounterVec
	ProcessingDuration *prometheus.HistogramVec
	ErrorsTotal        *prometheus.CounterVec
	NATSConnected      prometheus.Gauge
}

// NewMetrics creates the service metrics
func NewMetrics() *Metrics {
	return &Metrics{
		RecordsReceived: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rdf",
				Subsystem: "records",
				Name:      "received_total",
				Help:      "Total number of literal records received",
			},
			[]string{"service"},
		),

		RecordsPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rdf",
				Subsystem: "records",
				Name:      "published_total",
				Help:      "Total number of canonical records published",
			},
			[]string{"service", "subject"},
		),

		ValidationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rdf",
				Subsystem: "literals",
				Name:      "validation_failures_total",
				Help:      "Total number of literals rejected by datatype grammar",
			},
			[]string{"service", "datatype"},
		),

		Canonicalizations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rdf",
				Subsystem: "literals",
				Name:      "canonicalizations_total",
				Help:      "Total number of literals rewritten to canonical form",
			},
			[]string{"service", "datatype"},
		),

		ProcessingDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "rdf",
				Subsystem: "processing",
				Name:      "duration_seconds",
				Help:      "Record processing duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"service", "operation"},
		),

		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rdf",
				Subsystem: "errors",
				Name:      "total",
				Help:      "Total number of errors",
			},
			[]string{"service", "type"},
		),

		NATSConnected: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "rdf",
				Subsystem: "nats",
				Name:      "connected",
				Help:      "NATS connection status (0=disconnected, 1=connected)",
			},
		),
	}
}

// Registry owns the Prometheus registry the service exposes.
type Registry struct {
	registry *prometheus.Registry

	// Metrics are the core service metrics, registered at construction.
	Metrics *Metrics
}

// NewRegistry creates a registry with the service metrics and the Go
// runtime collectors registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		Metrics:  NewMetrics(),
	}

	r.registry.MustRegister(
		r.Metrics.RecordsReceived,
		r.Metrics.RecordsPublished,
		r.Metrics.ValidationFailures,
		r.Metrics.Canonicalizations,
		r.Metrics.ProcessingDuration,
		r.Metrics.ErrorsTotal,
		r.Metrics.NATSConnected,
	)

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// PrometheusRegistry returns the underlying Prometheus registry for the
// HTTP handler.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}
