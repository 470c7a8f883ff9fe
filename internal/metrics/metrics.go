// Package metrics holds the Prometheus collectors the service exports on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	Registry         *prometheus.Registry
	SlotsRelocated   prometheus.Counter
	DragsCancelled   prometheus.Counter
	PreviewsRendered *prometheus.CounterVec
	SlotsPublished   prometheus.Counter
	ExportsCreated   *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		SlotsRelocated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fluxora",
			Name:      "slots_relocated_total",
			Help:      "Scheduled posts moved to another calendar cell.",
		}),
		DragsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fluxora",
			Name:      "drags_cancelled_total",
			Help:      "Drags released outside the calendar grid.",
		}),
		PreviewsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fluxora",
			Name:      "previews_rendered_total",
			Help:      "Platform previews rendered.",
		}, []string{"platform"}),
		SlotsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fluxora",
			Name:      "slots_published_total",
			Help:      "Scheduled posts marked published by the sweep job.",
		}),
		ExportsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fluxora",
			Name:      "calendar_exports_total",
			Help:      "Calendar exports by delivery mode.",
		}, []string{"mode"}),
	}
	m.Registry.MustRegister(
		m.SlotsRelocated,
		m.DragsCancelled,
		m.PreviewsRendered,
		m.SlotsPublished,
		m.ExportsCreated,
	)
	return m
}
