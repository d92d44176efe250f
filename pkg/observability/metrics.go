package observability

import (
	"context"
	"net/http"
	"time"

	"github.com/aretw0/atlas/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "atlas"

// Metrics records exercise runs and dataset loads.
type Metrics struct {
	Registry *prometheus.Registry

	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	records  *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "exercise_runs_total",
				Help:      "Total number of exercise runs",
			},
			[]string{"exercise", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "exercise_duration_seconds",
				Help:      "Duration of exercise runs",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"exercise"},
		),
		records: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "dataset_records",
				Help:      "Number of records in the last load of each dataset",
			},
			[]string{"dataset"},
		),
	}
	m.Registry.MustRegister(m.runs, m.duration, m.records, collectors.NewGoCollector())
	return m
}

// Observe records one finished exercise run.
func (m *Metrics) Observe(exercise string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.runs.WithLabelValues(exercise, status).Inc()
	m.duration.WithLabelValues(exercise).Observe(d.Seconds())
}

// Hooks returns lifecycle hooks feeding these metrics.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnExerciseFinish: func(_ context.Context, e *domain.ExerciseEvent) {
			m.Observe(e.Exercise, e.Duration, e.Err)
		},
		OnDatasetLoaded: func(_ context.Context, e *domain.DatasetEvent) {
			m.records.WithLabelValues(e.Dataset).Set(float64(e.Records))
		},
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
