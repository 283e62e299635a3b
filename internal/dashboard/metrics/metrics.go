package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the dashboard analytics engine.
type Metrics struct {
	// Builder latency by builder name and outcome ("ok", "error")
	BuilderLatency *prometheus.HistogramVec

	// To-do nodes dropped because their record vanished or was resolved
	TodoSkipped *prometheus.CounterVec

	// Overview fan-out latency
	OverviewLatency prometheus.Histogram
}

// New creates a Metrics instance registered against reg. A nil reg uses the
// default prometheus registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		BuilderLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "approvaldash_builder_duration_seconds",
			Help:    "Duration of dashboard view builders by builder and outcome",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"builder", "outcome"}),

		TodoSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "approvaldash_todo_skipped_total",
			Help: "To-do nodes excluded from the list by reason",
		}, []string{"reason"}), // reason: "record_missing", "record_resolved"

		OverviewLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "approvaldash_overview_duration_seconds",
			Help:    "Duration of the full dashboard overview including every builder",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// ObserveBuilder records one builder run.
func (m *Metrics) ObserveBuilder(builder string, err error, d time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.BuilderLatency.WithLabelValues(builder, outcome).Observe(d.Seconds())
}

// IncrementTodoSkipped records a to-do node dropped from the list.
func (m *Metrics) IncrementTodoSkipped(reason string) {
	if m != nil {
		m.TodoSkipped.WithLabelValues(reason).Inc()
	}
}

// ObserveOverview records the total overview duration.
func (m *Metrics) ObserveOverview(d time.Duration) {
	if m != nil {
		m.OverviewLatency.Observe(d.Seconds())
	}
}
