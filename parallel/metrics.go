package parallel

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "lvlmax"
	metricsSubsystem = "search"
)

// Item outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeCanceled = "canceled"
)

// Metrics holds the Prometheus collectors updated by BestLongestPath.
// All collectors are labeled by strategy name.
type Metrics struct {
	// ItemsTotal counts evaluated work items.
	// Labels: strategy, outcome (ok, error, canceled)
	ItemsTotal *prometheus.CounterVec

	// ItemDurationSeconds measures one Estimate call.
	// Labels: strategy
	ItemDurationSeconds *prometheus.HistogramVec

	// BestLength is the best path length (edges) of the last finished run.
	// Labels: strategy
	BestLength *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them on reg.
// Pass prometheus.NewRegistry() in tests to stay off the global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		ItemsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "items_total",
			Help:      "Work items evaluated by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		ItemDurationSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "item_duration_seconds",
			Help:      "Duration of a single path search",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"strategy"}),
		BestLength: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "best_length_edges",
			Help:      "Longest path length found by the last run",
		}, []string{"strategy"}),
	}
}

func (m *Metrics) observe(strategy, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.ItemsTotal.WithLabelValues(strategy, outcome).Inc()
	if outcome == OutcomeOK {
		m.ItemDurationSeconds.WithLabelValues(strategy).Observe(d.Seconds())
	}
}

func (m *Metrics) best(strategy string, length int) {
	if m == nil {
		return
	}
	m.BestLength.WithLabelValues(strategy).Set(float64(length))
}
