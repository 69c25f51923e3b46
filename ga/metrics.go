package ga

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors updated by the engine and the
// repairer. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Generations        prometheus.Counter
	BestCost           prometheus.Gauge
	RepairClears       prometheus.Counter
	GenerationDuration prometheus.Histogram
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Generations: f.NewCounter(prometheus.CounterOpts{
			Name: "qbftp_ga_generations_total",
			Help: "Generations completed across all runs",
		}),
		BestCost: f.NewGauge(prometheus.GaugeOpts{
			Name: "qbftp_ga_best_cost",
			Help: "Objective value of the best solution of the latest run",
		}),
		RepairClears: f.NewCounter(prometheus.CounterOpts{
			Name: "qbftp_ga_repair_cleared_loci_total",
			Help: "Loci cleared by feasibility repair",
		}),
		GenerationDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "qbftp_ga_generation_duration_seconds",
			Help:    "Wall time per generation",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}

func (m *Metrics) observeGeneration(d time.Duration) {
	if m == nil {
		return
	}
	m.Generations.Inc()
	m.GenerationDuration.Observe(d.Seconds())
}

func (m *Metrics) setBest(v float64) {
	if m == nil {
		return
	}
	m.BestCost.Set(v)
}

func (m *Metrics) addRepairClears(k int) {
	if m == nil || k == 0 {
		return
	}
	m.RepairClears.Add(float64(k))
}
