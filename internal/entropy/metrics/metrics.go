package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"augur/internal/entropy/models"
)

// Metrics holds the entropy subsystem's Prometheus collectors. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	Draws          *prometheus.CounterVec
	TierFailures   *prometheus.CounterVec
	BufferRefills  *prometheus.CounterVec
	BufferDepth    prometheus.Gauge
	BufferFallback prometheus.Counter
}

// New creates and registers the entropy metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Draws: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "augur_entropy_draws_total",
			Help: "Total number of index draws served, by provenance",
		}, []string{"provenance"}),
		TierFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "augur_entropy_tier_failures_total",
			Help: "Total number of failed tier attempts, by tier and failure category",
		}, []string{"tier", "category"}),
		BufferRefills: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "augur_entropy_buffer_refills_total",
			Help: "Total number of bulk buffer refills, by outcome",
		}, []string{"outcome"}),
		BufferDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "augur_entropy_buffer_depth",
			Help: "Current number of pre-computed draws waiting in the buffer",
		}),
		BufferFallback: factory.NewCounter(prometheus.CounterOpts{
			Name: "augur_entropy_buffer_fallback_draws_total",
			Help: "Total number of buffered draws served directly after a failed refill",
		}),
	}
}

func (m *Metrics) IncrementDraws(p models.Provenance) {
	if m == nil {
		return
	}
	m.Draws.WithLabelValues(string(p)).Inc()
}

func (m *Metrics) IncrementTierFailures(tier models.Provenance, category string) {
	if m == nil {
		return
	}
	m.TierFailures.WithLabelValues(string(tier), category).Inc()
}

func (m *Metrics) IncrementRefills(outcome string) {
	if m == nil {
		return
	}
	m.BufferRefills.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementBufferFallback() {
	if m == nil {
		return
	}
	m.BufferFallback.Inc()
}

func (m *Metrics) SetBufferDepth(n int) {
	if m == nil {
		return
	}
	m.BufferDepth.Set(float64(n))
}
