package metrics

import "github.com/prometheus/client_golang/prometheus"

// ScoringMetrics exposes counters/histograms for lead scoring flows.
type ScoringMetrics struct {
	scoredTotal     *prometheus.CounterVec
	llmFailureTotal *prometheus.CounterVec
	scoringLatency  *prometheus.HistogramVec
}

func NewScoringMetrics(reg prometheus.Registerer) *ScoringMetrics {
	m := &ScoringMetrics{
		scoredTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadscore",
			Subsystem: "scoring",
			Name:      "scored_total",
			Help:      "Total leads scored, by strategy and resulting category",
		}, []string{"strategy", "category"}),
		llmFailureTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadscore",
			Subsystem: "scoring",
			Name:      "llm_failure_total",
			Help:      "Total LLM scoring failures that triggered the fallback",
		}, []string{"reason"}),
		scoringLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "leadscore",
			Subsystem: "scoring",
			Name:      "latency_seconds",
			Help:      "Latency of the full scoring decision",
			Buckets:   prometheus.DefBuckets,
		}, []string{"strategy"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.scoredTotal, m.llmFailureTotal, m.scoringLatency)
	return m
}

func (m *ScoringMetrics) ObserveScored(strategy, category string) {
	if m == nil {
		return
	}
	m.scoredTotal.WithLabelValues(strategy, category).Inc()
}

func (m *ScoringMetrics) ObserveLLMFailure(reason string) {
	if m == nil {
		return
	}
	m.llmFailureTotal.WithLabelValues(reason).Inc()
}

func (m *ScoringMetrics) ObserveScoringLatency(strategy string, seconds float64) {
	if m == nil {
		return
	}
	m.scoringLatency.WithLabelValues(strategy).Observe(seconds)
}
