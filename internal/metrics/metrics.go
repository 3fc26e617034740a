package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "profit_tracker"

// Resultados possíveis de uma chamada a provedor ou de uma agregação
const (
	OutcomeSuccess      = "success"
	OutcomeError        = "error"
	OutcomeDegraded     = "degraded"
	OutcomeUnconfigured = "unconfigured"
)

var (
	// ProviderRequestsTotal conta as tentativas HTTP feitas a cada provedor
	ProviderRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "provider",
		Name:      "requests_total",
		Help:      "Total number of upstream provider HTTP attempts",
	}, []string{"provider", "outcome"})

	// ProviderRequestDuration mede a duração de cada tentativa
	ProviderRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "provider",
		Name:      "request_duration_seconds",
		Help:      "Upstream provider HTTP attempt duration in seconds",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"provider"})

	// ProviderRetriesTotal conta as retentativas por provedor
	ProviderRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "provider",
		Name:      "retries_total",
		Help:      "Total number of retried upstream provider attempts",
	}, []string{"provider"})

	// AggregationsTotal conta as agregações por resultado
	AggregationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "aggregation",
		Name:      "total",
		Help:      "Total number of daily aggregations",
	}, []string{"outcome"})

	// ProviderBranchOutcomes conta o estado final de cada provedor dentro de uma agregação
	ProviderBranchOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "aggregation",
		Name:      "provider_outcomes_total",
		Help:      "Per-provider outcome inside daily aggregations",
	}, []string{"provider", "outcome"})

	// ActiveSessions é o número de sessões de custo em memória
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "session",
		Name:      "active",
		Help:      "Number of in-memory cost assumption sessions",
	})
)

// ObserveProviderAttempt registra uma tentativa HTTP a um provedor
func ObserveProviderAttempt(provider string, attempt int, started time.Time, err error) {
	ProviderRequestDuration.WithLabelValues(provider).Observe(time.Since(started).Seconds())

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	ProviderRequestsTotal.WithLabelValues(provider, outcome).Inc()

	if attempt > 0 {
		ProviderRetriesTotal.WithLabelValues(provider).Inc()
	}
}
