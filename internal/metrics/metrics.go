package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "signer"

// Service owns the prometheus registry of the signer. All methods are safe on a nil receiver
// so components can be used without metrics (CLI, tests).
type Service struct {
	Registry *prometheus.Registry

	apiCalls      *prometheus.CounterVec
	apiLatency    *prometheus.HistogramVec
	confirmations *prometheus.CounterVec
	signatures    *prometheus.CounterVec
	pending       prometheus.Gauge
}

func New() (*Service, error) {
	registry := prometheus.NewRegistry()

	s := &Service{
		Registry: registry,
		apiCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "network_api",
			Name:      "calls_total",
			Help:      "Total calls to the network API by endpoint and status",
		}, []string{"endpoint", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "network_api",
			Name:      "call_duration_seconds",
			Help:      "Network API call duration",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		confirmations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "confirmation",
			Name:      "decisions_total",
			Help:      "Total confirmation decisions by kind and outcome",
		}, []string{"kind", "outcome"}),
		signatures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "signer",
			Name:      "signatures_total",
			Help:      "Total signatures produced by kind",
		}, []string{"kind"}),
		pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "confirmation",
			Name:      "pending",
			Help:      "Confirmations currently waiting for a decision",
		}),
	}

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		s.apiCalls,
		s.apiLatency,
		s.confirmations,
		s.signatures,
		s.pending,
	} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// ObserveAPICall records one network API call.
func (s *Service) ObserveAPICall(endpoint string, started time.Time, err error) {
	if s == nil {
		return
	}

	s.apiCalls.WithLabelValues(endpoint, ClassifyError(err)).Inc()
	s.apiLatency.WithLabelValues(endpoint).Observe(time.Since(started).Seconds())
}

// ObserveDecision records an approve or reject decision.
func (s *Service) ObserveDecision(kind string, approved bool) {
	if s == nil {
		return
	}

	outcome := "rejected"
	if approved {
		outcome = "approved"
	}

	s.confirmations.WithLabelValues(kind, outcome).Inc()
}

// ObserveSignature records a produced signature.
func (s *Service) ObserveSignature(kind string) {
	if s == nil {
		return
	}

	s.signatures.WithLabelValues(kind).Inc()
}

// SetPending sets the number of confirmations waiting for a decision.
func (s *Service) SetPending(n int) {
	if s == nil {
		return
	}

	s.pending.Set(float64(n))
}

// ClassifyError classifies a network error into a metrics label.
func ClassifyError(err error) string {
	if err == nil {
		return "ok"
	}

	lower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline exceeded"):
		return "timeout"
	case strings.Contains(lower, "429") || strings.Contains(lower, "too many requests"):
		return "rate_limited"
	case strings.Contains(lower, "status 5"):
		return "server_error"
	case strings.Contains(lower, "connection refused") || strings.Contains(lower, "no such host") ||
		strings.Contains(lower, "connection reset") || strings.Contains(lower, "eof"):
		return "network_error"
	default:
		return "client_error"
	}
}
