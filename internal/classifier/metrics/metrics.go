package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the classifier module.
type Metrics struct {
	// Decisions by stack
	Decisions *prometheus.CounterVec

	// Flags raised, one increment per flag per package
	Flags *prometheus.CounterVec

	// Inputs rejected before classification, by error code
	ValidationFailures *prometheus.CounterVec

	EvaluateLatency prometheus.Histogram
}

// New registers the classifier metrics on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the classifier metrics on reg. Tests pass a
// fresh prometheus.NewRegistry() to avoid duplicate registration.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "parcelsort_decisions_total",
			Help: "Total classified packages by stack decision",
		}, []string{"decision"}), // decision: "STANDARD", "SPECIAL", "REJECTED"

		Flags: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "parcelsort_classification_flags_total",
			Help: "Total classification flags raised",
		}, []string{"flag"}),

		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "parcelsort_validation_failures_total",
			Help: "Total packages rejected at construction by error code",
		}, []string{"code"}),

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "parcelsort_evaluate_duration_seconds",
			Help:    "Duration of package validation and classification",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}
}

// IncrementDecision records a stack decision.
func (m *Metrics) IncrementDecision(decision string) {
	if m != nil {
		m.Decisions.WithLabelValues(decision).Inc()
	}
}

// IncrementFlag records a raised classification flag.
func (m *Metrics) IncrementFlag(flag string) {
	if m != nil {
		m.Flags.WithLabelValues(flag).Inc()
	}
}

// IncrementValidationFailure records an input rejected with the given code.
func (m *Metrics) IncrementValidationFailure(code string) {
	if m != nil {
		m.ValidationFailures.WithLabelValues(code).Inc()
	}
}

// ObserveEvaluateLatency records the total evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
