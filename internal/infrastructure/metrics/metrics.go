package metrics

import (
	"seguro_xpto/internal/domain/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	PaymentsRecorded *prometheus.CounterVec
	PenaltiesApplied *prometheus.CounterVec
	PenaltyAmount    *prometheus.HistogramVec

	ChargedNotRecorded prometheus.Counter
}

// New registers the billing collectors on reg. Tests pass a fresh
// prometheus.NewRegistry() to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PaymentsRecorded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "seguro_payments_recorded_total",
			Help: "Total number of payments recorded by penalty policy",
		}, []string{"policy"}),
		PenaltiesApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "seguro_penalties_applied_total",
			Help: "Total number of payments charged a late penalty",
		}, []string{"policy"}),
		PenaltyAmount: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "seguro_penalty_amount",
			Help:    "Late penalty charged per payment, in currency units",
			Buckets: []float64{10, 50, 100, 500, 1000, 2500, 5000, 10000, 50000},
		}, []string{"policy"}),
		ChargedNotRecorded: factory.NewCounter(prometheus.CounterOpts{
			Name: "seguro_payments_charged_not_recorded_total",
			Help: "Payments approved by the gateway whose record could not be stored",
		}),
	}
}

// ObservePayment is nil-safe so use cases can run without metrics.
func (m *Metrics) ObservePayment(rec entities.PaymentRecord) {
	if m == nil {
		return
	}
	policy := string(rec.PenaltyPolicy)
	m.PaymentsRecorded.WithLabelValues(policy).Inc()
	if rec.PenaltyApplied.IsPositive() {
		m.PenaltiesApplied.WithLabelValues(policy).Inc()
		m.PenaltyAmount.WithLabelValues(policy).Observe(rec.PenaltyApplied.InexactFloat64())
	}
}

// ObserveChargedNotRecorded counts gateway charges left without a record.
func (m *Metrics) ObserveChargedNotRecorded() {
	if m == nil {
		return
	}
	m.ChargedNotRecorded.Inc()
}
