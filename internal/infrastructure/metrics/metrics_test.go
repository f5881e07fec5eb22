package metrics

import (
	"testing"

	"seguro_xpto/internal/domain/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestObservePayment(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObservePayment(entities.PaymentRecord{PenaltyPolicy: entities.PenaltyPolicyFlat, PenaltyApplied: decimal.Zero})
	m.ObservePayment(entities.PaymentRecord{PenaltyPolicy: entities.PenaltyPolicyFlat, PenaltyApplied: decimal.NewFromInt(2500)})
	m.ObservePayment(entities.PaymentRecord{PenaltyPolicy: entities.PenaltyPolicyPercent, PenaltyApplied: decimal.NewFromInt(1000)})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PaymentsRecorded.WithLabelValues("flat")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PenaltiesApplied.WithLabelValues("flat")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PenaltiesApplied.WithLabelValues("percent")))
}

func TestObservePayment_NilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObservePayment(entities.PaymentRecord{PenaltyApplied: decimal.NewFromInt(1)})
		m.ObserveChargedNotRecorded()
	})
}

func TestObserveChargedNotRecorded(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveChargedNotRecorded()
	m.ObserveChargedNotRecorded()
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ChargedNotRecorded))
}
