package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PenaltyPolicy selects how late payments are penalized.
type PenaltyPolicy string

const (
	// PenaltyPolicyFlat charges a fixed amount per late day.
	PenaltyPolicyFlat PenaltyPolicy = "flat"
	// PenaltyPolicyPercent charges a daily rate over the amount, capped.
	PenaltyPolicyPercent PenaltyPolicy = "percent"
)

func (p PenaltyPolicy) IsValid() bool {
	return p == PenaltyPolicyFlat || p == PenaltyPolicyPercent
}

// PaymentRecord is a payment logged by the payment processor.
//
// PolicyID and ProductCode are plain identifiers; they are never resolved
// against the policyholder or product stores.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Sequence keeps the processor's insertion order across reads.
//
// ProviderPaymentID/ProviderStatus are only set when a payment gateway
// collected the payment.
type PaymentRecord struct {
	ID             string          `json:"id"`
	Sequence       int64           `json:"sequence"`
	PolicyID       string          `json:"policy_id"`
	ProductCode    string          `json:"product_code"`
	Amount         decimal.Decimal `json:"amount"`
	PaidAt         time.Time       `json:"paid_at"`
	DueDate        time.Time       `json:"due_date"`
	PenaltyPolicy  PenaltyPolicy   `json:"penalty_policy"`
	PenaltyApplied decimal.Decimal `json:"penalty_applied"`

	ProviderPaymentID string `json:"provider_payment_id,omitempty"`
	ProviderStatus    string `json:"provider_status,omitempty"`
}

// IsLate reports whether the payment happened after its due date.
func (r PaymentRecord) IsLate() bool {
	return r.PaidAt.After(r.DueDate)
}

// Total is the amount plus any penalty charged.
func (r PaymentRecord) Total() decimal.Decimal {
	return r.Amount.Add(r.PenaltyApplied)
}

// DaysLate reports how many days after the due date the payment happened, or
// 0 for payments on or before it.
func (r PaymentRecord) DaysLate() int {
	if !r.IsLate() {
		return 0
	}
	return DaysLate(r.DueDate, r.PaidAt)
}

// DaysLate is the whole-day difference between the UTC dates of paidAt and
// dueDate, never less than 1. Callers check lateness first.
func DaysLate(dueDate, paidAt time.Time) int {
	days := epochDay(paidAt) - epochDay(dueDate)
	if days < 1 {
		return 1
	}
	return int(days)
}

// epochDay counts UTC calendar days since 1970-01-01, flooring before it.
func epochDay(t time.Time) int64 {
	const secondsPerDay = 24 * 60 * 60
	s := t.Unix()
	d := s / secondsPerDay
	if s%secondsPerDay < 0 {
		d--
	}
	return d
}
