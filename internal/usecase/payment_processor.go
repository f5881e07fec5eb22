package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"seguro_xpto/internal/domain/entities"
	"seguro_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	flatPenaltyPerDay = decimal.NewFromInt(500)
	percentDailyRate  = decimal.RequireFromString("0.005")
	percentPenaltyCap = decimal.RequireFromString("0.15")
)

// DefaultReminderHorizonDays is the reminder window used when callers do not
// pick one.
const DefaultReminderHorizonDays = 7

// MaxReminderHorizonDays bounds the reminder window accepted from callers.
const MaxReminderHorizonDays = 36500

// PaymentInput is what a caller supplies to record a payment.
// PaidAt defaults to now when nil.
type PaymentInput struct {
	PolicyID      string
	ProductCode   string
	Amount        decimal.Decimal
	DueDate       time.Time
	PaidAt        *time.Time
	PenaltyPolicy entities.PenaltyPolicy

	ProviderPaymentID string
	ProviderStatus    string
}

// PaymentProcessor records payments against due dates and computes late
// penalties. It is the only component allowed to compute penalties.
//
// The history is append-only. ProcessPayment validates, computes and appends
// under a single lock so concurrent callers never observe partial records.
type PaymentProcessor struct {
	mu      sync.Mutex
	history interfaces.IPaymentRecordRepository
	now     func() time.Time
	lastSeq int64
}

type PaymentProcessorOption func(*PaymentProcessor)

// WithClock replaces the wall clock used for defaults and reminder windows.
func WithClock(now func() time.Time) PaymentProcessorOption {
	return func(p *PaymentProcessor) {
		p.now = now
	}
}

func NewPaymentProcessor(history interfaces.IPaymentRecordRepository, opts ...PaymentProcessorOption) *PaymentProcessor {
	p := &PaymentProcessor{
		history: history,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *PaymentProcessor) ProcessPayment(ctx context.Context, in PaymentInput) (entities.PaymentRecord, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !in.Amount.IsPositive() {
		log.Printf("[payment][processor] rejected non-positive amount policy_id=%s product_code=%s amount=%s", in.PolicyID, in.ProductCode, in.Amount)
		return entities.PaymentRecord{}, entities.ErrAmountNotPositive
	}

	paidAt := p.now()
	if in.PaidAt != nil {
		paidAt = in.PaidAt.UTC()
	}
	dueDate := in.DueDate.UTC()

	penalty, err := ComputePenalty(dueDate, paidAt, in.Amount, in.PenaltyPolicy)
	if err != nil {
		log.Printf("[payment][processor] penalty computation failed policy_id=%s policy=%q err=%v", in.PolicyID, in.PenaltyPolicy, err)
		return entities.PaymentRecord{}, err
	}

	rec := entities.PaymentRecord{
		ID:                uuid.NewString(),
		Sequence:          p.nextSequence(),
		PolicyID:          in.PolicyID,
		ProductCode:       in.ProductCode,
		Amount:            in.Amount,
		PaidAt:            paidAt,
		DueDate:           dueDate,
		PenaltyPolicy:     in.PenaltyPolicy,
		PenaltyApplied:    penalty,
		ProviderPaymentID: in.ProviderPaymentID,
		ProviderStatus:    in.ProviderStatus,
	}
	if err := p.history.Append(ctx, rec); err != nil {
		log.Printf("[payment][processor] history append failed policy_id=%s payment_id=%s err=%v", rec.PolicyID, rec.ID, err)
		return entities.PaymentRecord{}, err
	}
	log.Printf("[payment][processor] recorded policy_id=%s product_code=%s amount=%s penalty=%s", rec.PolicyID, rec.ProductCode, rec.Amount, rec.PenaltyApplied)
	return rec, nil
}

// ComputePenalty is the processor-bound form of the package-level function.
func (p *PaymentProcessor) ComputePenalty(dueDate, paidAt time.Time, amount decimal.Decimal, policy entities.PenaltyPolicy) (decimal.Decimal, error) {
	return ComputePenalty(dueDate, paidAt, amount, policy)
}

// UpcomingReminders returns late payments whose due date falls inside
// [now, now+horizonDays], in insertion order.
//
// Only records already paid after their due date qualify; unpaid dues are not
// tracked by the processor at all.
func (p *PaymentProcessor) UpcomingReminders(ctx context.Context, horizonDays int) ([]entities.PaymentRecord, error) {
	now := p.now()
	horizon := now.AddDate(0, 0, horizonDays)

	return p.filter(ctx, func(r entities.PaymentRecord) bool {
		return !r.DueDate.Before(now) && !r.DueDate.After(horizon) && r.IsLate()
	})
}

// OverdueWithPenalties returns late payments that were charged a penalty,
// in insertion order.
func (p *PaymentProcessor) OverdueWithPenalties(ctx context.Context) ([]entities.PaymentRecord, error) {
	return p.filter(ctx, func(r entities.PaymentRecord) bool {
		return r.IsLate() && r.PenaltyApplied.IsPositive()
	})
}

// History returns every recorded payment in insertion order.
func (p *PaymentProcessor) History(ctx context.Context) ([]entities.PaymentRecord, error) {
	return p.filter(ctx, func(entities.PaymentRecord) bool { return true })
}

func (p *PaymentProcessor) filter(ctx context.Context, keep func(entities.PaymentRecord) bool) ([]entities.PaymentRecord, error) {
	records, err := p.history.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.PaymentRecord, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// nextSequence must be called with mu held.
func (p *PaymentProcessor) nextSequence() int64 {
	seq := p.now().UnixNano()
	if seq <= p.lastSeq {
		seq = p.lastSeq + 1
	}
	p.lastSeq = seq
	return seq
}

// ComputePenalty returns the late fee for a payment.
//
// A payment at or before its due date costs nothing whatever the policy, so
// an unknown policy only fails late payments. Otherwise days late is
// the UTC calendar-day difference, floored at 1, and:
//   - flat:    500 per late day
//   - percent: 0.5% of amount per late day, capped at 15% of amount, rounded to cents
func ComputePenalty(dueDate, paidAt time.Time, amount decimal.Decimal, policy entities.PenaltyPolicy) (decimal.Decimal, error) {
	if !paidAt.After(dueDate) {
		return decimal.Zero, nil
	}
	if !policy.IsValid() {
		return decimal.Zero, entities.ErrUnknownPenaltyPolicy
	}

	days := decimal.NewFromInt(int64(entities.DaysLate(dueDate, paidAt)))
	switch policy {
	case entities.PenaltyPolicyFlat:
		return flatPenaltyPerDay.Mul(days), nil
	default:
		raw := amount.Mul(percentDailyRate).Mul(days)
		capped := decimal.Min(raw, amount.Mul(percentPenaltyCap))
		return capped.Round(2), nil
	}
}
