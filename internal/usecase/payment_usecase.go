package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"seguro_xpto/internal/domain/entities"
	"seguro_xpto/internal/infrastructure/metrics"
	"seguro_xpto/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidGatewayPayload          = errors.New("invalid payment gateway payload")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
	ErrPaymentNotApproved             = errors.New("payment not approved by gateway")
	ErrPaymentChargedNotRecorded      = errors.New("payment charged by gateway but not recorded")
)

// ChargedNotRecordedError is returned when the gateway approved a charge but
// the payment history rejected the record. ProviderPaymentID identifies the
// charge for reconciliation or refund.
type ChargedNotRecordedError struct {
	ProviderPaymentID string
	Err               error
}

func (e *ChargedNotRecordedError) Error() string {
	return fmt.Sprintf("%v provider_payment_id=%s: %v", ErrPaymentChargedNotRecorded, e.ProviderPaymentID, e.Err)
}

func (e *ChargedNotRecordedError) Unwrap() []error {
	return []error{ErrPaymentChargedNotRecorded, e.Err}
}

// PayCommand is a payment to be recorded. GatewayPayload carries extra
// provider fields (payment_method_id, payer, token...) and is only used when
// a gateway is configured.
type PayCommand struct {
	PolicyID       string
	ProductCode    string
	Amount         decimal.Decimal
	DueDate        time.Time
	PaidAt         *time.Time
	PenaltyPolicy  entities.PenaltyPolicy
	GatewayPayload json.RawMessage
}

// IPaymentUseCase is the application entry point for payments.

type IPaymentUseCase interface {
	Pay(ctx context.Context, cmd PayCommand) (entities.PaymentRecord, error)
	QuotePenalty(ctx context.Context, dueDate, paidAt time.Time, amount decimal.Decimal, policy entities.PenaltyPolicy) (decimal.Decimal, error)
	UpcomingReminders(ctx context.Context, horizonDays int) ([]entities.PaymentRecord, error)
	OverdueWithPenalties(ctx context.Context) ([]entities.PaymentRecord, error)
}

type PaymentUseCase struct {
	processor *PaymentProcessor
	gateway   interfaces.IPaymentGateway
	metrics   *metrics.Metrics
	now       func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

// NewPaymentUseCase wires the processor with an optional gateway and metrics;
// both may be nil.
func NewPaymentUseCase(processor *PaymentProcessor, gateway interfaces.IPaymentGateway, m *metrics.Metrics) *PaymentUseCase {
	return &PaymentUseCase{
		processor: processor,
		gateway:   gateway,
		metrics:   m,
		now:       processor.now,
	}
}

func (u *PaymentUseCase) Pay(ctx context.Context, cmd PayCommand) (entities.PaymentRecord, error) {
	log.Printf("[payment][usecase] pay start policy_id=%s product_code=%s amount=%s policy=%s", cmd.PolicyID, cmd.ProductCode, cmd.Amount, cmd.PenaltyPolicy)
	if !cmd.Amount.IsPositive() {
		return entities.PaymentRecord{}, entities.ErrAmountNotPositive
	}

	in := PaymentInput{
		PolicyID:      cmd.PolicyID,
		ProductCode:   cmd.ProductCode,
		Amount:        cmd.Amount,
		DueDate:       cmd.DueDate,
		PaidAt:        cmd.PaidAt,
		PenaltyPolicy: cmd.PenaltyPolicy,
	}

	if u.gateway != nil {
		// Pin paid_at so the collected total matches the recorded penalty.
		paidAt := u.now()
		if cmd.PaidAt != nil {
			paidAt = cmd.PaidAt.UTC()
		}
		in.PaidAt = &paidAt

		providerID, providerStatus, err := u.collect(ctx, cmd, paidAt)
		if err != nil {
			return entities.PaymentRecord{}, err
		}
		in.ProviderPaymentID = providerID
		in.ProviderStatus = providerStatus
	}

	rec, err := u.processor.ProcessPayment(ctx, in)
	if err != nil {
		if in.ProviderPaymentID != "" {
			log.Printf("[payment][usecase] CHARGED NOT RECORDED policy_id=%s product_code=%s provider_payment_id=%s err=%v", cmd.PolicyID, cmd.ProductCode, in.ProviderPaymentID, err)
			u.metrics.ObserveChargedNotRecorded()
			return entities.PaymentRecord{}, &ChargedNotRecordedError{ProviderPaymentID: in.ProviderPaymentID, Err: err}
		}
		log.Printf("[payment][usecase] pay failed policy_id=%s err=%v", cmd.PolicyID, err)
		return entities.PaymentRecord{}, err
	}
	u.metrics.ObservePayment(rec)
	log.Printf("[payment][usecase] pay success policy_id=%s payment_id=%s penalty=%s", rec.PolicyID, rec.ID, rec.PenaltyApplied)
	return rec, nil
}

// collect charges amount plus penalty through the gateway.
func (u *PaymentUseCase) collect(ctx context.Context, cmd PayCommand, paidAt time.Time) (string, string, error) {
	penalty, err := ComputePenalty(cmd.DueDate.UTC(), paidAt, cmd.Amount, cmd.PenaltyPolicy)
	if err != nil {
		return "", "", err
	}

	req := map[string]any{}
	if len(cmd.GatewayPayload) > 0 {
		if err := json.Unmarshal(cmd.GatewayPayload, &req); err != nil || req == nil {
			log.Printf("[payment][usecase] gateway payload is not a json object policy_id=%s", cmd.PolicyID)
			return "", "", ErrInvalidGatewayPayload
		}
	}
	// The amount owed is always computed here, never taken from the caller.
	req["transaction_amount"] = cmd.Amount.Add(penalty).InexactFloat64()
	req["external_reference"] = fmt.Sprintf("%s:%s", cmd.PolicyID, cmd.ProductCode)
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Premium %s for policy %s", cmd.ProductCode, cmd.PolicyID)
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return "", "", err
	}

	log.Printf("[payment][usecase] calling payment gateway policy_id=%s total=%s", cmd.PolicyID, cmd.Amount.Add(penalty))
	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed policy_id=%s err=%v", cmd.PolicyID, err)
		return "", "", mapGatewayError(err)
	}
	if !strings.EqualFold(providerStatus, "approved") {
		log.Printf("[payment][usecase] payment gateway did not approve policy_id=%s provider_status=%s", cmd.PolicyID, providerStatus)
		return "", "", ErrPaymentNotApproved
	}
	return providerID, providerStatus, nil
}

func (u *PaymentUseCase) QuotePenalty(_ context.Context, dueDate, paidAt time.Time, amount decimal.Decimal, policy entities.PenaltyPolicy) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, entities.ErrAmountNotPositive
	}
	return u.processor.ComputePenalty(dueDate.UTC(), paidAt.UTC(), amount, policy)
}

func (u *PaymentUseCase) UpcomingReminders(ctx context.Context, horizonDays int) ([]entities.PaymentRecord, error) {
	if horizonDays < 0 || horizonDays > MaxReminderHorizonDays {
		return nil, fmt.Errorf("%w: horizon_days must be between 0 and %d", entities.ErrInvalidArgument, MaxReminderHorizonDays)
	}
	return u.processor.UpcomingReminders(ctx, horizonDays)
}

func (u *PaymentUseCase) OverdueWithPenalties(ctx context.Context) ([]entities.PaymentRecord, error) {
	return u.processor.OverdueWithPenalties(ctx)
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found"), strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "\"error\":\"unauthorized\""), strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\""), strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
