package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"seguro_xpto/internal/domain/entities"
)

func TestResolvePenaltyPolicy(t *testing.T) {
	if got := ResolvePenaltyPolicy(" Percent ", "flat"); got != entities.PenaltyPolicyPercent {
		t.Fatalf("expected percent, got %q", got)
	}
	if got := ResolvePenaltyPolicy("", "flat"); got != entities.PenaltyPolicyFlat {
		t.Fatalf("expected flat default, got %q", got)
	}
	if got := ResolvePenaltyPolicy("weekly", "flat"); got != "weekly" {
		t.Fatalf("expected unknown policy passed through, got %q", got)
	}
}

func TestPaymentRequest_Decode(t *testing.T) {
	body := `{"policy_id":"PH1002","product_code":"FAM10","amount":"40000","due_date":"2024-01-01T00:00:00Z","paid_at":"2024-01-06T00:00:00-03:00","penalty_policy":"percent"}`

	var r PaymentRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if r.Amount.String() != "40000" {
		t.Fatalf("unexpected amount: %s", r.Amount)
	}
	if r.PaidAt == nil || !r.PaidAt.Equal(time.Date(2024, 1, 6, 3, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected paid_at: %v", r.PaidAt)
	}

	if err := (PaymentRequest{}).Validate(); !errors.Is(err, ErrMissingDueDate) {
		t.Fatalf("expected ErrMissingDueDate, got %v", err)
	}
}

func TestPenaltyQuoteRequest_Validate(t *testing.T) {
	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := (PenaltyQuoteRequest{DueDate: due}).Validate(); !errors.Is(err, ErrMissingPaidAt) {
		t.Fatalf("expected ErrMissingPaidAt, got %v", err)
	}
	if err := (PenaltyQuoteRequest{PaidAt: due}).Validate(); !errors.Is(err, ErrMissingDueDate) {
		t.Fatalf("expected ErrMissingDueDate, got %v", err)
	}
}

func TestProductUpdateRequest_ToUpdate(t *testing.T) {
	var r ProductUpdateRequest
	if err := json.Unmarshal([]byte(`{"premium":16000}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u := r.ToUpdate()
	if u.Name != nil {
		t.Fatalf("expected name untouched")
	}
	if u.Premium == nil || u.Premium.String() != "16000" {
		t.Fatalf("unexpected premium: %v", u.Premium)
	}
}
