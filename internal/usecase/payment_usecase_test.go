package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"seguro_xpto/internal/adapter/persistence/memory"
	"seguro_xpto/internal/domain/entities"
	"seguro_xpto/internal/infrastructure/metrics"
	mock_interfaces "seguro_xpto/internal/usecase/interfaces/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newTestPaymentUseCase(gateway *mock_interfaces.MockIPaymentGateway, now time.Time) (*PaymentUseCase, *metrics.Metrics) {
	m := metrics.New(prometheus.NewRegistry())
	processor := NewPaymentProcessor(memory.NewPaymentRecordRepository(), WithClock(func() time.Time { return now }))
	if gateway == nil {
		return NewPaymentUseCase(processor, nil, m), m
	}
	return NewPaymentUseCase(processor, gateway, m), m
}

func TestPaymentUseCase_Pay(t *testing.T) {
	now := time.Date(2024, 1, 6, 9, 0, 0, 0, time.UTC)
	cmd := PayCommand{
		PolicyID:      "PH1002",
		ProductCode:   "FAM10",
		Amount:        decimal.NewFromInt(40000),
		DueDate:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PenaltyPolicy: entities.PenaltyPolicyFlat,
	}

	t.Run("records without gateway", func(t *testing.T) {
		uc, m := newTestPaymentUseCase(nil, now)
		rec, err := uc.Pay(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rec.PenaltyApplied.Equal(decimal.NewFromInt(2500)) {
			t.Fatalf("expected 2500 penalty, got %s", rec.PenaltyApplied)
		}
		if rec.ProviderPaymentID != "" {
			t.Fatalf("expected no provider id, got %q", rec.ProviderPaymentID)
		}
		if got := testutil.ToFloat64(m.PenaltiesApplied.WithLabelValues("flat")); got != 1 {
			t.Fatalf("expected penalty metric 1, got %v", got)
		}
	})

	t.Run("invalid amount never reaches the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc, _ := newTestPaymentUseCase(gateway, now)

		bad := cmd
		bad.Amount = decimal.Zero
		_, err := uc.Pay(context.Background(), bad)
		if !errors.Is(err, entities.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("gateway collects amount plus penalty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc, _ := newTestPaymentUseCase(gateway, now)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("invalid payload: %v", err)
				}
				if req["transaction_amount"] != 42500.0 {
					t.Fatalf("expected 42500 total, got %v", req["transaction_amount"])
				}
				if req["external_reference"] != "PH1002:FAM10" || req["payment_method_id"] != "pix" {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return "mp-1", "approved", json.RawMessage(`{}`), nil
			},
		)

		withPayload := cmd
		withPayload.GatewayPayload = json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`)
		rec, err := uc.Pay(context.Background(), withPayload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.ProviderPaymentID != "mp-1" || rec.ProviderStatus != "approved" {
			t.Fatalf("unexpected provider fields: %+v", rec)
		}
		if !rec.PaidAt.Equal(now) {
			t.Fatalf("expected paid_at pinned to clock, got %v", rec.PaidAt)
		}
	})

	t.Run("gateway rejection records nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc, _ := newTestPaymentUseCase(gateway, now)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.Pay(context.Background(), cmd)
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
		overdue, _ := uc.OverdueWithPenalties(context.Background())
		if len(overdue) != 0 {
			t.Fatalf("expected no records, got %d", len(overdue))
		}
	})

	t.Run("gateway not approving", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc, _ := newTestPaymentUseCase(gateway, now)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-2", "rejected", nil, nil)

		_, err := uc.Pay(context.Background(), cmd)
		if !errors.Is(err, ErrPaymentNotApproved) {
			t.Fatalf("expected ErrPaymentNotApproved, got %v", err)
		}
	})

	t.Run("charged but history append fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		history := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		m := metrics.New(prometheus.NewRegistry())
		processor := NewPaymentProcessor(history, WithClock(func() time.Time { return now }))
		uc := NewPaymentUseCase(processor, gateway, m)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "approved", json.RawMessage(`{}`), nil)
		history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("dynamodb unavailable"))

		_, err := uc.Pay(context.Background(), cmd)
		if !errors.Is(err, ErrPaymentChargedNotRecorded) {
			t.Fatalf("expected ErrPaymentChargedNotRecorded, got %v", err)
		}
		var charged *ChargedNotRecordedError
		if !errors.As(err, &charged) || charged.ProviderPaymentID != "mp-1" {
			t.Fatalf("expected provider id mp-1 on the error, got %v", err)
		}
		if got := testutil.ToFloat64(m.ChargedNotRecorded); got != 1 {
			t.Fatalf("expected charged-not-recorded metric 1, got %v", got)
		}
		if got := testutil.ToFloat64(m.PaymentsRecorded.WithLabelValues("flat")); got != 0 {
			t.Fatalf("expected no recorded payment metric, got %v", got)
		}
	})

	t.Run("append failure without gateway is returned as is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		history := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewPaymentUseCase(NewPaymentProcessor(history, WithClock(func() time.Time { return now })), nil, nil)

		history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := uc.Pay(context.Background(), cmd)
		if err == nil || errors.Is(err, ErrPaymentChargedNotRecorded) {
			t.Fatalf("expected plain repository error, got %v", err)
		}
	})

	t.Run("gateway payload must be an object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc, _ := newTestPaymentUseCase(gateway, now)

		bad := cmd
		bad.GatewayPayload = json.RawMessage(`[1,2]`)
		_, err := uc.Pay(context.Background(), bad)
		if !errors.Is(err, ErrInvalidGatewayPayload) {
			t.Fatalf("expected ErrInvalidGatewayPayload, got %v", err)
		}
	})
}

func TestPaymentUseCase_QuotePenalty(t *testing.T) {
	uc, _ := newTestPaymentUseCase(nil, time.Now().UTC())
	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	got, err := uc.QuotePenalty(context.Background(), due, due.AddDate(0, 0, 5), decimal.NewFromInt(40000), entities.PenaltyPolicyPercent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected 1000, got %s", got)
	}

	if _, err := uc.QuotePenalty(context.Background(), due, due, decimal.Zero, entities.PenaltyPolicyFlat); !errors.Is(err, entities.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestPaymentUseCase_UpcomingReminders_HorizonBounds(t *testing.T) {
	uc, _ := newTestPaymentUseCase(nil, time.Now().UTC())
	for _, horizon := range []int{-1, MaxReminderHorizonDays + 1, 1 << 40} {
		_, err := uc.UpcomingReminders(context.Background(), horizon)
		if !errors.Is(err, entities.ErrInvalidArgument) {
			t.Fatalf("horizon %d: expected ErrInvalidArgument, got %v", horizon, err)
		}
	}

	if _, err := uc.UpcomingReminders(context.Background(), MaxReminderHorizonDays); err != nil {
		t.Fatalf("expected max horizon to be accepted, got %v", err)
	}
}
