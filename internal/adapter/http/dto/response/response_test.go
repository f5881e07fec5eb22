package response

import (
	"testing"
	"time"

	"seguro_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromProduct(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Product{Code: "BAS01", Name: "Basic Health", Premium: decimal.NewFromInt(16000), IsActive: false, UpdatedAt: &now}

	res := FromProduct(p)
	if res.Code != "BAS01" || res.Premium != "16000.00" || res.Status != "SUSPENDED" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.UpdatedAt == nil || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected updated_at: %v", res.UpdatedAt)
	}
	if res.Summary != "BAS01 | Basic Health | Premium: 16000.00 | SUSPENDED" {
		t.Fatalf("unexpected summary: %s", res.Summary)
	}
}

func TestFromPolicyholder(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := entities.Policyholder{
		PolicyID: "PH1001",
		FullName: "Adaeze Okoye",
		Email:    "ada@example.com",
		Status:   entities.PolicyholderStatusRegistered,
		Products: map[string]time.Time{"FAM10": start, "BAS01": start.AddDate(0, 1, 0)},
	}

	res := FromPolicyholder(p)
	if len(res.Products) != 2 || res.Products[0].ProductCode != "BAS01" || res.Products[1].ProductCode != "FAM10" {
		t.Fatalf("expected products sorted by code: %+v", res.Products)
	}
	if !res.Products[1].StartDate.Equal(start) {
		t.Fatalf("unexpected start date: %v", res.Products[1].StartDate)
	}
	if res.Summary != "PH1001 | Adaeze Okoye | REGISTERED | Products: BAS01, FAM10" {
		t.Fatalf("unexpected summary: %s", res.Summary)
	}
}

func TestFromPaymentRecord(t *testing.T) {
	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := entities.PaymentRecord{
		ID:             "pay-1",
		PolicyID:       "PH1002",
		ProductCode:    "FAM10",
		Amount:         decimal.NewFromInt(40000),
		DueDate:        due,
		PaidAt:         due.AddDate(0, 0, 5),
		PenaltyPolicy:  entities.PenaltyPolicyPercent,
		PenaltyApplied: decimal.NewFromInt(1000),
	}

	res := FromPaymentRecord(r)
	if res.DaysLate != 5 || res.PenaltyApplied != "1000.00" || res.Total != "41000.00" || res.Amount != "40000.00" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.PenaltyPolicy != "percent" {
		t.Fatalf("unexpected policy: %s", res.PenaltyPolicy)
	}
}

func TestFromPenaltyQuote(t *testing.T) {
	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	res := FromPenaltyQuote(entities.PenaltyPolicyFlat, due, due, decimal.NewFromInt(100), decimal.Zero)
	if res.DaysLate != 0 || res.Penalty != "0.00" || res.Total != "100.00" {
		t.Fatalf("unexpected quote: %+v", res)
	}
}
