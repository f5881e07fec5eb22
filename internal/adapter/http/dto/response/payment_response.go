package response

import (
	"time"

	"seguro_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PaymentRecordResponse struct {
	ID                string    `json:"id"`
	PolicyID          string    `json:"policy_id"`
	ProductCode       string    `json:"product_code"`
	Amount            string    `json:"amount"`
	PaidAt            time.Time `json:"paid_at"`
	DueDate           time.Time `json:"due_date"`
	DaysLate          int       `json:"days_late"`
	PenaltyPolicy     string    `json:"penalty_policy"`
	PenaltyApplied    string    `json:"penalty_applied"`
	Total             string    `json:"total"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	ProviderStatus    string    `json:"provider_status,omitempty"`
}

func FromPaymentRecord(r entities.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		ID:                r.ID,
		PolicyID:          r.PolicyID,
		ProductCode:       r.ProductCode,
		Amount:            r.Amount.StringFixed(2),
		PaidAt:            r.PaidAt,
		DueDate:           r.DueDate,
		DaysLate:          r.DaysLate(),
		PenaltyPolicy:     string(r.PenaltyPolicy),
		PenaltyApplied:    r.PenaltyApplied.StringFixed(2),
		Total:             r.Total().StringFixed(2),
		ProviderPaymentID: r.ProviderPaymentID,
		ProviderStatus:    r.ProviderStatus,
	}
}

func FromPaymentRecords(records []entities.PaymentRecord) []PaymentRecordResponse {
	out := make([]PaymentRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromPaymentRecord(r))
	}
	return out
}

type PenaltyQuoteResponse struct {
	PenaltyPolicy string `json:"penalty_policy"`
	DaysLate      int    `json:"days_late"`
	Penalty       string `json:"penalty"`
	Total         string `json:"total"`
}

func FromPenaltyQuote(policy entities.PenaltyPolicy, dueDate, paidAt time.Time, amount, penalty decimal.Decimal) PenaltyQuoteResponse {
	rec := entities.PaymentRecord{DueDate: dueDate, PaidAt: paidAt}
	return PenaltyQuoteResponse{
		PenaltyPolicy: string(policy),
		DaysLate:      rec.DaysLate(),
		Penalty:       penalty.StringFixed(2),
		Total:         amount.Add(penalty).StringFixed(2),
	}
}
