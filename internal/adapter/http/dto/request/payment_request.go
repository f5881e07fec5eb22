package request

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"seguro_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingDueDate = errors.New("due_date is required")
	ErrMissingPaidAt  = errors.New("paid_at is required")
)

// PaymentRequest records a payment. Timestamps are RFC 3339 and converted to
// UTC. penalty_policy falls back to the service default when empty.
type PaymentRequest struct {
	PolicyID       string          `json:"policy_id" binding:"required"`
	ProductCode    string          `json:"product_code" binding:"required"`
	Amount         decimal.Decimal `json:"amount"`
	DueDate        time.Time       `json:"due_date"`
	PaidAt         *time.Time      `json:"paid_at"`
	PenaltyPolicy  string          `json:"penalty_policy"`
	GatewayPayload json.RawMessage `json:"gateway_payload,omitempty" swaggertype:"object"`
}

func (r PaymentRequest) Validate() error {
	if r.DueDate.IsZero() {
		return ErrMissingDueDate
	}
	return nil
}

// PenaltyQuoteRequest asks for the penalty a payment would be charged.
type PenaltyQuoteRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"due_date"`
	PaidAt        time.Time       `json:"paid_at"`
	PenaltyPolicy string          `json:"penalty_policy"`
}

func (r PenaltyQuoteRequest) Validate() error {
	if r.DueDate.IsZero() {
		return ErrMissingDueDate
	}
	if r.PaidAt.IsZero() {
		return ErrMissingPaidAt
	}
	return nil
}

// ResolvePenaltyPolicy normalizes the requested policy, using def when empty.
// Unknown values are passed through so the domain can reject them.
func ResolvePenaltyPolicy(requested, def string) entities.PenaltyPolicy {
	p := strings.ToLower(strings.TrimSpace(requested))
	if p == "" {
		p = strings.ToLower(strings.TrimSpace(def))
	}
	return entities.PenaltyPolicy(p)
}
