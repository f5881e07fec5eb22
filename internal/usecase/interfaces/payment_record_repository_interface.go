package interfaces

import (
	"context"

	"seguro_xpto/internal/domain/entities"
)

// IPaymentRecordRepository is the payment processor's append-only history.
//
// List must return records in insertion order (ascending Sequence).

type IPaymentRecordRepository interface {
	Append(ctx context.Context, r entities.PaymentRecord) error
	List(ctx context.Context) ([]entities.PaymentRecord, error)
}
