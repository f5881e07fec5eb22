package memory

import (
	"context"
	"sync"

	"seguro_xpto/internal/domain/entities"
	"seguro_xpto/internal/usecase/interfaces"
)

// PaymentRecordRepository is an append-only slice; insertion order is list order.
type PaymentRecordRepository struct {
	mu      sync.RWMutex
	records []entities.PaymentRecord
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordRepository)(nil)

func NewPaymentRecordRepository() *PaymentRecordRepository {
	return &PaymentRecordRepository{}
}

func (r *PaymentRecordRepository) Append(_ context.Context, rec entities.PaymentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return nil
}

func (r *PaymentRecordRepository) List(_ context.Context) ([]entities.PaymentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.PaymentRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}
