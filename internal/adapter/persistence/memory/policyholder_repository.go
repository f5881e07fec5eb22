package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"seguro_xpto/internal/domain/entities"
	"seguro_xpto/internal/usecase/interfaces"
)

var ErrPolicyholderExists = fmt.Errorf("policyholder %w", interfaces.ErrAlreadyExists)

// PolicyholderRepository keeps policyholders in process memory. Stored values
// never share their product maps with callers.
type PolicyholderRepository struct {
	mu            sync.RWMutex
	policyholders map[string]entities.Policyholder
}

var _ interfaces.IPolicyholderRepository = (*PolicyholderRepository)(nil)

func NewPolicyholderRepository() *PolicyholderRepository {
	return &PolicyholderRepository{policyholders: make(map[string]entities.Policyholder)}
}

func (r *PolicyholderRepository) Create(_ context.Context, p entities.Policyholder) (entities.Policyholder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.policyholders[p.PolicyID]; ok {
		return entities.Policyholder{}, ErrPolicyholderExists
	}
	r.policyholders[p.PolicyID] = clonePolicyholder(p)
	return p, nil
}

func (r *PolicyholderRepository) GetByPolicyID(_ context.Context, policyID string) (entities.Policyholder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.policyholders[policyID]
	if !ok {
		return entities.Policyholder{}, nil
	}
	return clonePolicyholder(p), nil
}

func (r *PolicyholderRepository) Save(_ context.Context, p entities.Policyholder) (entities.Policyholder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.policyholders[p.PolicyID]; !ok {
		return entities.Policyholder{}, nil
	}
	r.policyholders[p.PolicyID] = clonePolicyholder(p)
	return p, nil
}

func clonePolicyholder(p entities.Policyholder) entities.Policyholder {
	products := make(map[string]time.Time, len(p.Products))
	for code, start := range p.Products {
		products[code] = start
	}
	p.Products = products
	return p
}
