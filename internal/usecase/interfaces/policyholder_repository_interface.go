package interfaces

import (
	"context"

	"seguro_xpto/internal/domain/entities"
)

// IPolicyholderRepository abstracts persistence for policyholders.
//
// GetByPolicyID returns a zero-value Policyholder and a nil error when absent.

type IPolicyholderRepository interface {
	Create(ctx context.Context, p entities.Policyholder) (entities.Policyholder, error)
	GetByPolicyID(ctx context.Context, policyID string) (entities.Policyholder, error)
	Save(ctx context.Context, p entities.Policyholder) (entities.Policyholder, error)
}
