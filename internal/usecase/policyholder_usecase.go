package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"seguro_xpto/internal/domain/entities"
	"seguro_xpto/internal/usecase/interfaces"
)

var (
	ErrPolicyholderNotFound      = errors.New("policyholder not found")
	ErrPolicyholderAlreadyExists = errors.New("policyholder already exists")
	ErrInvalidPolicyID           = errors.New("invalid policy_id")
)

// IPolicyholderUseCase drives the policyholder status lifecycle.
//
// Product codes passed to RegisterForProduct are not checked against the
// catalog.

type IPolicyholderUseCase interface {
	CreatePolicyholder(ctx context.Context, policyID, fullName, email string) (entities.Policyholder, error)
	GetByPolicyID(ctx context.Context, policyID string) (entities.Policyholder, error)
	RegisterForProduct(ctx context.Context, policyID, productCode string, startDate *time.Time) (entities.Policyholder, error)
	Suspend(ctx context.Context, policyID string) (entities.Policyholder, error)
	Reactivate(ctx context.Context, policyID string) (entities.Policyholder, error)
	Cancel(ctx context.Context, policyID string) (entities.Policyholder, error)
}

type PolicyholderUseCase struct {
	repo  interfaces.IPolicyholderRepository
	locks keyedMutex
}

var _ IPolicyholderUseCase = (*PolicyholderUseCase)(nil)

func NewPolicyholderUseCase(repo interfaces.IPolicyholderRepository) *PolicyholderUseCase {
	return &PolicyholderUseCase{repo: repo}
}

func (u *PolicyholderUseCase) CreatePolicyholder(ctx context.Context, policyID, fullName, email string) (entities.Policyholder, error) {
	policyID = strings.TrimSpace(policyID)
	if policyID == "" {
		return entities.Policyholder{}, ErrInvalidPolicyID
	}

	unlock := u.locks.lock(policyID)
	defer unlock()

	if existing, err := u.repo.GetByPolicyID(ctx, policyID); err != nil {
		return entities.Policyholder{}, err
	} else if existing.PolicyID != "" {
		return entities.Policyholder{}, ErrPolicyholderAlreadyExists
	}

	ph := entities.NewPolicyholder(policyID, strings.TrimSpace(fullName), strings.TrimSpace(email))
	created, err := u.repo.Create(ctx, *ph)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		log.Printf("[policyholder][usecase] create lost race policy_id=%s", policyID)
		return entities.Policyholder{}, ErrPolicyholderAlreadyExists
	}
	if err != nil {
		log.Printf("[policyholder][usecase] create failed policy_id=%s err=%v", policyID, err)
		return entities.Policyholder{}, err
	}
	log.Printf("[policyholder][usecase] created policy_id=%s", policyID)
	return created, nil
}

func (u *PolicyholderUseCase) GetByPolicyID(ctx context.Context, policyID string) (entities.Policyholder, error) {
	policyID = strings.TrimSpace(policyID)
	if policyID == "" {
		return entities.Policyholder{}, ErrInvalidPolicyID
	}

	ph, err := u.repo.GetByPolicyID(ctx, policyID)
	if err != nil {
		return entities.Policyholder{}, err
	}
	if ph.PolicyID == "" {
		return entities.Policyholder{}, ErrPolicyholderNotFound
	}
	return ph, nil
}

func (u *PolicyholderUseCase) RegisterForProduct(ctx context.Context, policyID, productCode string, startDate *time.Time) (entities.Policyholder, error) {
	productCode = strings.TrimSpace(productCode)
	if productCode == "" {
		return entities.Policyholder{}, ErrInvalidProductCode
	}
	return u.mutate(ctx, policyID, "register-product", func(ph *entities.Policyholder) error {
		return ph.RegisterForProduct(productCode, startDate)
	})
}

func (u *PolicyholderUseCase) Suspend(ctx context.Context, policyID string) (entities.Policyholder, error) {
	return u.mutate(ctx, policyID, "suspend", func(ph *entities.Policyholder) error {
		ph.Suspend()
		return nil
	})
}

func (u *PolicyholderUseCase) Reactivate(ctx context.Context, policyID string) (entities.Policyholder, error) {
	return u.mutate(ctx, policyID, "reactivate", func(ph *entities.Policyholder) error {
		if ph.Status == entities.PolicyholderStatusCancelled {
			log.Printf("[policyholder][usecase] reactivating cancelled policyholder policy_id=%s", ph.PolicyID)
		}
		ph.Reactivate()
		return nil
	})
}

func (u *PolicyholderUseCase) Cancel(ctx context.Context, policyID string) (entities.Policyholder, error) {
	return u.mutate(ctx, policyID, "cancel", func(ph *entities.Policyholder) error {
		ph.Cancel()
		return nil
	})
}

func (u *PolicyholderUseCase) mutate(ctx context.Context, policyID, action string, apply func(*entities.Policyholder) error) (entities.Policyholder, error) {
	policyID = strings.TrimSpace(policyID)
	if policyID == "" {
		return entities.Policyholder{}, ErrInvalidPolicyID
	}

	unlock := u.locks.lock(policyID)
	defer unlock()

	ph, err := u.GetByPolicyID(ctx, policyID)
	if err != nil {
		return entities.Policyholder{}, err
	}
	if err := apply(&ph); err != nil {
		log.Printf("[policyholder][usecase] %s rejected policy_id=%s status=%s err=%v", action, policyID, ph.Status, err)
		return entities.Policyholder{}, err
	}

	saved, err := u.repo.Save(ctx, ph)
	if err != nil {
		return entities.Policyholder{}, err
	}
	if saved.PolicyID == "" {
		return entities.Policyholder{}, ErrPolicyholderNotFound
	}
	log.Printf("[policyholder][usecase] %s success policy_id=%s status=%s", action, policyID, saved.Status)
	return saved, nil
}
