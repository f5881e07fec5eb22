package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"seguro_xpto/internal/adapter/persistence/memory"
	"seguro_xpto/internal/domain/entities"
	"seguro_xpto/internal/usecase/interfaces"
	mock_interfaces "seguro_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPolicyholderUseCase_CreatePolicyholder(t *testing.T) {
	t.Run("invalid policy id", func(t *testing.T) {
		uc := NewPolicyholderUseCase(nil)
		_, err := uc.CreatePolicyholder(context.Background(), "", "Ada", "ada@example.com")
		if !errors.Is(err, ErrInvalidPolicyID) {
			t.Fatalf("expected ErrInvalidPolicyID, got %v", err)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyholderRepository(ctrl)
		uc := NewPolicyholderUseCase(repo)
		repo.EXPECT().GetByPolicyID(gomock.Any(), "PH1001").Return(entities.Policyholder{PolicyID: "PH1001"}, nil)

		_, err := uc.CreatePolicyholder(context.Background(), "PH1001", "Ada", "ada@example.com")
		if !errors.Is(err, ErrPolicyholderAlreadyExists) {
			t.Fatalf("expected ErrPolicyholderAlreadyExists, got %v", err)
		}
	})

	t.Run("create loses race to another instance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyholderRepository(ctrl)
		uc := NewPolicyholderUseCase(repo)
		repo.EXPECT().GetByPolicyID(gomock.Any(), "PH1001").Return(entities.Policyholder{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Policyholder{}, fmt.Errorf("policyholder PH1001: %w", interfaces.ErrAlreadyExists))

		_, err := uc.CreatePolicyholder(context.Background(), "PH1001", "Ada", "ada@example.com")
		if !errors.Is(err, ErrPolicyholderAlreadyExists) {
			t.Fatalf("expected ErrPolicyholderAlreadyExists, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyholderRepository(ctrl)
		uc := NewPolicyholderUseCase(repo)
		repo.EXPECT().GetByPolicyID(gomock.Any(), "PH1001").Return(entities.Policyholder{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Policyholder) (entities.Policyholder, error) {
			if p.Status != entities.PolicyholderStatusRegistered || p.Products == nil || len(p.Products) != 0 {
				t.Fatalf("unexpected policyholder: %+v", p)
			}
			return p, nil
		})

		res, err := uc.CreatePolicyholder(context.Background(), " PH1001 ", "Adaeze Okoye", "ada@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PolicyID != "PH1001" {
			t.Fatalf("unexpected policy id: %q", res.PolicyID)
		}
	})
}

func TestPolicyholderUseCase_Lifecycle(t *testing.T) {
	ctx := context.Background()
	uc := NewPolicyholderUseCase(memory.NewPolicyholderRepository())

	if _, err := uc.CreatePolicyholder(ctx, "PH1001", "Adaeze Okoye", "ada@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	ph, err := uc.RegisterForProduct(ctx, "PH1001", "X", &start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ph.Products["X"].Equal(start) {
		t.Fatalf("unexpected start date: %v", ph.Products["X"])
	}

	if ph, err = uc.Cancel(ctx, "PH1001"); err != nil || ph.Status != entities.PolicyholderStatusCancelled {
		t.Fatalf("cancel failed: %+v err=%v", ph, err)
	}

	_, err = uc.RegisterForProduct(ctx, "PH1001", "Y", nil)
	if !errors.Is(err, entities.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}

	ph, err = uc.GetByPolicyID(ctx, "PH1001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if codes := ph.ProductCodes(); len(codes) != 1 || codes[0] != "X" {
		t.Fatalf("expected only X, got %v", codes)
	}

	if ph, err = uc.Suspend(ctx, "PH1001"); err != nil || ph.Status != entities.PolicyholderStatusSuspended {
		t.Fatalf("suspend failed: %+v err=%v", ph, err)
	}
	if ph, err = uc.Suspend(ctx, "PH1001"); err != nil || ph.Status != entities.PolicyholderStatusSuspended {
		t.Fatalf("second suspend failed: %+v err=%v", ph, err)
	}
	if ph, err = uc.Reactivate(ctx, "PH1001"); err != nil || ph.Status != entities.PolicyholderStatusRegistered {
		t.Fatalf("reactivate failed: %+v err=%v", ph, err)
	}
	if _, err = uc.RegisterForProduct(ctx, "PH1001", "Y", nil); err != nil {
		t.Fatalf("registration after reactivation failed: %v", err)
	}
}

func TestPolicyholderUseCase_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc := NewPolicyholderUseCase(memory.NewPolicyholderRepository())
		_, err := uc.Cancel(context.Background(), "PH404")
		if !errors.Is(err, ErrPolicyholderNotFound) {
			t.Fatalf("expected ErrPolicyholderNotFound, got %v", err)
		}
	})

	t.Run("empty product code", func(t *testing.T) {
		uc := NewPolicyholderUseCase(nil)
		_, err := uc.RegisterForProduct(context.Background(), "PH1001", " ", nil)
		if !errors.Is(err, ErrInvalidProductCode) {
			t.Fatalf("expected ErrInvalidProductCode, got %v", err)
		}
	})

	t.Run("repo error on save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyholderRepository(ctrl)
		uc := NewPolicyholderUseCase(repo)
		repo.EXPECT().GetByPolicyID(gomock.Any(), "PH1001").Return(*entities.NewPolicyholder("PH1001", "Ada", ""), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Policyholder{}, errors.New("db"))

		_, err := uc.Suspend(context.Background(), "PH1001")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
