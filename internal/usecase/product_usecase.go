package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"seguro_xpto/internal/domain/entities"
	"seguro_xpto/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductAlreadyExists = errors.New("product already exists")
	ErrInvalidProductCode   = errors.New("invalid product code")
)

// IProductUseCase exposes catalog maintenance.

type IProductUseCase interface {
	CreateProduct(ctx context.Context, code, name string, premium decimal.Decimal) (entities.Product, error)
	GetByCode(ctx context.Context, code string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	UpdateProduct(ctx context.Context, code string, update entities.ProductUpdate) (entities.Product, error)
	Suspend(ctx context.Context, code string) (entities.Product, error)
	Reactivate(ctx context.Context, code string) (entities.Product, error)
}

type ProductUseCase struct {
	repo  interfaces.IProductRepository
	locks keyedMutex
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (u *ProductUseCase) CreateProduct(ctx context.Context, code, name string, premium decimal.Decimal) (entities.Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Product{}, ErrInvalidProductCode
	}
	p, err := entities.NewProduct(code, strings.TrimSpace(name), premium)
	if err != nil {
		return entities.Product{}, err
	}

	unlock := u.locks.lock(code)
	defer unlock()

	if existing, err := u.repo.GetByCode(ctx, code); err != nil {
		return entities.Product{}, err
	} else if existing.Code != "" {
		return entities.Product{}, ErrProductAlreadyExists
	}

	created, err := u.repo.Create(ctx, *p)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		log.Printf("[product][usecase] create lost race code=%s", code)
		return entities.Product{}, ErrProductAlreadyExists
	}
	if err != nil {
		log.Printf("[product][usecase] create failed code=%s err=%v", code, err)
		return entities.Product{}, err
	}
	log.Printf("[product][usecase] created code=%s premium=%s", code, created.Premium)
	return created, nil
}

func (u *ProductUseCase) GetByCode(ctx context.Context, code string) (entities.Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Product{}, ErrInvalidProductCode
	}

	p, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.Product{}, err
	}
	if p.Code == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

func (u *ProductUseCase) UpdateProduct(ctx context.Context, code string, update entities.ProductUpdate) (entities.Product, error) {
	return u.mutate(ctx, code, "update", func(p *entities.Product) error {
		return p.Update(update)
	})
}

func (u *ProductUseCase) Suspend(ctx context.Context, code string) (entities.Product, error) {
	return u.mutate(ctx, code, "suspend", func(p *entities.Product) error {
		p.Suspend()
		return nil
	})
}

func (u *ProductUseCase) Reactivate(ctx context.Context, code string) (entities.Product, error) {
	return u.mutate(ctx, code, "reactivate", func(p *entities.Product) error {
		p.Reactivate()
		return nil
	})
}

func (u *ProductUseCase) mutate(ctx context.Context, code, action string, apply func(*entities.Product) error) (entities.Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Product{}, ErrInvalidProductCode
	}

	unlock := u.locks.lock(code)
	defer unlock()

	p, err := u.GetByCode(ctx, code)
	if err != nil {
		return entities.Product{}, err
	}
	if err := apply(&p); err != nil {
		log.Printf("[product][usecase] %s rejected code=%s err=%v", action, code, err)
		return entities.Product{}, err
	}

	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	if saved.Code == "" {
		return entities.Product{}, ErrProductNotFound
	}
	log.Printf("[product][usecase] %s success code=%s active=%t", action, code, saved.IsActive)
	return saved, nil
}
