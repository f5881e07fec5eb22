package interfaces

import (
	"context"

	"seguro_xpto/internal/domain/entities"
)

// IProductRepository abstracts persistence for the product catalog.
//
// Lookups return a zero-value Product (empty Code) and a nil error when the
// product does not exist; use cases translate that into ErrProductNotFound.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByCode(ctx context.Context, code string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Save(ctx context.Context, p entities.Product) (entities.Product, error)
}
