package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"seguro_xpto/internal/domain/entities"
	"seguro_xpto/internal/usecase/interfaces"
)

var ErrProductExists = fmt.Errorf("product %w", interfaces.ErrAlreadyExists)

// ProductRepository keeps the catalog in process memory.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]entities.Product
}

var _ interfaces.IProductRepository = (*ProductRepository)(nil)

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[string]entities.Product)}
}

func (r *ProductRepository) Create(_ context.Context, p entities.Product) (entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.Code]; ok {
		return entities.Product{}, ErrProductExists
	}
	r.products[p.Code] = cloneProduct(p)
	return p, nil
}

func (r *ProductRepository) GetByCode(_ context.Context, code string) (entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneProduct(r.products[code]), nil
}

func (r *ProductRepository) List(_ context.Context) ([]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, cloneProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *ProductRepository) Save(_ context.Context, p entities.Product) (entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.Code]; !ok {
		return entities.Product{}, nil
	}
	r.products[p.Code] = cloneProduct(p)
	return p, nil
}

func cloneProduct(p entities.Product) entities.Product {
	if p.UpdatedAt != nil {
		t := *p.UpdatedAt
		p.UpdatedAt = &t
	}
	return p
}
