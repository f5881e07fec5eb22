package response

import (
	"time"

	"seguro_xpto/internal/domain/entities"
)

type ProductResponse struct {
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	Premium   string     `json:"premium"`
	IsActive  bool       `json:"is_active"`
	Status    string     `json:"status"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Summary   string     `json:"summary"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		Code:      p.Code,
		Name:      p.Name,
		Premium:   p.Premium.StringFixed(2),
		IsActive:  p.IsActive,
		Status:    p.StatusLabel(),
		UpdatedAt: p.UpdatedAt,
		Summary:   p.String(),
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
