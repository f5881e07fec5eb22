package request

import (
	"seguro_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ProductCreateRequest accepts premium as a JSON number or string.
type ProductCreateRequest struct {
	Code    string          `json:"code" binding:"required"`
	Name    string          `json:"name" binding:"required"`
	Premium decimal.Decimal `json:"premium"`
}

// ProductUpdateRequest only changes the fields present in the body.
type ProductUpdateRequest struct {
	Name    *string          `json:"name"`
	Premium *decimal.Decimal `json:"premium"`
}

func (r ProductUpdateRequest) ToUpdate() entities.ProductUpdate {
	return entities.ProductUpdate{Name: r.Name, Premium: r.Premium}
}
