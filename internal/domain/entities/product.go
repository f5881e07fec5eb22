package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Product is an insurance offering available for enrollment.
//
// Invariants:
//   - Code never changes after creation.
//   - Premium is strictly positive at all times.
//
// UpdatedAt stays nil until the first mutation.
type Product struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Premium   decimal.Decimal `json:"premium"`
	IsActive  bool            `json:"is_active"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

// ProductUpdate carries the optional fields accepted by Product.Update.
// Nil fields are left untouched.
type ProductUpdate struct {
	Name    *string
	Premium *decimal.Decimal
}

func NewProduct(code, name string, premium decimal.Decimal) (*Product, error) {
	if !premium.IsPositive() {
		return nil, ErrPremiumNotPositive
	}
	return &Product{
		Code:     code,
		Name:     name,
		Premium:  premium,
		IsActive: true,
	}, nil
}

// Update applies the supplied fields and stamps UpdatedAt. A non-positive
// premium is rejected before anything is assigned.
func (p *Product) Update(u ProductUpdate) error {
	if u.Premium != nil && !u.Premium.IsPositive() {
		return ErrPremiumNotPositive
	}
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Premium != nil {
		p.Premium = *u.Premium
	}
	p.touch()
	return nil
}

// Suspend soft-suspends the product; it can be reactivated later.
func (p *Product) Suspend() {
	p.IsActive = false
	p.touch()
}

func (p *Product) Reactivate() {
	p.IsActive = true
	p.touch()
}

func (p *Product) StatusLabel() string {
	if p.IsActive {
		return "ACTIVE"
	}
	return "SUSPENDED"
}

func (p *Product) String() string {
	return fmt.Sprintf("%s | %s | Premium: %s | %s", p.Code, p.Name, p.Premium.StringFixed(2), p.StatusLabel())
}

func (p *Product) touch() {
	t := now()
	p.UpdatedAt = &t
}
