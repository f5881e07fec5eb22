package entities

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// PolicyholderStatus represents the lifecycle of a policyholder.
//
// Transitions:
//   - REGISTERED is the initial status and the only one allowing enrollment.
//   - Suspend moves any other status to SUSPENDED.
//   - Reactivate moves any other status back to REGISTERED, CANCELLED included.
//   - Cancel is unconditional.
type PolicyholderStatus string

const (
	PolicyholderStatusRegistered PolicyholderStatus = "REGISTERED"
	PolicyholderStatusSuspended  PolicyholderStatus = "SUSPENDED"
	PolicyholderStatusCancelled  PolicyholderStatus = "CANCELLED"
)

func (s PolicyholderStatus) IsValid() bool {
	switch s {
	case PolicyholderStatusRegistered, PolicyholderStatusSuspended, PolicyholderStatusCancelled:
		return true
	}
	return false
}

// Policyholder is a customer and the products they are enrolled in.
//
// Products maps product code to enrollment start. Codes are opaque here:
// enrollment does not check the product catalog.
type Policyholder struct {
	PolicyID string               `json:"policy_id"`
	FullName string               `json:"full_name"`
	Email    string               `json:"email"`
	Status   PolicyholderStatus   `json:"status"`
	Products map[string]time.Time `json:"products"`
}

func NewPolicyholder(policyID, fullName, email string) *Policyholder {
	return &Policyholder{
		PolicyID: policyID,
		FullName: fullName,
		Email:    email,
		Status:   PolicyholderStatusRegistered,
		Products: make(map[string]time.Time),
	}
}

// RegisterForProduct enrolls the policyholder in productCode starting at
// startDate, or now when startDate is nil. Re-registering overwrites the
// start date.
func (p *Policyholder) RegisterForProduct(productCode string, startDate *time.Time) error {
	if p.Status != PolicyholderStatusRegistered {
		return ErrPolicyholderNotRegistered
	}
	start := now()
	if startDate != nil {
		start = startDate.UTC()
	}
	if p.Products == nil {
		p.Products = make(map[string]time.Time)
	}
	p.Products[productCode] = start
	return nil
}

func (p *Policyholder) Suspend() {
	if p.Status == PolicyholderStatusSuspended {
		return
	}
	p.Status = PolicyholderStatusSuspended
}

func (p *Policyholder) Reactivate() {
	if p.Status != PolicyholderStatusRegistered {
		p.Status = PolicyholderStatusRegistered
	}
}

func (p *Policyholder) Cancel() {
	p.Status = PolicyholderStatusCancelled
}

// ProductCodes returns the enrolled product codes in ascending order.
func (p *Policyholder) ProductCodes() []string {
	codes := make([]string, 0, len(p.Products))
	for code := range p.Products {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func (p *Policyholder) String() string {
	prods := strings.Join(p.ProductCodes(), ", ")
	if prods == "" {
		prods = "None"
	}
	return fmt.Sprintf("%s | %s | %s | Products: %s", p.PolicyID, p.FullName, p.Status, prods)
}
