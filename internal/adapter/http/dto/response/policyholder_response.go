package response

import (
	"time"

	"seguro_xpto/internal/domain/entities"
)

type EnrollmentResponse struct {
	ProductCode string    `json:"product_code"`
	StartDate   time.Time `json:"start_date"`
}

type PolicyholderResponse struct {
	PolicyID string               `json:"policy_id"`
	FullName string               `json:"full_name"`
	Email    string               `json:"email"`
	Status   string               `json:"status"`
	Products []EnrollmentResponse `json:"products"`
	Summary  string               `json:"summary"`
}

// FromPolicyholder lists enrollments ordered by product code.
func FromPolicyholder(p entities.Policyholder) PolicyholderResponse {
	codes := p.ProductCodes()
	products := make([]EnrollmentResponse, 0, len(codes))
	for _, code := range codes {
		products = append(products, EnrollmentResponse{ProductCode: code, StartDate: p.Products[code]})
	}
	return PolicyholderResponse{
		PolicyID: p.PolicyID,
		FullName: p.FullName,
		Email:    p.Email,
		Status:   string(p.Status),
		Products: products,
		Summary:  p.String(),
	}
}
