package request

import "time"

type PolicyholderCreateRequest struct {
	PolicyID string `json:"policy_id" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// ProductRegistrationRequest enrolls a policyholder; start_date defaults to now.
type ProductRegistrationRequest struct {
	ProductCode string     `json:"product_code" binding:"required"`
	StartDate   *time.Time `json:"start_date"`
}
