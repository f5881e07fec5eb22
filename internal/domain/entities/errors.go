package entities

import (
	"errors"
	"fmt"
)

// Error kinds shared by every entity. Specific errors wrap one of them so
// callers can branch with errors.Is without knowing the exact cause.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrPermissionDenied = errors.New("permission denied")
)

var (
	ErrPremiumNotPositive        = fmt.Errorf("%w: premium must be positive", ErrInvalidArgument)
	ErrAmountNotPositive         = fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)
	ErrUnknownPenaltyPolicy      = fmt.Errorf("%w: unknown penalty policy, use 'flat' or 'percent'", ErrInvalidArgument)
	ErrPolicyholderNotRegistered = fmt.Errorf("%w: only registered policyholders can add products", ErrPermissionDenied)
)
