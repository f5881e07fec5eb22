package handlers

import (
	"errors"
	"net/http"
	"seguro_xpto/internal/domain/entities"
	"seguro_xpto/internal/usecase"
	"seguro_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapDomainError covers the error kinds every resource shares. Resource
// handlers check their own not-found/conflict errors first.
func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		return pkg.NewDomainError("INVALID_ARGUMENT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrPermissionDenied):
		return pkg.NewDomainError("PERMISSION_DENIED", err.Error(), err, http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductCode):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid product code", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductAlreadyExists):
		return pkg.NewDomainErrorSimple("PRODUCT_ALREADY_EXISTS", "Product already exists", http.StatusConflict)
	default:
		return mapDomainError(err)
	}
}

func mapPolicyholderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPolicyID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid policy_id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPolicyholderNotFound):
		return pkg.NewDomainErrorSimple("POLICYHOLDER_NOT_FOUND", "Policyholder not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPolicyholderAlreadyExists):
		return pkg.NewDomainErrorSimple("POLICYHOLDER_ALREADY_EXISTS", "Policyholder already exists", http.StatusConflict)
	default:
		return mapDomainError(err)
	}
}

func mapPaymentError(err error) *pkg.AppError {
	var charged *usecase.ChargedNotRecordedError
	switch {
	case errors.As(err, &charged):
		msg := "Payment was charged by the provider but could not be recorded; reconcile provider_payment_id " + charged.ProviderPaymentID
		return pkg.NewDomainError("PAYMENT_CHARGED_NOT_RECORDED", msg, err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrInvalidGatewayPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment was not approved by the provider", http.StatusPaymentRequired)
	default:
		return mapDomainError(err)
	}
}
