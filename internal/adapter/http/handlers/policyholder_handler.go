package handlers

import (
	"context"
	"log"
	"net/http"
	request "seguro_xpto/internal/adapter/http/dto/request"
	response "seguro_xpto/internal/adapter/http/dto/response"
	"seguro_xpto/internal/domain/entities"
	"seguro_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PolicyholderHandler handles policyholder registration, enrollment and
// lifecycle transitions.
type PolicyholderHandler struct {
	usecase usecase.IPolicyholderUseCase
}

func NewPolicyholderHandler(uc usecase.IPolicyholderUseCase) *PolicyholderHandler {
	return &PolicyholderHandler{usecase: uc}
}

// CreatePolicyholder godoc
// @Summary Register a policyholder
// @Tags policyholders
// @Accept json
// @Produce json
// @Param policyholder body request.PolicyholderCreateRequest true "Policyholder"
// @Success 201 {object} response.PolicyholderResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/policyholders [post]
func (h *PolicyholderHandler) CreatePolicyholder(c *gin.Context) {
	var payload request.PolicyholderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[policyholder][handler] invalid payload err=%v", err)
		writeError(c, errInvalidPayload)
		return
	}

	holder, err := h.usecase.CreatePolicyholder(c.Request.Context(), payload.PolicyID, payload.FullName, payload.Email)
	if err != nil {
		writeError(c, mapPolicyholderError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromPolicyholder(holder))
}

// GetPolicyholder godoc
// @Summary Get a policyholder
// @Tags policyholders
// @Produce json
// @Param policy_id path string true "Policy ID"
// @Success 200 {object} response.PolicyholderResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/policyholders/{policy_id} [get]
func (h *PolicyholderHandler) GetPolicyholder(c *gin.Context) {
	holder, err := h.usecase.GetByPolicyID(c.Request.Context(), c.Param("policy_id"))
	if err != nil {
		writeError(c, mapPolicyholderError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPolicyholder(holder))
}

// RegisterForProduct godoc
// @Summary Enroll a policyholder in a product
// @Description Only REGISTERED policyholders can enroll. Re-enrolling overwrites the start date.
// @Tags policyholders
// @Accept json
// @Produce json
// @Param policy_id path string true "Policy ID"
// @Param enrollment body request.ProductRegistrationRequest true "Enrollment"
// @Success 200 {object} response.PolicyholderResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/policyholders/{policy_id}/products [post]
func (h *PolicyholderHandler) RegisterForProduct(c *gin.Context) {
	policyID := c.Param("policy_id")
	var payload request.ProductRegistrationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[policyholder][handler] invalid enrollment payload policy_id=%s err=%v", policyID, err)
		writeError(c, errInvalidPayload)
		return
	}

	holder, err := h.usecase.RegisterForProduct(c.Request.Context(), policyID, payload.ProductCode, payload.StartDate)
	if err != nil {
		writeError(c, mapPolicyholderError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPolicyholder(holder))
}

// SuspendPolicyholder godoc
// @Summary Suspend a policyholder
// @Tags policyholders
// @Produce json
// @Param policy_id path string true "Policy ID"
// @Success 200 {object} response.PolicyholderResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/policyholders/{policy_id}/suspend [patch]
func (h *PolicyholderHandler) SuspendPolicyholder(c *gin.Context) {
	h.patchStatus(c, h.usecase.Suspend)
}

// ReactivatePolicyholder godoc
// @Summary Reactivate a policyholder
// @Tags policyholders
// @Produce json
// @Param policy_id path string true "Policy ID"
// @Success 200 {object} response.PolicyholderResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/policyholders/{policy_id}/reactivate [patch]
func (h *PolicyholderHandler) ReactivatePolicyholder(c *gin.Context) {
	h.patchStatus(c, h.usecase.Reactivate)
}

// CancelPolicyholder godoc
// @Summary Cancel a policyholder
// @Tags policyholders
// @Produce json
// @Param policy_id path string true "Policy ID"
// @Success 200 {object} response.PolicyholderResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/policyholders/{policy_id}/cancel [patch]
func (h *PolicyholderHandler) CancelPolicyholder(c *gin.Context) {
	h.patchStatus(c, h.usecase.Cancel)
}

func (h *PolicyholderHandler) patchStatus(c *gin.Context, updater func(ctx context.Context, policyID string) (entities.Policyholder, error)) {
	holder, err := updater(c.Request.Context(), c.Param("policy_id"))
	if err != nil {
		writeError(c, mapPolicyholderError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPolicyholder(holder))
}
