package handlers

import (
	"log"
	"net/http"
	request "seguro_xpto/internal/adapter/http/dto/request"
	response "seguro_xpto/internal/adapter/http/dto/response"
	"seguro_xpto/internal/usecase"
	"seguro_xpto/pkg"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PaymentHandler records payments and serves the reminder and overdue views.
type PaymentHandler struct {
	usecase        usecase.IPaymentUseCase
	defaultPolicy  string
	defaultHorizon int
}

// NewPaymentHandler uses defaultPolicy when a request omits penalty_policy
// and defaultHorizon when reminders are requested without horizon_days.
func NewPaymentHandler(uc usecase.IPaymentUseCase, defaultPolicy string, defaultHorizon int) *PaymentHandler {
	return &PaymentHandler{usecase: uc, defaultPolicy: defaultPolicy, defaultHorizon: defaultHorizon}
}

// CreatePayment godoc
// @Summary Record a payment
// @Description Computes the late penalty and appends the payment to the history.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body request.PaymentRequest true "Payment"
// @Success 201 {object} response.PaymentRecordResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 402 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /v1/payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		writeError(c, errInvalidPayload)
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(c, pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest))
		return
	}

	cmd := usecase.PayCommand{
		PolicyID:       payload.PolicyID,
		ProductCode:    payload.ProductCode,
		Amount:         payload.Amount,
		DueDate:        payload.DueDate.UTC(),
		PenaltyPolicy:  request.ResolvePenaltyPolicy(payload.PenaltyPolicy, h.defaultPolicy),
		GatewayPayload: payload.GatewayPayload,
	}
	if payload.PaidAt != nil {
		paidAt := payload.PaidAt.UTC()
		cmd.PaidAt = &paidAt
	}

	rec, err := h.usecase.Pay(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[payment][handler] create failed policy_id=%s err=%v", payload.PolicyID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	log.Printf("[payment][handler] create success policy_id=%s payment_id=%s", rec.PolicyID, rec.ID)

	c.JSON(http.StatusCreated, response.FromPaymentRecord(rec))
}

// QuotePenalty godoc
// @Summary Quote the penalty for a payment without recording it
// @Tags payments
// @Accept json
// @Produce json
// @Param quote body request.PenaltyQuoteRequest true "Quote"
// @Success 200 {object} response.PenaltyQuoteResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/payments/penalty-quote [post]
func (h *PaymentHandler) QuotePenalty(c *gin.Context) {
	var payload request.PenaltyQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(c, pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest))
		return
	}

	policy := request.ResolvePenaltyPolicy(payload.PenaltyPolicy, h.defaultPolicy)
	due, paid := payload.DueDate.UTC(), payload.PaidAt.UTC()
	penalty, err := h.usecase.QuotePenalty(c.Request.Context(), due, paid, payload.Amount, policy)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPenaltyQuote(policy, due, paid, payload.Amount, penalty))
}

// UpcomingReminders godoc
// @Summary Payments due within the horizon
// @Tags payments
// @Produce json
// @Param horizon_days query int false "Days ahead to look"
// @Success 200 {array} response.PaymentRecordResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/payments/reminders [get]
func (h *PaymentHandler) UpcomingReminders(c *gin.Context) {
	horizon := h.defaultHorizon
	if raw := c.Query("horizon_days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "horizon_days must be an integer", http.StatusBadRequest))
			return
		}
		horizon = n
	}

	records, err := h.usecase.UpcomingReminders(c.Request.Context(), horizon)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecords(records))
}

// OverduePayments godoc
// @Summary Payments recorded with a penalty
// @Tags payments
// @Produce json
// @Success 200 {array} response.PaymentRecordResponse
// @Router /v1/payments/overdue [get]
func (h *PaymentHandler) OverduePayments(c *gin.Context) {
	records, err := h.usecase.OverdueWithPenalties(c.Request.Context())
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecords(records))
}
