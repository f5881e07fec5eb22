package routes

import (
	"seguro_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing          = "/ping"
	PathProducts      = "/products"
	PathPolicyholders = "/policyholders"
	PathPayments      = "/payments"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addProductRoutes(rg *gin.RouterGroup, h *handlers.ProductHandler) {
	products := rg.Group(PathProducts)
	{
		products.POST("", h.CreateProduct)
		products.GET("", h.ListProducts)
		products.GET("/:code", h.GetProduct)
		products.PATCH("/:code", h.UpdateProduct)
		products.PATCH("/:code/suspend", h.SuspendProduct)
		products.PATCH("/:code/reactivate", h.ReactivateProduct)
	}
}

func addPolicyholderRoutes(rg *gin.RouterGroup, h *handlers.PolicyholderHandler) {
	policyholders := rg.Group(PathPolicyholders)
	{
		policyholders.POST("", h.CreatePolicyholder)
		policyholders.GET("/:policy_id", h.GetPolicyholder)
		policyholders.POST("/:policy_id/products", h.RegisterForProduct)
		policyholders.PATCH("/:policy_id/suspend", h.SuspendPolicyholder)
		policyholders.PATCH("/:policy_id/reactivate", h.ReactivatePolicyholder)
		policyholders.PATCH("/:policy_id/cancel", h.CancelPolicyholder)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", h.CreatePayment)
		payments.POST("/penalty-quote", h.QuotePenalty)
		payments.GET("/reminders", h.UpcomingReminders)
		payments.GET("/overdue", h.OverduePayments)
	}
}
