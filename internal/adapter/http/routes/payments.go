package routes

import (
	"checkout_relay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCardPayment = "/create-card-payment"
	PathPixPayment  = "/create-payment"
)

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler, limiter gin.HandlerFunc) {
	payments := rg.Group("", limiter)
	{
		payments.POST(PathCardPayment, h.CreateCardPayment)
		payments.POST(PathPixPayment, h.CreatePixPayment)
	}
}
