package routes

import (
	"checkout_relay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathWebhook = "/webhook"

func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.WebhookHandler) {
	rg.GET(PathWebhook, h.Health)
	rg.POST(PathWebhook, h.Receive)
}
