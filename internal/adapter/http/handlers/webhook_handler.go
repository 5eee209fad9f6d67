package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"checkout_relay/internal/adapter/http/dto/request"
	"checkout_relay/internal/adapter/http/dto/response"
	"checkout_relay/internal/domain/entities"
	"checkout_relay/internal/usecase"
	"checkout_relay/pkg"

	"github.com/gin-gonic/gin"
)

const (
	headerSignature = "x-signature"
	headerRequestID = "x-request-id"
)

// WebhookHandler receives provider payment notifications.
type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
	now     func() time.Time
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc, now: time.Now}
}

// Health godoc
// @Summary  Webhook health check
// @Tags     webhook
// @Produce  json
// @Success  200  {object}  response.WebhookHealthResponse
// @Router   /webhook [get]
func (h *WebhookHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.WebhookHealthResponse{
		Status:    "ok",
		Message:   "Webhook endpoint is active",
		Timestamp: h.now().UTC(),
	})
}

// Receive godoc
// @Summary      Receive a payment notification
// @Description  Verifies the x-signature header, fetches the payment and dispatches it by status.
// @Tags         webhook
// @Accept       json
// @Produce      json
// @Param        x-signature   header    string                   false  "ts=<unix>,v1=<hex hmac>"
// @Param        x-request-id  header    string                   false  "Request id used in the signed manifest"
// @Param        body          body      request.WebhookRequest   true   "Notification"
// @Success      200           {object}  response.WebhookAckResponse
// @Failure      400           {object}  pkg.HTTPError
// @Failure      401           {object}  pkg.HTTPError
// @Failure      500           {object}  pkg.HTTPError
// @Router       /webhook [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	var req request.WebhookRequest
	// Some deliveries carry everything in the query string and no body.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Printf("[webhook][handler] invalid body err=%v", err)
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid notification body", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	notification := req.WithQueryFallback(c.Query)
	headers := entities.SignatureHeaders{
		Signature: c.GetHeader(headerSignature),
		RequestID: c.GetHeader(headerRequestID),
	}

	result, err := h.usecase.Handle(c.Request.Context(), notification, headers)
	if err != nil {
		log.Printf("[webhook][handler] handle failed type=%s data_id=%s err=%v", notification.Type, notification.Data.ID, err)
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWebhookResult(result))
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingSignature):
		return pkg.NewDomainError("MISSING_SIGNATURE", "Missing signature headers", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidSignatureFormat):
		return pkg.NewDomainError("INVALID_SIGNATURE_FORMAT", "Invalid signature format", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSignatureMismatch):
		return pkg.NewDomainError("INVALID_SIGNATURE", "Invalid signature", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrMissingPaymentID):
		return pkg.NewDomainError("MISSING_PAYMENT_ID", "Payment ID not found in notification", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentDetailsNotFound):
		return pkg.NewDomainError("PAYMENT_NOT_FOUND", "Payment details not found", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
