package handlers

import (
	"errors"
	"log"
	"net/http"

	"checkout_relay/internal/adapter/http/dto/request"
	"checkout_relay/internal/adapter/http/dto/response"
	"checkout_relay/internal/domain/entities"
	"checkout_relay/internal/usecase"
	"checkout_relay/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler relays storefront checkouts to the payment provider.
type PaymentHandler struct {
	card usecase.ICardPaymentUseCase
	pix  usecase.IPixPaymentUseCase
}

func NewPaymentHandler(card usecase.ICardPaymentUseCase, pix usecase.IPixPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{card: card, pix: pix}
}

// CreateCardPayment godoc
// @Summary      Create a card payment
// @Description  Charges a tokenized card for a storefront order.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.CardPaymentRequest  true  "Card form and order"
// @Success      200   {object}  entities.PaymentResult
// @Failure      400   {object}  response.PaymentFailure
// @Failure      429   {object}  pkg.HTTPError
// @Failure      500   {object}  response.PaymentFailure
// @Router       /create-card-payment [post]
func (h *PaymentHandler) CreateCardPayment(c *gin.Context) {
	var req request.CardPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] card invalid body err=%v", err)
		writePaymentFailure(c, invalidRequest(err), entities.PaymentMethodCreditCard)
		return
	}
	log.Printf("[payment][handler] card create start order_id=%s", orderID(req.OrderData))

	result, err := h.card.Create(c.Request.Context(), req.FormData, req.OrderData)
	if err != nil {
		log.Printf("[payment][handler] card create failed order_id=%s err=%v", orderID(req.OrderData), err)
		writePaymentFailure(c, mapPaymentError(err), entities.PaymentMethodCreditCard)
		return
	}
	log.Printf("[payment][handler] card create success payment_id=%s status=%s", result.PaymentID, result.Status)

	c.JSON(http.StatusOK, result)
}

// CreatePixPayment godoc
// @Summary      Create a PIX payment
// @Description  Creates a PIX charge and returns the QR code the customer pays with.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.PixPaymentRequest  true  "Order"
// @Success      200   {object}  entities.PaymentResult
// @Failure      400   {object}  response.PaymentFailure
// @Failure      429   {object}  pkg.HTTPError
// @Failure      500   {object}  response.PaymentFailure
// @Router       /create-payment [post]
func (h *PaymentHandler) CreatePixPayment(c *gin.Context) {
	var req request.PixPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] pix invalid body err=%v", err)
		writePaymentFailure(c, invalidRequest(err), entities.PaymentMethodPix)
		return
	}
	log.Printf("[payment][handler] pix create start order_id=%s", orderID(req.OrderData))

	result, err := h.pix.Create(c.Request.Context(), req.OrderData)
	if err != nil {
		log.Printf("[payment][handler] pix create failed order_id=%s err=%v", orderID(req.OrderData), err)
		writePaymentFailure(c, mapPaymentError(err), entities.PaymentMethodPix)
		return
	}
	log.Printf("[payment][handler] pix create success payment_id=%s status=%s", result.PaymentID, result.Status)

	c.JSON(http.StatusOK, result)
}

func writePaymentFailure(c *gin.Context, appErr *pkg.AppError, method string) {
	c.JSON(appErr.HTTPStatus, response.NewPaymentFailure(appErr, method))
}

func invalidRequest(err error) *pkg.AppError {
	return pkg.NewDomainError("INVALID_REQUEST", "Invalid request body", err, http.StatusBadRequest)
}

func orderID(o *entities.OrderPayload) string {
	if o == nil {
		return ""
	}
	return o.OrderID
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingPaymentData):
		return pkg.NewDomainError("MISSING_PAYMENT_DATA", "Missing payment data", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderTotal):
		return pkg.NewDomainError("INVALID_ORDER_TOTAL", "Invalid order total", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPayer):
		return pkg.NewDomainError("INVALID_PAYER", "Invalid payer", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCardData):
		return pkg.NewDomainError("INVALID_CARD_DATA", "Invalid card data", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentProvider):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment could not be processed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
