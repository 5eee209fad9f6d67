package request

import "checkout_relay/internal/domain/entities"

// CardPaymentRequest is the body of POST /create-card-payment.
type CardPaymentRequest struct {
	FormData  *entities.CardFormData `json:"formData"`
	OrderData *entities.OrderPayload `json:"orderData"`
}

// PixPaymentRequest is the body of POST /create-payment.
type PixPaymentRequest struct {
	OrderData *entities.OrderPayload `json:"orderData"`
}
