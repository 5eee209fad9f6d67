package response

import (
	"time"

	"checkout_relay/internal/domain/entities"
)

type WebhookHealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type WebhookAckResponse struct {
	Status    string `json:"status"`
	PaymentID string `json:"payment_id,omitempty"`
	Type      string `json:"type,omitempty"`
	Duplicate bool   `json:"duplicate,omitempty"`
}

func FromWebhookResult(r entities.WebhookResult) WebhookAckResponse {
	return WebhookAckResponse{
		Status:    r.Status,
		PaymentID: r.PaymentID,
		Type:      r.Type,
		Duplicate: r.Duplicate,
	}
}
