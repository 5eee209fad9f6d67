package interfaces

import "context"

// IWebhookEventRepository is the dedup store for payment notifications.
//
// Claim returns false when the (paymentID, status) pair was already claimed by
// an earlier delivery. Release undoes a claim whose processing failed so the
// provider's retry is handled.
type IWebhookEventRepository interface {
	Claim(ctx context.Context, paymentID, status string) (bool, error)
	Release(ctx context.Context, paymentID, status string) error
}
