package interfaces

import (
	"context"

	"checkout_relay/internal/domain/entities"
)

// INotifier tells the customer about a payment outcome.
type INotifier interface {
	NotifyPayment(ctx context.Context, outcome entities.PaymentOutcome, payment entities.ProviderPayment) error
}
