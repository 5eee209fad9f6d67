package interfaces

import (
	"context"

	"checkout_relay/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// CreatePayment forwards a charge with the request's idempotency key;
// GetPayment fetches the full payment record referenced by a notification.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, req entities.ChargeRequest) (entities.ProviderPayment, error)
	GetPayment(ctx context.Context, paymentID string) (entities.ProviderPayment, error)
}
