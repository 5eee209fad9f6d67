package interfaces

import (
	"context"

	"checkout_relay/internal/domain/entities"
)

// IChargeRepository is the dedup store for charge creation, keyed by the
// deterministic idempotency key. GetByIdempotencyKey returns found=false when
// no charge was stored for the key.
type IChargeRepository interface {
	GetByIdempotencyKey(ctx context.Context, key string) (result entities.PaymentResult, found bool, err error)
	Save(ctx context.Context, key string, result entities.PaymentResult) error
}
