package interfaces

import (
	"context"

	"checkout_relay/internal/domain/entities"
)

// IOrderRepository persists the order state driven by payment notifications.
// UpdateStatus returns applied=false when the stored status already ranks at or
// above the update's (late or replayed notification).
type IOrderRepository interface {
	UpdateStatus(ctx context.Context, update entities.OrderUpdate) (applied bool, err error)
}
