package interfaces

import (
	"context"

	"checkout_relay/internal/domain/entities"
)

type IAuditRepository interface {
	Record(ctx context.Context, entry entities.AuditEntry) error
}
