package request

import (
	"strings"

	"checkout_relay/internal/domain/entities"
)

// WebhookRequest is the provider notification body. The provider repeats the
// resource id and topic in the query string (data.id, type), which fill in
// whatever the body leaves empty.
type WebhookRequest struct {
	entities.WebhookNotification
}

func (r WebhookRequest) WithQueryFallback(query func(string) string) entities.WebhookNotification {
	n := r.WebhookNotification
	if strings.TrimSpace(string(n.Data.ID)) == "" {
		for _, key := range []string{"data.id", "id"} {
			if v := strings.TrimSpace(query(key)); v != "" {
				n.Data.ID = entities.ResourceID(v)
				break
			}
		}
	}
	if n.Type == "" {
		for _, key := range []string{"type", "topic"} {
			if v := strings.TrimSpace(query(key)); v != "" {
				n.Type = v
				break
			}
		}
	}
	return n
}
