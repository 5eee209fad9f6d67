package entities

import (
	"bytes"
	"encoding/json"
	"time"
)

// NotificationTypePayment is the only notification type that is processed.
const NotificationTypePayment = "payment"

// ResourceID is the notification's data.id, which the provider sends either as
// a string or as a bare number depending on the topic.
type ResourceID string

func (r *ResourceID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*r = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = ResourceID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*r = ResourceID(n.String())
	return nil
}

// WebhookNotification is the asynchronous notification posted by the provider.
type WebhookNotification struct {
	Type        string `json:"type"`
	Action      string `json:"action"`
	DateCreated string `json:"date_created"`
	Data        struct {
		ID ResourceID `json:"id"`
	} `json:"data"`
}

// SignatureHeaders carries the authentication headers of a webhook delivery.
type SignatureHeaders struct {
	Signature string
	RequestID string
}

// WebhookResult describes how a delivery was handled.
type WebhookResult struct {
	Status    string
	PaymentID string
	Type      string
	Duplicate bool
}

// AuditEntry is recorded for every payment notification that reached the
// detail fetch, duplicates included.
type AuditEntry struct {
	ID                string    `json:"id"`
	Timestamp         time.Time `json:"timestamp"`
	Event             string    `json:"event"`
	PaymentID         string    `json:"payment_id"`
	Status            string    `json:"status"`
	ExternalReference string    `json:"external_reference"`
	Amount            float64   `json:"amount"`
	PaymentMethod     string    `json:"payment_method"`
	Duplicate         bool      `json:"duplicate"`
}
