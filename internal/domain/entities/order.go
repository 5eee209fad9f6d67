package entities

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// OrderPayload is the storefront order sent along with a checkout.
//
// Total arrives as a numeric string (e.g. "49.90") and is parsed by the use case.
// Items are only counted, so their shape is left to the storefront.
type OrderPayload struct {
	OrderID string            `json:"orderId"`
	Total   NumericString     `json:"total"`
	Cliente Customer          `json:"cliente"`
	Items   []json.RawMessage `json:"items"`
}

// NumericString holds a number that storefronts send either quoted or bare.
type NumericString string

func (n *NumericString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = NumericString(num.String())
	return nil
}

type Customer struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// SplitName splits the customer name on the first space. The last name falls
// back to "Cliente" because the provider rejects an empty payer last name.
func (c Customer) SplitName() (first, last string) {
	name := strings.TrimSpace(c.Nome)
	first, last, _ = strings.Cut(name, " ")
	last = strings.TrimSpace(last)
	if last == "" {
		last = "Cliente"
	}
	return first, last
}

// OrderStatus is the order state driven by payment notifications.
type OrderStatus string

const (
	OrderStatusAwaitingPayment OrderStatus = "awaiting_payment"
	OrderStatusPaid            OrderStatus = "paid"
	OrderStatusRejected        OrderStatus = "rejected"
	OrderStatusCancelled       OrderStatus = "cancelled"
	OrderStatusRefunded        OrderStatus = "refunded"
)

// Rank orders statuses so a late notification never moves an order backwards.
// Failed attempts rank below paid so a retry on the same order can still
// settle it; refunds can only follow a payment.
func (s OrderStatus) Rank() int {
	switch s {
	case OrderStatusAwaitingPayment:
		return 1
	case OrderStatusRejected, OrderStatusCancelled:
		return 2
	case OrderStatusPaid:
		return 3
	case OrderStatusRefunded:
		return 4
	default:
		return 0
	}
}

// Replaces reports whether an update to s may overwrite an order stored at
// status stored. The same payment only moves forward. A different payment
// (a new attempt on the order) may overwrite anything short of paid.
func (s OrderStatus) Replaces(stored OrderStatus, samePayment bool) bool {
	if s.Rank() > stored.Rank() {
		return true
	}
	return !samePayment && stored.Rank() < OrderStatusPaid.Rank()
}

// OrderUpdate is what the payment dispatch writes to the order store.
type OrderUpdate struct {
	OrderID       string      `json:"orderId"`
	PaymentID     string      `json:"paymentId"`
	Status        OrderStatus `json:"status"`
	Amount        float64     `json:"amount"`
	PaymentMethod string      `json:"paymentMethod"`
	PaidAt        *time.Time  `json:"paidAt,omitempty"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}
