package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodPix        = "pix"

	// ProviderStatusApproved is the provider status that settles a charge.
	ProviderStatusApproved = "approved"
)

// CardFormData comes from the client-side card form. Token is produced by the
// provider's card tokenization; raw card numbers never reach this service.
type CardFormData struct {
	Token           string `json:"token"`
	PaymentMethodID string `json:"payment_method_id"`
	Installments    int    `json:"installments"`
	CPF             string `json:"cpf"`
}

// Payer identifies who is charged.
type Payer struct {
	Email          string
	FirstName      string
	LastName       string
	DocumentType   string
	DocumentNumber string
}

// ChargeRequest is the provider-neutral charge command built by the relays.
type ChargeRequest struct {
	Amount            decimal.Decimal
	PaymentMethodID   string
	Token             string
	Installments      int
	Payer             Payer
	ExternalReference string
	Description       string
	NotificationURL   string
	IdempotencyKey    string
}

// ProviderPayment is the normalized payment record returned by the provider on
// creation and on detail fetch.
type ProviderPayment struct {
	ID                string
	Status            string
	StatusDetail      string
	ExternalReference string
	TransactionAmount float64
	Installments      int
	PaymentMethodID   string
	CardLastFour      string
	QRCode            string
	QRCodeBase64      string
	TicketURL         string
	ExpiresAt         *time.Time
	DateApproved      *time.Time
	PayerEmail        string
}

// PaymentResult is the body returned to the storefront by both relays.
type PaymentResult struct {
	Success           bool    `json:"success" dynamodbav:"success"`
	PaymentID         string  `json:"payment_id" dynamodbav:"payment_id"`
	Status            string  `json:"status" dynamodbav:"status"`
	PaymentMethod     string  `json:"payment_method" dynamodbav:"payment_method"`
	ExternalReference string  `json:"external_reference" dynamodbav:"external_reference"`
	TransactionAmount float64 `json:"transaction_amount" dynamodbav:"transaction_amount"`
	Installments      int     `json:"installments,omitempty" dynamodbav:"installments,omitempty"`
	CardLastFour      string  `json:"card_last_four,omitempty" dynamodbav:"card_last_four,omitempty"`
	QRCode            string  `json:"qr_code,omitempty" dynamodbav:"qr_code,omitempty"`
	QRCodeBase64      string  `json:"qr_code_base64,omitempty" dynamodbav:"qr_code_base64,omitempty"`
	TicketURL         string  `json:"ticket_url,omitempty" dynamodbav:"ticket_url,omitempty"`
	ExpiresAt         string  `json:"expires_at,omitempty" dynamodbav:"expires_at,omitempty"`
	StatusDetail      string  `json:"status_detail" dynamodbav:"status_detail"`
}

// PaymentOutcome is the closed set of branches a payment notification
// dispatches to.
type PaymentOutcome string

const (
	PaymentOutcomeApproved     PaymentOutcome = "approved"
	PaymentOutcomePending      PaymentOutcome = "pending"
	PaymentOutcomeRejected     PaymentOutcome = "rejected"
	PaymentOutcomeCancelled    PaymentOutcome = "cancelled"
	PaymentOutcomeRefunded     PaymentOutcome = "refunded"
	PaymentOutcomeUnrecognized PaymentOutcome = "unrecognized"
)

// OutcomeFromStatus maps a provider status onto a PaymentOutcome.
func OutcomeFromStatus(status string) PaymentOutcome {
	switch PaymentOutcome(status) {
	case PaymentOutcomeApproved, PaymentOutcomePending, PaymentOutcomeRejected,
		PaymentOutcomeCancelled, PaymentOutcomeRefunded:
		return PaymentOutcome(status)
	default:
		return PaymentOutcomeUnrecognized
	}
}
