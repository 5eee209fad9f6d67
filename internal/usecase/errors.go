package usecase

import "errors"

var (
	ErrMissingPaymentData = errors.New("missing payment data")
	ErrInvalidOrderTotal  = errors.New("invalid order total")
	ErrInvalidPayer       = errors.New("invalid payer")
	ErrInvalidCardData    = errors.New("invalid card data")
	ErrPaymentProvider    = errors.New("payment provider failure")

	ErrMissingSignature        = errors.New("missing webhook signature")
	ErrInvalidSignatureFormat  = errors.New("invalid webhook signature format")
	ErrSignatureMismatch       = errors.New("webhook signature mismatch")
	ErrMissingPaymentID        = errors.New("missing payment id")
	ErrPaymentDetailsNotFound  = errors.New("payment details not found")
	ErrWebhookDispatchFailed   = errors.New("payment notification dispatch failed")
	ErrWebhookDedupUnavailable = errors.New("webhook dedup store unavailable")
)
