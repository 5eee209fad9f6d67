package usecase

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"

	"checkout_relay/internal/domain/entities"
)

// WebhookSignatureVerifier checks the provider's x-signature header.
//
// The header has the form "ts=<unix>,v1=<hex>". v1 must equal
// HMAC-SHA256(secret, "id:<data.id>;request-id:<x-request-id>;ts:<ts>;").
// When required is false, a delivery without signature headers is accepted;
// headers that are present are always verified.
type WebhookSignatureVerifier struct {
	secret   []byte
	required bool
}

func NewWebhookSignatureVerifier(secret string, required bool) *WebhookSignatureVerifier {
	return &WebhookSignatureVerifier{secret: []byte(secret), required: required}
}

func (v *WebhookSignatureVerifier) Verify(headers entities.SignatureHeaders, dataID string) error {
	signature := strings.TrimSpace(headers.Signature)
	requestID := strings.TrimSpace(headers.RequestID)

	if signature == "" || requestID == "" {
		if v.required {
			log.Printf("[webhook][signature] missing signature headers")
			return ErrMissingSignature
		}
		log.Printf("[webhook][signature] signature headers absent; verification disabled by configuration")
		return nil
	}

	ts, v1 := parseSignatureHeader(signature)
	if ts == "" || v1 == "" {
		log.Printf("[webhook][signature] invalid signature format request_id=%s", requestID)
		return ErrInvalidSignatureFormat
	}
	if len(v.secret) == 0 {
		log.Printf("[webhook][signature] webhook secret not configured request_id=%s", requestID)
		return ErrSignatureMismatch
	}

	expected := signManifest(v.secret, dataID, requestID, ts)
	if !hmac.Equal([]byte(expected), []byte(v1)) {
		log.Printf("[webhook][signature] signature mismatch request_id=%s data_id=%s ts=%s", requestID, dataID, ts)
		return ErrSignatureMismatch
	}
	return nil
}

// SignManifest returns the hex v1 value the provider sends for a notification.
func SignManifest(secret, dataID, requestID, ts string) string {
	return signManifest([]byte(secret), dataID, requestID, ts)
}

func signManifest(secret []byte, dataID, requestID, ts string) string {
	mac := hmac.New(sha256.New, secret)
	fmt.Fprintf(mac, "id:%s;request-id:%s;ts:%s;", dataID, requestID, ts)
	return hex.EncodeToString(mac.Sum(nil))
}

func parseSignatureHeader(header string) (ts, v1 string) {
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			ts = strings.TrimSpace(value)
		case "v1":
			v1 = strings.TrimSpace(value)
		}
	}
	return ts, v1
}
