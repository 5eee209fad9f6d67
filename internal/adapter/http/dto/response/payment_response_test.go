package response

import (
	"encoding/json"
	"net/http"
	"testing"

	"checkout_relay/internal/domain/entities"
	"checkout_relay/pkg"
)

func TestNewPaymentFailure(t *testing.T) {
	appErr := pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_ERROR", "Payment could not be processed", http.StatusInternalServerError)
	got := NewPaymentFailure(appErr, "pix")

	b, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"success":false,"error":"Payment could not be processed","code":"PAYMENT_PROVIDER_ERROR","payment_method":"pix","status":"failed"}`
	if string(b) != want {
		t.Fatalf("unexpected body:\n got %s\nwant %s", b, want)
	}
}

func TestFromWebhookResult(t *testing.T) {
	got := FromWebhookResult(entities.WebhookResult{Status: "received", Type: "merchant_order"})
	b, _ := json.Marshal(got)
	if string(b) != `{"status":"received","type":"merchant_order"}` {
		t.Fatalf("unexpected body: %s", b)
	}

	got = FromWebhookResult(entities.WebhookResult{Status: "success", PaymentID: "1", Type: "payment", Duplicate: true})
	if got.PaymentID != "1" || !got.Duplicate {
		t.Fatalf("unexpected ack: %+v", got)
	}
}
