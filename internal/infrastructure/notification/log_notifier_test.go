package notification

import (
	"bytes"
	"context"
	"log"
	"testing"

	"checkout_relay/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier("Loja", log.New(&buf, "", 0))

	err := n.NotifyPayment(context.Background(), entities.PaymentOutcomeApproved, entities.ProviderPayment{
		ID: "10", ExternalReference: "ORD-1", PayerEmail: "ana@example.com",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "to=ana@example.com")
	assert.Contains(t, buf.String(), "order=ORD-1")
	assert.Contains(t, buf.String(), "pagamento aprovado")

	buf.Reset()
	err = n.NotifyPayment(context.Background(), entities.PaymentOutcomePending, entities.ProviderPayment{ID: "10"})
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}
