package payments

import (
	"log"
	"strconv"
	"sync"
	"time"

	"checkout_relay/internal/domain/entities"
)

// mockLedger remembers payments created in mock mode so a later detail fetch
// (e.g. a hand-crafted webhook during local runs) sees the same record.
type mockLedger struct {
	mu       sync.Mutex
	payments map[string]entities.ProviderPayment
}

func newMockLedger() *mockLedger {
	return &mockLedger{payments: map[string]entities.ProviderPayment{}}
}

func (g *MercadoPagoGateway) mockCreate(req entities.ChargeRequest) entities.ProviderPayment {
	g.mock.mu.Lock()
	defer g.mock.mu.Unlock()

	now := g.now().UTC()
	n := now.UnixNano()
	for {
		if _, taken := g.mock.payments[strconv.FormatInt(n, 10)]; !taken {
			break
		}
		n++
	}
	id := strconv.FormatInt(n, 10)
	log.Printf("[payment][gateway] mock create start external_reference=%s method=%s", req.ExternalReference, req.PaymentMethodID)

	p := entities.ProviderPayment{
		ID:                id,
		ExternalReference: req.ExternalReference,
		TransactionAmount: req.Amount.InexactFloat64(),
		Installments:      req.Installments,
		PaymentMethodID:   req.PaymentMethodID,
		PayerEmail:        req.Payer.Email,
	}
	if req.PaymentMethodID == entities.PaymentMethodPix {
		expires := now.Add(30 * time.Minute)
		p.Status = "pending"
		p.StatusDetail = "pending_waiting_transfer"
		p.QRCode = "00020126580014br.gov.bcb.pix-mock-" + id
		p.QRCodeBase64 = "bW9jay1xci1jb2Rl"
		p.TicketURL = "https://www.mercadopago.com.br/payments/" + id + "/ticket"
		p.ExpiresAt = &expires
	} else {
		p.Status = entities.ProviderStatusApproved
		p.StatusDetail = "accredited"
		p.CardLastFour = "0000"
		p.DateApproved = &now
	}

	g.mock.payments[id] = p

	log.Printf("[payment][gateway] mock create success provider_payment_id=%s provider_status=%s", id, p.Status)
	return p
}

// mockGet settles whatever it is asked about: known PIX payments come back
// approved, unknown ids are reported as approved without an order reference.
func (g *MercadoPagoGateway) mockGet(paymentID string) entities.ProviderPayment {
	g.mock.mu.Lock()
	defer g.mock.mu.Unlock()

	p, ok := g.mock.payments[paymentID]
	if !ok {
		p = entities.ProviderPayment{ID: paymentID}
	}
	if p.Status != entities.ProviderStatusApproved {
		now := g.now().UTC()
		p.Status = entities.ProviderStatusApproved
		p.StatusDetail = "accredited"
		p.DateApproved = &now
		g.mock.payments[paymentID] = p
	}
	log.Printf("[payment][gateway] mock get provider_payment_id=%s provider_status=%s", p.ID, p.Status)
	return p
}
