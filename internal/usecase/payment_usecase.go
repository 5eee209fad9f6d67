package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"checkout_relay/internal/domain/entities"
	"checkout_relay/internal/usecase/interfaces"
)

const (
	defaultCardPaymentMethodID = "visa"
	documentTypeCPF            = "CPF"
)

// ICardPaymentUseCase relays a tokenized card charge to the provider.
type ICardPaymentUseCase interface {
	Create(ctx context.Context, form *entities.CardFormData, order *entities.OrderPayload) (entities.PaymentResult, error)
}

// IPixPaymentUseCase relays a PIX charge to the provider. PIX charges settle
// asynchronously, so the result is always reported as not yet successful.
type IPixPaymentUseCase interface {
	Create(ctx context.Context, order *entities.OrderPayload) (entities.PaymentResult, error)
}

type CardPaymentUseCase struct {
	gateway  interfaces.IPaymentGateway
	charges  interfaces.IChargeRepository
	settings PaymentSettings
	now      func() time.Time
}

var _ ICardPaymentUseCase = (*CardPaymentUseCase)(nil)

func NewCardPaymentUseCase(gateway interfaces.IPaymentGateway, charges interfaces.IChargeRepository, settings PaymentSettings) *CardPaymentUseCase {
	return &CardPaymentUseCase{gateway: gateway, charges: charges, settings: settings, now: time.Now}
}

func (u *CardPaymentUseCase) Create(ctx context.Context, form *entities.CardFormData, order *entities.OrderPayload) (entities.PaymentResult, error) {
	if form == nil || order == nil {
		log.Printf("[payment][usecase] card create rejected: formData and orderData are required")
		return entities.PaymentResult{}, ErrMissingPaymentData
	}
	log.Printf("[payment][usecase] card create start order_id=%q items=%d", order.OrderID, len(order.Items))

	token := strings.TrimSpace(form.Token)
	if token == "" {
		log.Printf("[payment][usecase] card create rejected: missing card token order_id=%q", order.OrderID)
		return entities.PaymentResult{}, fmt.Errorf("%w: missing token", ErrInvalidCardData)
	}

	req, err := newChargeRequest(order, u.settings, u.now())
	if err != nil {
		log.Printf("[payment][usecase] card create rejected order_id=%q err=%v", order.OrderID, err)
		return entities.PaymentResult{}, err
	}

	req.Token = token
	req.PaymentMethodID = strings.TrimSpace(form.PaymentMethodID)
	if req.PaymentMethodID == "" {
		req.PaymentMethodID = defaultCardPaymentMethodID
	}
	req.Installments = form.Installments
	if req.Installments < 1 {
		req.Installments = 1
	}
	if cpf := strings.TrimSpace(form.CPF); cpf != "" {
		req.Payer.DocumentType = documentTypeCPF
		req.Payer.DocumentNumber = cpf
	}
	req.IdempotencyKey = IdempotencyKey(req)

	return relayCharge(ctx, u.gateway, u.charges, req, cardPaymentResult)
}

func cardPaymentResult(p entities.ProviderPayment) entities.PaymentResult {
	return entities.PaymentResult{
		Success:           p.Status == entities.ProviderStatusApproved,
		PaymentID:         p.ID,
		Status:            p.Status,
		PaymentMethod:     entities.PaymentMethodCreditCard,
		ExternalReference: p.ExternalReference,
		TransactionAmount: p.TransactionAmount,
		Installments:      p.Installments,
		CardLastFour:      p.CardLastFour,
		StatusDetail:      p.StatusDetail,
	}
}

type PixPaymentUseCase struct {
	gateway  interfaces.IPaymentGateway
	charges  interfaces.IChargeRepository
	settings PaymentSettings
	now      func() time.Time
}

var _ IPixPaymentUseCase = (*PixPaymentUseCase)(nil)

func NewPixPaymentUseCase(gateway interfaces.IPaymentGateway, charges interfaces.IChargeRepository, settings PaymentSettings) *PixPaymentUseCase {
	return &PixPaymentUseCase{gateway: gateway, charges: charges, settings: settings, now: time.Now}
}

func (u *PixPaymentUseCase) Create(ctx context.Context, order *entities.OrderPayload) (entities.PaymentResult, error) {
	if order == nil {
		log.Printf("[payment][usecase] pix create rejected: orderData is required")
		return entities.PaymentResult{}, ErrMissingPaymentData
	}
	log.Printf("[payment][usecase] pix create start order_id=%q items=%d", order.OrderID, len(order.Items))

	req, err := newChargeRequest(order, u.settings, u.now())
	if err != nil {
		log.Printf("[payment][usecase] pix create rejected order_id=%q err=%v", order.OrderID, err)
		return entities.PaymentResult{}, err
	}
	req.PaymentMethodID = entities.PaymentMethodPix
	req.IdempotencyKey = IdempotencyKey(req)

	return relayCharge(ctx, u.gateway, u.charges, req, pixPaymentResult)
}

func pixPaymentResult(p entities.ProviderPayment) entities.PaymentResult {
	res := entities.PaymentResult{
		// Settlement is confirmed by the webhook, never at creation.
		Success:           false,
		PaymentID:         p.ID,
		Status:            p.Status,
		PaymentMethod:     entities.PaymentMethodPix,
		ExternalReference: p.ExternalReference,
		TransactionAmount: p.TransactionAmount,
		QRCode:            p.QRCode,
		QRCodeBase64:      p.QRCodeBase64,
		TicketURL:         p.TicketURL,
		StatusDetail:      p.StatusDetail,
	}
	if p.ExpiresAt != nil {
		res.ExpiresAt = p.ExpiresAt.Format(time.RFC3339)
	}
	return res
}
