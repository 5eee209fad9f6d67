package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"checkout_relay/internal/domain/entities"
	"checkout_relay/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentSettings carries the storefront values stamped on every charge.
type PaymentSettings struct {
	StoreName       string
	NotificationURL string
}

// newChargeRequest validates the order and fills the fields shared by card and
// PIX charges. The idempotency key is computed by the caller once the
// method-specific fields are set.
func newChargeRequest(order *entities.OrderPayload, settings PaymentSettings, now time.Time) (entities.ChargeRequest, error) {
	amount, err := parseOrderTotal(order.Total)
	if err != nil {
		return entities.ChargeRequest{}, err
	}

	email := strings.TrimSpace(order.Cliente.Email)
	if email == "" {
		return entities.ChargeRequest{}, fmt.Errorf("%w: missing cliente.email", ErrInvalidPayer)
	}
	first, last := order.Cliente.SplitName()

	externalRef := strings.TrimSpace(order.OrderID)
	if externalRef == "" {
		externalRef = generateOrderID(now)
	}

	return entities.ChargeRequest{
		Amount: amount,
		Payer: entities.Payer{
			Email:     email,
			FirstName: first,
			LastName:  last,
		},
		ExternalReference: externalRef,
		Description:       fmt.Sprintf("Pedido %s - %d item(s)", settings.StoreName, len(order.Items)),
		NotificationURL:   settings.NotificationURL,
	}, nil
}

func parseOrderTotal(total entities.NumericString) (decimal.Decimal, error) {
	raw := strings.TrimSpace(string(total))
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrInvalidOrderTotal)
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidOrderTotal, raw)
	}
	amount = amount.Round(2)
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidOrderTotal, amount.StringFixed(2))
	}
	return amount, nil
}

// generateOrderID keeps the storefront's "ORDER_<millis>" shape; the suffix
// keeps two orders created in the same millisecond apart.
func generateOrderID(now time.Time) string {
	return "ORDER_" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + uuid.NewString()[:8]
}

// IdempotencyKey derives the provider idempotency key from the stable parts of
// a charge. Retrying the same checkout yields the same key; a new card token
// (a new attempt after a decline) yields a new one.
func IdempotencyKey(req entities.ChargeRequest) string {
	sum := sha256.Sum256([]byte(strings.Join([]string{
		req.PaymentMethodID,
		req.ExternalReference,
		req.Amount.StringFixed(2),
		req.Token,
	}, "|")))
	return hex.EncodeToString(sum[:])
}

// relayCharge forwards a charge through the dedup store and the gateway.
func relayCharge(
	ctx context.Context,
	gateway interfaces.IPaymentGateway,
	charges interfaces.IChargeRepository,
	req entities.ChargeRequest,
	toResult func(entities.ProviderPayment) entities.PaymentResult,
) (entities.PaymentResult, error) {
	ref := req.ExternalReference
	if charges != nil {
		stored, found, err := charges.GetByIdempotencyKey(ctx, req.IdempotencyKey)
		switch {
		case err != nil:
			// The provider still deduplicates on the idempotency header.
			log.Printf("[payment][usecase] charge lookup failed external_reference=%s err=%v", ref, err)
		case found:
			log.Printf("[payment][usecase] replaying stored charge external_reference=%s payment_id=%s status=%s", ref, stored.PaymentID, stored.Status)
			return stored, nil
		}
	}

	if gateway == nil {
		log.Printf("[payment][usecase] gateway not configured external_reference=%s", ref)
		return entities.PaymentResult{}, errors.New("payment gateway not configured")
	}

	log.Printf("[payment][usecase] calling payment gateway external_reference=%s method=%s amount=%s", ref, req.PaymentMethodID, req.Amount.StringFixed(2))
	p, err := gateway.CreatePayment(ctx, req)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed external_reference=%s err=%v", ref, err)
		return entities.PaymentResult{}, fmt.Errorf("%w: %w", ErrPaymentProvider, err)
	}

	result := toResult(p)
	if charges != nil {
		if err := charges.Save(ctx, req.IdempotencyKey, result); err != nil {
			log.Printf("[payment][usecase] charge store save failed external_reference=%s payment_id=%s err=%v", ref, result.PaymentID, err)
		}
	}
	log.Printf("[payment][usecase] charge created external_reference=%s payment_id=%s status=%s", ref, result.PaymentID, result.Status)
	return result, nil
}
