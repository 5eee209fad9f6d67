package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"checkout_relay/internal/domain/entities"
	"checkout_relay/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	WebhookStatusSuccess  = "success"
	WebhookStatusReceived = "received"

	auditEventWebhookReceived = "webhook_received"
	webhookInstrumentation    = "checkout_relay/webhook"
)

// IWebhookUseCase handles one provider notification delivery.
type IWebhookUseCase interface {
	Handle(ctx context.Context, notification entities.WebhookNotification, headers entities.SignatureHeaders) (entities.WebhookResult, error)
}

type WebhookUseCase struct {
	verifier   *WebhookSignatureVerifier
	gateway    interfaces.IPaymentGateway
	events     interfaces.IWebhookEventRepository
	dispatcher *PaymentStatusDispatcher
	audit      interfaces.IAuditRepository

	tracer    trace.Tracer
	processed metric.Int64Counter
	now       func() time.Time
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	verifier *WebhookSignatureVerifier,
	gateway interfaces.IPaymentGateway,
	events interfaces.IWebhookEventRepository,
	dispatcher *PaymentStatusDispatcher,
	audit interfaces.IAuditRepository,
) *WebhookUseCase {
	processed, err := otel.Meter(webhookInstrumentation).Int64Counter(
		"webhook.notifications",
		metric.WithDescription("Payment notifications handled, by outcome"),
	)
	if err != nil {
		log.Printf("[webhook][usecase] metric counter unavailable err=%v", err)
	}
	return &WebhookUseCase{
		verifier:   verifier,
		gateway:    gateway,
		events:     events,
		dispatcher: dispatcher,
		audit:      audit,
		tracer:     otel.Tracer(webhookInstrumentation),
		processed:  processed,
		now:        time.Now,
	}
}

func (u *WebhookUseCase) Handle(ctx context.Context, n entities.WebhookNotification, headers entities.SignatureHeaders) (entities.WebhookResult, error) {
	dataID := strings.TrimSpace(string(n.Data.ID))
	ctx, span := u.tracer.Start(ctx, "webhook.handle", trace.WithAttributes(
		attribute.String("webhook.type", n.Type),
		attribute.String("webhook.action", n.Action),
		attribute.String("webhook.data_id", dataID),
	))
	defer span.End()

	log.Printf("[webhook][usecase] received type=%s action=%s data_id=%s date_created=%s", n.Type, n.Action, dataID, n.DateCreated)

	if u.verifier != nil {
		if err := u.verifier.Verify(headers, dataID); err != nil {
			u.fail(ctx, span, "unauthorized", err)
			return entities.WebhookResult{}, err
		}
	}

	if n.Type != entities.NotificationTypePayment {
		log.Printf("[webhook][usecase] notification type not processed type=%s", n.Type)
		u.count(ctx, "ignored")
		return entities.WebhookResult{Status: WebhookStatusReceived, Type: n.Type}, nil
	}

	if dataID == "" {
		u.fail(ctx, span, "invalid", ErrMissingPaymentID)
		return entities.WebhookResult{}, ErrMissingPaymentID
	}
	if u.gateway == nil {
		err := errors.New("payment gateway not configured")
		u.fail(ctx, span, "error", err)
		return entities.WebhookResult{}, err
	}

	p, err := u.gateway.GetPayment(ctx, dataID)
	if err != nil {
		log.Printf("[webhook][usecase] payment details fetch failed payment_id=%s err=%v", dataID, err)
		err = fmt.Errorf("%w: %w", ErrPaymentDetailsNotFound, err)
		u.fail(ctx, span, "not_found", err)
		return entities.WebhookResult{}, err
	}
	span.SetAttributes(attribute.String("payment.status", p.Status))

	duplicate, err := u.process(ctx, p)
	u.record(ctx, p, duplicate)
	if err != nil {
		u.fail(ctx, span, "error", err)
		return entities.WebhookResult{}, err
	}

	outcome := "processed"
	if duplicate {
		outcome = "duplicate"
	}
	u.count(ctx, outcome)
	log.Printf("[webhook][usecase] done payment_id=%s status=%s duplicate=%t", p.ID, p.Status, duplicate)
	return entities.WebhookResult{Status: WebhookStatusSuccess, PaymentID: dataID, Type: n.Type, Duplicate: duplicate}, nil
}

// process claims the (payment, status) pair and dispatches it. A claim that
// fails to dispatch is released so the provider's retry runs the branch again.
func (u *WebhookUseCase) process(ctx context.Context, p entities.ProviderPayment) (duplicate bool, err error) {
	if u.events != nil {
		first, err := u.events.Claim(ctx, p.ID, p.Status)
		if err != nil {
			log.Printf("[webhook][usecase] dedup claim failed payment_id=%s status=%s err=%v", p.ID, p.Status, err)
			return false, fmt.Errorf("%w: %w", ErrWebhookDedupUnavailable, err)
		}
		if !first {
			log.Printf("[webhook][usecase] duplicate notification payment_id=%s status=%s", p.ID, p.Status)
			return true, nil
		}
	}

	if u.dispatcher == nil {
		return false, nil
	}
	if _, err := u.dispatcher.Dispatch(ctx, p); err != nil {
		if u.events != nil {
			if rErr := u.events.Release(ctx, p.ID, p.Status); rErr != nil {
				log.Printf("[webhook][usecase] dedup release failed payment_id=%s status=%s err=%v", p.ID, p.Status, rErr)
			}
		}
		return false, fmt.Errorf("%w: %w", ErrWebhookDispatchFailed, err)
	}
	return false, nil
}

func (u *WebhookUseCase) record(ctx context.Context, p entities.ProviderPayment, duplicate bool) {
	entry := entities.AuditEntry{
		ID:                uuid.NewString(),
		Timestamp:         u.now().UTC(),
		Event:             auditEventWebhookReceived,
		PaymentID:         p.ID,
		Status:            p.Status,
		ExternalReference: p.ExternalReference,
		Amount:            p.TransactionAmount,
		PaymentMethod:     p.PaymentMethodID,
		Duplicate:         duplicate,
	}
	log.Printf("[webhook][audit] event=%s payment_id=%s status=%s external_reference=%s amount=%.2f payment_method=%s duplicate=%t",
		entry.Event, entry.PaymentID, entry.Status, entry.ExternalReference, entry.Amount, entry.PaymentMethod, entry.Duplicate)

	if u.audit == nil {
		return
	}
	if err := u.audit.Record(ctx, entry); err != nil {
		log.Printf("[webhook][audit] audit store write failed payment_id=%s err=%v", entry.PaymentID, err)
	}
}

func (u *WebhookUseCase) fail(ctx context.Context, span trace.Span, outcome string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, outcome)
	u.count(ctx, outcome)
}

func (u *WebhookUseCase) count(ctx context.Context, outcome string) {
	if u.processed == nil {
		return
	}
	u.processed.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
