package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"checkout_relay/internal/domain/entities"
	"checkout_relay/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultBaseURL = "https://api.mercadopago.com"

	paymentsPath      = "/v1/payments"
	paymentPath       = "/v1/payments/{id}"
	idempotencyHeader = "X-Idempotency-Key"
	tracerName        = "checkout_relay/payments"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing PROVIDER_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// UpstreamError is a non-2xx answer from the payments API.
type UpstreamError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("mercadopago %s: status %d: %s", e.Op, e.StatusCode, e.Body)
}

type Options struct {
	AccessToken string
	BaseURL     string
	Timeout     time.Duration
	MockMode    bool
}

type MercadoPagoGateway struct {
	client   *resty.Client
	tracer   trace.Tracer
	mockMode bool
	mock     *mockLedger
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(opts Options) (*MercadoPagoGateway, error) {
	g := &MercadoPagoGateway{tracer: otel.Tracer(tracerName), now: time.Now}
	if opts.MockMode {
		log.Printf("[payment][gateway] mock mode enabled")
		g.mockMode = true
		g.mock = newMockLedger()
		return g, nil
	}

	if opts.AccessToken == "" {
		log.Printf("[payment][gateway] missing PROVIDER_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	g.client = resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetAuthToken(opts.AccessToken).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if opts.Timeout > 0 {
		g.client.SetTimeout(opts.Timeout)
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized base_url=%s", opts.BaseURL)

	return g, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, req entities.ChargeRequest) (entities.ProviderPayment, error) {
	if g != nil && g.mockMode {
		return g.mockCreate(req), nil
	}
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	ctx, span := g.tracer.Start(ctx, "mercadopago.payments.create", trace.WithAttributes(
		attribute.String("payment.method", req.PaymentMethodID),
		attribute.String("payment.external_reference", req.ExternalReference),
	))
	defer span.End()

	log.Printf("[payment][gateway] create start external_reference=%s method=%s", req.ExternalReference, req.PaymentMethodID)
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader(idempotencyHeader, req.IdempotencyKey).
		SetBody(toPaymentRequest(req)).
		Post(paymentsPath)
	p, err := decodePayment("create", resp, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		log.Printf("[payment][gateway] create failed external_reference=%s err=%v", req.ExternalReference, err)
		return entities.ProviderPayment{}, err
	}

	span.SetAttributes(attribute.String("payment.id", p.ID), attribute.String("payment.status", p.Status))
	log.Printf("[payment][gateway] create success provider_payment_id=%s provider_status=%s", p.ID, p.Status)
	return p, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (entities.ProviderPayment, error) {
	if g != nil && g.mockMode {
		return g.mockGet(paymentID), nil
	}
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	ctx, span := g.tracer.Start(ctx, "mercadopago.payments.get", trace.WithAttributes(
		attribute.String("payment.id", paymentID),
	))
	defer span.End()

	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("id", paymentID).
		Get(paymentPath)
	p, err := decodePayment("get", resp, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "get failed")
		log.Printf("[payment][gateway] get failed provider_payment_id=%s err=%v", paymentID, err)
		return entities.ProviderPayment{}, err
	}

	span.SetAttributes(attribute.String("payment.status", p.Status))
	log.Printf("[payment][gateway] get success provider_payment_id=%s provider_status=%s", p.ID, p.Status)
	return p, nil
}

func decodePayment(op string, resp *resty.Response, err error) (entities.ProviderPayment, error) {
	if err != nil {
		return entities.ProviderPayment{}, fmt.Errorf("mercadopago %s: %w", op, err)
	}
	if resp.IsError() {
		return entities.ProviderPayment{}, &UpstreamError{Op: op, StatusCode: resp.StatusCode(), Body: truncate(resp.String(), 512)}
	}

	var body payment.Response
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return entities.ProviderPayment{}, fmt.Errorf("mercadopago %s: decode response: %w", op, err)
	}
	return fromPaymentResponse(body), nil
}

func toPaymentRequest(req entities.ChargeRequest) payment.Request {
	out := payment.Request{
		TransactionAmount: req.Amount.InexactFloat64(),
		Description:       req.Description,
		PaymentMethodID:   req.PaymentMethodID,
		ExternalReference: req.ExternalReference,
		NotificationURL:   req.NotificationURL,
		Token:             req.Token,
		Installments:      req.Installments,
		Payer: &payment.PayerRequest{
			Email:     req.Payer.Email,
			FirstName: req.Payer.FirstName,
			LastName:  req.Payer.LastName,
		},
	}
	if req.Payer.DocumentNumber != "" {
		out.Payer.Identification = &payment.IdentificationRequest{
			Type:   req.Payer.DocumentType,
			Number: req.Payer.DocumentNumber,
		}
	}
	return out
}

func fromPaymentResponse(r payment.Response) entities.ProviderPayment {
	td := r.PointOfInteraction.TransactionData
	return entities.ProviderPayment{
		ID:                strconv.Itoa(r.ID),
		Status:            r.Status,
		StatusDetail:      r.StatusDetail,
		ExternalReference: r.ExternalReference,
		TransactionAmount: r.TransactionAmount,
		Installments:      r.Installments,
		PaymentMethodID:   r.PaymentMethodID,
		CardLastFour:      r.Card.LastFourDigits,
		QRCode:            td.QRCode,
		QRCodeBase64:      td.QRCodeBase64,
		TicketURL:         td.TicketURL,
		ExpiresAt:         timePtr(r.DateOfExpiration),
		DateApproved:      timePtr(r.DateApproved),
		PayerEmail:        r.Payer.Email,
	}
}

// timePtr treats the SDK's zero time as an absent date.
func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
