package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"checkout_relay/internal/adapter/http/handlers"
	"checkout_relay/internal/adapter/http/routes"
	"checkout_relay/internal/adapter/persistence/repository"
	"checkout_relay/internal/infrastructure/config"
	"checkout_relay/internal/infrastructure/database"
	"checkout_relay/internal/infrastructure/notification"
	"checkout_relay/internal/infrastructure/payments"
	"checkout_relay/internal/infrastructure/telemetry"
	"checkout_relay/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Checkout Relay API
// @version         1.0
// @description     Relays storefront card and PIX checkouts to Mercado Pago and receives its payment notifications.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(sctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	router, err := buildRouter(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to wire application: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}

func buildRouter(ctx context.Context, cfg config.Config) (http.Handler, error) {
	ddb, err := database.NewDynamoDBClient(ctx)
	if err != nil {
		return nil, err
	}

	charges := repository.NewChargeDynamoRepository(ddb, cfg.Tables.Charges)
	events := repository.NewWebhookEventDynamoRepository(ddb, cfg.Tables.WebhookEvents)
	orders := repository.NewOrderDynamoRepository(ddb, cfg.Tables.Orders)
	audit := repository.NewAuditDynamoRepository(ddb, cfg.Tables.Audit)

	if os.Getenv("DYNAMODB_ENDPOINT") != "" {
		err := database.EnsureTables(ctx, ddb, []database.TableSpec{
			{Name: charges.TableName(), PartitionKey: "idempotency_key", TTLAttribute: "expires_at"},
			{Name: events.TableName(), PartitionKey: "event_key", TTLAttribute: "expires_at"},
			{Name: orders.TableName(), PartitionKey: "order_id"},
			{Name: audit.TableName(), PartitionKey: "id"},
		})
		if err != nil {
			return nil, err
		}
	}

	gateway, err := payments.NewMercadoPagoGateway(payments.Options{
		AccessToken: cfg.ProviderAccessToken,
		BaseURL:     cfg.ProviderBaseURL,
		Timeout:     cfg.ProviderTimeout,
		MockMode:    cfg.GatewayMock,
	})
	if err != nil {
		return nil, err
	}

	settings := usecase.PaymentSettings{StoreName: cfg.StoreName, NotificationURL: cfg.NotificationURL}
	cardUseCase := usecase.NewCardPaymentUseCase(gateway, charges, settings)
	pixUseCase := usecase.NewPixPaymentUseCase(gateway, charges, settings)

	dispatcher := usecase.NewPaymentStatusDispatcher(orders, notification.NewLogNotifier(cfg.StoreName, nil))
	verifier := usecase.NewWebhookSignatureVerifier(cfg.ProviderWebhookSecret, cfg.WebhookSignatureRequired)
	webhookUseCase := usecase.NewWebhookUseCase(verifier, gateway, events, dispatcher, audit)

	return routes.NewRouter(routes.Handlers{
		Payment: handlers.NewPaymentHandler(cardUseCase, pixUseCase),
		Webhook: handlers.NewWebhookHandler(webhookUseCase),
	}, routes.Options{
		ServiceName:    cfg.ServiceName,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}), nil
}
