package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort            = "8080"
	defaultProviderBaseURL = "https://api.mercadopago.com"
	defaultProviderTimeout = 10 * time.Second
	defaultStoreName       = "Loja"
	defaultServiceName     = "checkout-relay"
	defaultRateLimitRPS    = 10
	defaultRateLimitBurst  = 20
)

var (
	ErrMissingAccessToken   = errors.New("PROVIDER_ACCESS_TOKEN is required unless PAYMENT_GATEWAY_MOCK is enabled")
	ErrMissingWebhookSecret = errors.New("PROVIDER_WEBHOOK_SECRET is required when WEBHOOK_SIGNATURE_REQUIRED is enabled")
)

// Config is read once at start-up and injected into every component.
type Config struct {
	Port string

	ProviderAccessToken   string
	ProviderWebhookSecret string
	ProviderBaseURL       string
	ProviderTimeout       time.Duration
	GatewayMock           bool

	NotificationURL          string
	StoreName                string
	WebhookSignatureRequired bool

	RateLimitRPS   float64
	RateLimitBurst int

	ServiceName  string
	OTLPEndpoint string

	Tables Tables
}

// Tables names the DynamoDB tables. Empty names fall back to the repository
// defaults.
type Tables struct {
	Charges       string
	WebhookEvents string
	Orders        string
	Audit         string
}

func Load() (Config, error) {
	cfg := Config{
		Port:                  getenvDefault("PORT", defaultPort),
		ProviderAccessToken:   strings.TrimSpace(os.Getenv("PROVIDER_ACCESS_TOKEN")),
		ProviderWebhookSecret: strings.TrimSpace(os.Getenv("PROVIDER_WEBHOOK_SECRET")),
		ProviderBaseURL:       getenvDefault("PROVIDER_API_BASE_URL", defaultProviderBaseURL),
		NotificationURL:       os.Getenv("NOTIFICATION_URL"),
		StoreName:             getenvDefault("STORE_NAME", defaultStoreName),
		ServiceName:           getenvDefault("SERVICE_NAME", defaultServiceName),
		OTLPEndpoint:          os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		Tables: Tables{
			Charges:       os.Getenv("CHARGES_TABLE"),
			WebhookEvents: os.Getenv("WEBHOOK_EVENTS_TABLE"),
			Orders:        os.Getenv("ORDERS_TABLE"),
			Audit:         os.Getenv("AUDIT_TABLE"),
		},
	}

	var err error
	if cfg.ProviderTimeout, err = getenvDuration("PROVIDER_TIMEOUT", defaultProviderTimeout); err != nil {
		return Config{}, err
	}
	if cfg.GatewayMock, err = getenvBool("PAYMENT_GATEWAY_MOCK", false); err != nil {
		return Config{}, err
	}
	if cfg.WebhookSignatureRequired, err = getenvBool("WEBHOOK_SIGNATURE_REQUIRED", true); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS, err = getenvFloat("RATE_LIMIT_RPS", defaultRateLimitRPS); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = getenvInt("RATE_LIMIT_BURST", defaultRateLimitBurst); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.ProviderAccessToken == "" && !c.GatewayMock {
		return ErrMissingAccessToken
	}
	if c.ProviderWebhookSecret == "" && c.WebhookSignatureRequired {
		return ErrMissingWebhookSecret
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit must not be negative (rps=%v burst=%d)", c.RateLimitRPS, c.RateLimitBurst)
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "":
		return def, nil
	case "1", "true", "yes", "on", "mock":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("%s: invalid boolean %q", key, v)
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	// Bare numbers are seconds.
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return time.Duration(secs) * time.Second, nil
}

func getenvFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", key, v)
	}
	return f, nil
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}
