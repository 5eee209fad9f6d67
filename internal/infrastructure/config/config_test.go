package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "PROVIDER_ACCESS_TOKEN", "PROVIDER_WEBHOOK_SECRET", "PROVIDER_API_BASE_URL",
	"PROVIDER_TIMEOUT", "NOTIFICATION_URL", "STORE_NAME", "WEBHOOK_SIGNATURE_REQUIRED",
	"PAYMENT_GATEWAY_MOCK", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "SERVICE_NAME",
	"OTEL_EXPORTER_OTLP_ENDPOINT", "CHARGES_TABLE", "WEBHOOK_EVENTS_TABLE", "ORDERS_TABLE", "AUDIT_TABLE",
}

func clearEnv(t *testing.T) {
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROVIDER_ACCESS_TOKEN", "APP_USR-token")
	t.Setenv("PROVIDER_WEBHOOK_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.mercadopago.com", cfg.ProviderBaseURL)
	assert.Equal(t, 10*time.Second, cfg.ProviderTimeout)
	assert.True(t, cfg.WebhookSignatureRequired)
	assert.False(t, cfg.GatewayMock)
	assert.Equal(t, "Loja", cfg.StoreName)
	assert.Equal(t, float64(10), cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.Empty(t, cfg.OTLPEndpoint)
}

func TestLoad_SecretsHaveNoFallback(t *testing.T) {
	clearEnv(t)
	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingAccessToken)

	t.Setenv("PROVIDER_ACCESS_TOKEN", "APP_USR-token")
	_, err = Load()
	assert.ErrorIs(t, err, ErrMissingWebhookSecret)

	t.Setenv("WEBHOOK_SIGNATURE_REQUIRED", "false")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.WebhookSignatureRequired)
}

func TestLoad_MockModeNeedsNoToken(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "on")
	t.Setenv("WEBHOOK_SIGNATURE_REQUIRED", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.GatewayMock)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROVIDER_ACCESS_TOKEN", "APP_USR-token")
	t.Setenv("PROVIDER_WEBHOOK_SECRET", "secret")
	t.Setenv("PORT", "3000")
	t.Setenv("PROVIDER_TIMEOUT", "15")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("ORDERS_TABLE", "shop-orders")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Equal(t, "shop-orders", cfg.Tables.Orders)

	t.Setenv("PROVIDER_TIMEOUT", "1500ms")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.ProviderTimeout)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"WEBHOOK_SIGNATURE_REQUIRED": "maybe",
		"PROVIDER_TIMEOUT":           "soon",
		"RATE_LIMIT_RPS":             "fast",
		"RATE_LIMIT_BURST":           "1.5",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("PROVIDER_ACCESS_TOKEN", "APP_USR-token")
			t.Setenv("PROVIDER_WEBHOOK_SECRET", "secret")
			t.Setenv(key, val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
