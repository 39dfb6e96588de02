package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "QUOTELY_API_URL", "SESSION_BACKEND", "SESSION_TTL", "REDIS_DB", "QUOTATIONS_TABLE", "PAYMENTS_TABLE"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != 8080 {
		t.Fatalf("expected default port, got %d", cfg.Port)
	}
	if cfg.QuotelyAPIURL != "https://api.quotely.shop/api" {
		t.Fatalf("unexpected api url %q", cfg.QuotelyAPIURL)
	}
	if cfg.SessionBackend != SessionBackendMemory || cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("unexpected session config: %+v", cfg)
	}
	if cfg.QuotationsTable != "quotations" || cfg.PaymentsTable != "quotation_payments" {
		t.Fatalf("unexpected tables: %q %q", cfg.QuotationsTable, cfg.PaymentsTable)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("QUOTELY_API_URL", "http://localhost:4000/api/")
	t.Setenv("SESSION_BACKEND", "Redis")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("REDIS_DB", "3")

	cfg := Load()
	if cfg.Port != 9090 || cfg.Redis.DB != 3 {
		t.Fatalf("unexpected numeric config: %+v", cfg)
	}
	if cfg.QuotelyAPIURL != "http://localhost:4000/api" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.QuotelyAPIURL)
	}
	if cfg.SessionBackend != SessionBackendRedis || cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("unexpected session config: %+v", cfg)
	}
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("SESSION_TTL", "-5s")

	cfg := Load()
	if cfg.Port != 8080 || cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("expected defaults, got port=%d ttl=%s", cfg.Port, cfg.SessionTTL)
	}
}

func TestLoad_PaymentSettings(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")

	if cfg := Load(); cfg.PaymentGatewayMock || cfg.MercadoPagoTestPayerEmail != "" {
		t.Fatalf("expected payment defaults, got %+v", cfg)
	}

	t.Setenv("MERCADOPAGO_MOCK", "On")
	t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", " buyer@test.com ")
	cfg := Load()
	if !cfg.PaymentGatewayMock {
		t.Fatalf("expected mock gateway from MERCADOPAGO_MOCK")
	}
	if cfg.MercadoPagoTestPayerEmail != "buyer@test.com" {
		t.Fatalf("unexpected test payer %q", cfg.MercadoPagoTestPayerEmail)
	}

	t.Setenv("MERCADOPAGO_MOCK", "")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "mock")
	if !Load().PaymentGatewayMock {
		t.Fatalf("expected mock gateway from PAYMENT_GATEWAY_MOCK")
	}
}
