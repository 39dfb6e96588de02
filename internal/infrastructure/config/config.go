// Package config reads the service configuration from the environment once at
// startup. A .env file is loaded by godotenv/autoload in cmd/api.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type Config struct {
	Port int

	// QuotelyAPIURL is the base of the quotely REST backend, without trailing slash.
	QuotelyAPIURL   string
	RootDomainURL   string
	UpstreamTimeout time.Duration

	SessionBackend string
	SessionCookie  string
	SessionTTL     time.Duration
	CookieSecure   bool

	Redis RedisConfig

	QuotationsTable string
	PaymentsTable   string

	MercadoPagoAccessToken string
	// MercadoPagoTestPayerEmail is sent as the payer of sandbox charges that carry none.
	MercadoPagoTestPayerEmail string
	// PaymentGatewayMock approves payments locally without calling Mercado Pago.
	PaymentGatewayMock bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load never fails: malformed numbers and durations fall back to their defaults.
func Load() Config {
	return Config{
		Port:            getenvInt("PORT", 8080),
		QuotelyAPIURL:   strings.TrimRight(getenvDefault("QUOTELY_API_URL", "https://api.quotely.shop/api"), "/"),
		RootDomainURL:   getenvDefault("ROOT_DOMAIN_URL", "https://quotely.shop"),
		UpstreamTimeout: getenvDuration("UPSTREAM_TIMEOUT", 10*time.Second),

		SessionBackend: strings.ToLower(getenvDefault("SESSION_BACKEND", SessionBackendMemory)),
		SessionCookie:  getenvDefault("SESSION_COOKIE", "quotely_sid"),
		SessionTTL:     getenvDuration("SESSION_TTL", 24*time.Hour),
		CookieSecure:   getenvBool("SESSION_COOKIE_SECURE", false),

		Redis: RedisConfig{
			Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getenvInt("REDIS_DB", 0),
		},

		QuotationsTable: getenvDefault("QUOTATIONS_TABLE", "quotations"),
		PaymentsTable:   getenvDefault("PAYMENTS_TABLE", "quotation_payments"),

		MercadoPagoAccessToken:    os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		MercadoPagoTestPayerEmail: strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
		PaymentGatewayMock:        getenvFlag("PAYMENT_GATEWAY_MOCK") || getenvFlag("MERCADOPAGO_MOCK"),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// getenvFlag accepts the loose spellings used by deploy scripts ("on", "mock").
func getenvFlag(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}
