package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultCJBaseURL     = "https://developers.cjdropshipping.com/api2.0/v1"
	defaultPayPalBaseURL = "https://api-m.sandbox.paypal.com"
)

type Config struct {
	ServiceName string
	ServerPort  int
	Env         string

	DatabaseURL string
	SQLitePath  string

	OrderIDPrefix   string
	OrderRateLimit  int
	OrderRateWindow time.Duration

	CJBaseURL string
	CJEmail   string
	CJAPIKey  string

	PayPalBaseURL      string
	PayPalClientID     string
	PayPalClientSecret string

	PaystackPublicKey string

	KafkaBrokers []string
}

func Load() Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "market"),
		ServerPort:  EnvIntDefault("PORT", 5000),
		Env:         EnvDefault("APP_ENV", "production"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  EnvDefault("SQLITE_PATH", "babyzion.db"),

		OrderIDPrefix:   EnvDefault("ORDER_ID_PREFIX", "BZ"),
		OrderRateLimit:  EnvIntDefault("ORDER_RATE_LIMIT", 10),
		OrderRateWindow: time.Duration(EnvIntDefault("ORDER_RATE_WINDOW_SECONDS", 3600)) * time.Second,

		CJBaseURL: EnvDefault("CJ_BASE_URL", defaultCJBaseURL),
		CJEmail:   os.Getenv("CJ_EMAIL"),
		CJAPIKey:  os.Getenv("CJ_API_KEY"),

		PayPalBaseURL:      EnvDefault("PAYPAL_BASE_URL", defaultPayPalBaseURL),
		PayPalClientID:     os.Getenv("PAYPAL_CLIENT_ID"),
		PayPalClientSecret: os.Getenv("PAYPAL_CLIENT_SECRET"),

		PaystackPublicKey: os.Getenv("PAYSTACK_PUBLIC_KEY"),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),
	}
}

// Production reports whether the environment flag is set to production.
// Non-production responses carry no-cache headers.
func (c Config) Production() bool {
	return c.Env == "production"
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
