package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds everything the storefront reads from the environment.
// godotenv is loaded in main before New is called.
type Config struct {
	Port              string
	OrderServiceURL   string
	OrderPollInterval time.Duration
	SessionTTL        time.Duration
	RequestTimeout    time.Duration
}

func New() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		OrderServiceURL:   os.Getenv("ORDER_SERVICE_URL"),
		OrderPollInterval: getDuration("ORDER_POLL_INTERVAL", 30*time.Second),
		SessionTTL:        getDuration("SESSION_TTL", 2*time.Hour),
		RequestTimeout:    getDuration("REQUEST_TIMEOUT", 10*time.Second),
	}

	if cfg.OrderServiceURL == "" {
		return nil, fmt.Errorf("ORDER_SERVICE_URL is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
