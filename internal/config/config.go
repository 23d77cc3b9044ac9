package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	ShopDomain      string
	StorefrontToken string
	APIVersion      string

	CartStore string // "file" or "redis"
	CartDir   string
	RedisAddr string

	ClearCartOnCheckout bool
	EnableTracing       bool
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:            envOrDefault("HTTP_ADDR", ":8080"),
		ShutdownTimeout:     envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		ShopDomain:          envOrDefault("SHOPIFY_DOMAIN", ""),
		StorefrontToken:     envOrDefault("SHOPIFY_STOREFRONT_ACCESS_TOKEN", ""),
		APIVersion:          envOrDefault("SHOPIFY_API_VERSION", "2025-07"),
		CartStore:           envOrDefault("CART_STORE", "file"),
		CartDir:             envOrDefault("CART_DIR", "./data/carts"),
		RedisAddr:           envOrDefault("REDIS_ADDR", "localhost:6379"),
		ClearCartOnCheckout: envBool("CLEAR_CART_ON_CHECKOUT", false),
		EnableTracing:       envBool("ENABLE_TRACING", false),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err == nil {
			return parsed
		}
	}
	return def
}
