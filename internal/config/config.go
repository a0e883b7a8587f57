package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server configuration
	Port string
	Mode string

	// Database configuration
	DatabaseURL string

	// Payment processor webhook verification (hex-encoded Ed25519 public key)
	WebhookPublicKey string

	// Alien SSO
	SSOJwksURL string

	// Payment destinations
	RecipientAddress     string
	TestRecipientAddress string
}

// Load reads the environment (plus an optional .env file) and fails fast on
// missing required keys so a misconfigured process never serves traffic.
func Load() (*Config, error) {
	// Ignore error if .env file doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		Mode:                 getEnv("GIN_MODE", "debug"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		WebhookPublicKey:     getEnv("WEBHOOK_PUBLIC_KEY", ""),
		SSOJwksURL:           getEnv("SSO_JWKS_URL", "https://sso.alien-api.com/oauth/jwks"),
		RecipientAddress:     getEnv("RECIPIENT_ADDRESS", ""),
		TestRecipientAddress: getEnv("TEST_RECIPIENT_ADDRESS", ""),
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.WebhookPublicKey == "" {
		missing = append(missing, "WEBHOOK_PUBLIC_KEY")
	}
	if cfg.RecipientAddress == "" {
		missing = append(missing, "RECIPIENT_ADDRESS")
	}
	if cfg.TestRecipientAddress == "" {
		cfg.TestRecipientAddress = cfg.RecipientAddress
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
