package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURL            string
	MongoDatabase       string
	CloudinaryURL       string
	PexelsAPIKey        string
	StripeSecretKey     string
	StripeWebhookSecret string
	ClientURL           string
	AllowedOrigins      []string
	Port                string
	GinMode             string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("error loading .env file: %v", err)
		}
	}

	cfg := &Config{
		MongoURL:            os.Getenv("MONGODB_URL"),
		MongoDatabase:       getEnv("MONGODB_DB", "luminai"),
		CloudinaryURL:       os.Getenv("CLOUDINARY_URL"),
		PexelsAPIKey:        os.Getenv("PEXELS_API_KEY"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		ClientURL:           getEnv("CLIENT_URL", "http://localhost:5173"),
		AllowedOrigins:      splitEnv("ALLOWED_ORIGINS", defaultOrigins),
		Port:                getEnv("PORT", "5000"),
		GinMode:             getEnv("GIN_MODE", "debug"),
	}

	if cfg.MongoURL == "" {
		return nil, fmt.Errorf("MONGODB_URL must be set")
	}
	if cfg.PexelsAPIKey == "" {
		return nil, fmt.Errorf("PEXELS_API_KEY must be set")
	}

	return cfg, nil
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3001",
	"http://localhost:5173",
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitEnv(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
