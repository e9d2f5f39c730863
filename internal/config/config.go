package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"
)

const devJWTSecret = "dev-secret-change-in-production"

var (
	ErrDevSecretInProduction  = errors.New("JWT_SECRET must be set in production environment")
	ErrInvalidMaxLength       = errors.New("MAX_PASSWORD_LENGTH must be at least 1")
	ErrInvalidProvisionLength = errors.New("PROVISION_PASSWORD_LENGTH must be at least 1")
)

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	// MaxPasswordLength caps lengths accepted over HTTP.
	MaxPasswordLength int
	// ProvisionPasswordLength is the length of passwords generated for
	// registrations that did not supply one.
	ProvisionPasswordLength int
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		DatabaseDSN:             getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/emailpassword?parseTime=true"),
		JWTSecret:               getEnv("JWT_SECRET", devJWTSecret),
		JWTExpiry:               getEnvDuration("JWT_EXPIRY", 24*time.Hour),
		RateLimitRPS:            getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:          getEnvInt("RATE_LIMIT_BURST", 10),
		MaxPasswordLength:       getEnvInt("MAX_PASSWORD_LENGTH", 4096),
		ProvisionPasswordLength: getEnvInt("PROVISION_PASSWORD_LENGTH", 16),
	}

	if cfg.Env == "production" && cfg.JWTSecret == devJWTSecret {
		return Config{}, ErrDevSecretInProduction
	}
	if cfg.MaxPasswordLength < 1 {
		return Config{}, ErrInvalidMaxLength
	}
	if cfg.ProvisionPasswordLength < 1 {
		return Config{}, ErrInvalidProvisionLength
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring malformed integer setting", "key", key, "value", v)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("ignoring malformed number setting", "key", key, "value", v)
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("ignoring malformed duration setting", "key", key, "value", v)
		return fallback
	}
	return d
}
