package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "JWT_SECRET", "JWT_EXPIRY", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "MAX_PASSWORD_LENGTH", "PROVISION_PASSWORD_LENGTH"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.Env != "development" {
		t.Errorf("unexpected port/env: %q/%q", cfg.Port, cfg.Env)
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want 24h", cfg.JWTExpiry)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Errorf("rate limit = %v/%d, want 5/10", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.MaxPasswordLength != 4096 || cfg.ProvisionPasswordLength != 16 {
		t.Errorf("lengths = %d/%d, want 4096/16", cfg.MaxPasswordLength, cfg.ProvisionPasswordLength)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "staging")
	t.Setenv("JWT_EXPIRY", "90m")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")
	t.Setenv("PROVISION_PASSWORD_LENGTH", "24")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.JWTExpiry != 90*time.Minute {
		t.Errorf("JWTExpiry = %v, want 90m", cfg.JWTExpiry)
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Errorf("RateLimitRPS = %v, want 2.5", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 10 {
		t.Errorf("RateLimitBurst = %d, want fallback 10", cfg.RateLimitBurst)
	}
	if cfg.ProvisionPasswordLength != 24 {
		t.Errorf("ProvisionPasswordLength = %d, want 24", cfg.ProvisionPasswordLength)
	}
}

func TestLoadRejectsDevSecretInProduction(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); !errors.Is(err, ErrDevSecretInProduction) {
		t.Fatalf("Load() error = %v, want ErrDevSecretInProduction", err)
	}

	t.Setenv("JWT_SECRET", "a-real-secret")
	if _, err := Load(); err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
}

func TestLoadRejectsNonPositiveLengths(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{"zero provision length", "PROVISION_PASSWORD_LENGTH", "0", ErrInvalidProvisionLength},
		{"negative provision length", "PROVISION_PASSWORD_LENGTH", "-1", ErrInvalidProvisionLength},
		{"zero max length", "MAX_PASSWORD_LENGTH", "0", ErrInvalidMaxLength},
		{"negative max length", "MAX_PASSWORD_LENGTH", "-5", ErrInvalidMaxLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV", "development")
			t.Setenv("MAX_PASSWORD_LENGTH", "")
			t.Setenv("PROVISION_PASSWORD_LENGTH", "")
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
