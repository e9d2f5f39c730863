package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wandering/emailpassword-go/internal/crypto"
	"github.com/wandering/emailpassword-go/internal/middleware"
)

// RouterConfig wires handlers into the API router. Auth is optional: the
// account routes are only mounted when it is set.
type RouterConfig struct {
	Generator *GeneratorHandler
	Email     *EmailHandler
	Auth      *AuthHandler
	Tokens    *crypto.TokenIssuer

	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter builds the API routes. ctx bounds the rate limiter's background cleanup.
func NewRouter(ctx context.Context, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", cfg.Generator.HandleGenerate)
		r.Post("/api/v1/email/validate", cfg.Email.HandleValidate)

		if cfg.Auth != nil {
			r.Post("/api/v1/auth/register", cfg.Auth.HandleRegister)
			r.Post("/api/v1/auth/login", cfg.Auth.HandleLogin)
		}
	})

	if cfg.Auth != nil {
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.Tokens))
			r.Get("/api/v1/auth/me", cfg.Auth.HandleMe)
		})
	}

	return r
}
