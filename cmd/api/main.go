package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/wandering/emailpassword-go/internal/config"
	"github.com/wandering/emailpassword-go/internal/crypto"
	"github.com/wandering/emailpassword-go/internal/handler"
	"github.com/wandering/emailpassword-go/internal/repository"
	"github.com/wandering/emailpassword-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gen := crypto.NewGenerator(nil)
	tokens := crypto.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)

	routes := handler.RouterConfig{
		Generator:      handler.NewGeneratorHandler(service.NewGeneratorService(gen, cfg.MaxPasswordLength)),
		Email:          handler.NewEmailHandler(service.NewEmailService()),
		Tokens:         tokens,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}

	// Account routes need the database; without it the stateless routes still serve.
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	db, err := repository.NewDB(pingCtx, cfg.DatabaseDSN, repository.DefaultPoolConfig())
	cancel()
	if err != nil {
		slog.Warn("database unavailable, auth routes disabled", "error", err)
	} else {
		defer db.Close()
		if err := repository.EnsureSchema(ctx, db); err != nil {
			slog.Error("schema setup failed", "error", err)
			os.Exit(1)
		}

		hasher := crypto.NewHasher(crypto.DefaultHashParams())
		authService, err := service.NewAuthService(repository.NewUserRepository(db), hasher, tokens, gen, cfg.ProvisionPasswordLength)
		if err != nil {
			slog.Error("auth service setup failed", "error", err)
			os.Exit(1)
		}
		routes.Auth = handler.NewAuthHandler(authService)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.NewRouter(ctx, routes),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "auth", routes.Auth != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
