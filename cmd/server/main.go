package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"hexago/internal/auth"
	"hexago/internal/config"
	"hexago/internal/logger"
	"hexago/internal/repository"
	"hexago/internal/server"
	"hexago/internal/service"
	"hexago/internal/telemetry"
	"hexago/internal/upstream"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	logger.Init(cfg.LogLevel, cfg.DevMode, cfg.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.OtelEndpoint != "" {
		shutdown, err := telemetry.Init(ctx, "hexago", cfg.OtelEndpoint)
		if err != nil {
			logger.Log.Fatal("initialize telemetry", zap.Error(err))
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(shutdownCtx)
		}()
	}

	db, err := repository.Connect(cfg.DSN())
	if err != nil {
		logger.Log.Fatal("connect to database", zap.Error(err))
	}
	defer db.Close()

	authenticator, err := auth.NewGoogleAuthenticator(ctx, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.RedirectURI)
	if err != nil {
		logger.Log.Fatal("initialize OIDC authenticator", zap.Error(err))
	}

	srv := server.New(cfg, server.Deps{
		Users:  service.NewUserService(repository.NewUserRepository(db)),
		Todos:  service.NewTodoService(upstream.NewTodoClient(cfg.TodoAPIBaseURL)),
		Movies: service.NewMovieService(upstream.NewMovieClient(cfg.MovieAPIBaseURL, cfg.MovieAPIKey)),
		Auth:   authenticator,
		Issuer: auth.NewTokenIssuer([]byte(cfg.JWTSecret)),
	})

	if err := srv.Run(); err != nil {
		logger.Log.Fatal("HTTP server stopped", zap.Error(err))
	}
}
