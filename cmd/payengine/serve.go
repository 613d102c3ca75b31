package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpAdapter "github.com/martin00001313/TransactionProcessing/internal/adapter/http"
	"github.com/martin00001313/TransactionProcessing/internal/adapter/http/handler"
	"github.com/martin00001313/TransactionProcessing/internal/adapter/http/middleware"
	redisRepo "github.com/martin00001313/TransactionProcessing/internal/adapter/repository/redis"
	"github.com/martin00001313/TransactionProcessing/internal/engine"
	"github.com/martin00001313/TransactionProcessing/internal/infrastructure/config"
	"github.com/martin00001313/TransactionProcessing/internal/infrastructure/logger"
	"github.com/martin00001313/TransactionProcessing/internal/infrastructure/metrics"
	redisInfra "github.com/martin00001313/TransactionProcessing/internal/infrastructure/redis"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Accept events over HTTP instead of a file",
		Long: `Starts an HTTP server that applies submitted events in arrival order
and serves the running snapshot. The engine stays a single ordered
sequence; requests are serialized, not processed concurrently.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	policy := engine.Policy{
		FreezeOnLock:   cfg.FreezeOnLock,
		StrictDisputes: cfg.StrictDisputes,
	}
	processor := engine.New(policy, log, metrics.New())

	ctx := context.Background()

	// Optional Redis-backed idempotency for event submission.
	var idempotencyStore middleware.IdempotencyStore
	var healthHandler *handler.HealthHandler
	if cfg.RedisURL != "" {
		redisClient, err := redisInfra.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis")

		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		healthHandler = handler.NewHealthHandler(redisClient)
	} else {
		healthHandler = handler.NewHealthHandler(nil)
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		EventHandler:     handler.NewEventHandler(processor),
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		Logger:           log,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}
