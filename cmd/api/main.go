package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fleet-edi-gateway/config"
	httpHandler "fleet-edi-gateway/internal/adapter/http/handler"
	"fleet-edi-gateway/internal/adapter/provider"
	pgStorage "fleet-edi-gateway/internal/adapter/storage/postgres"
	redisStorage "fleet-edi-gateway/internal/adapter/storage/redis"
	"fleet-edi-gateway/internal/cache"
	"fleet-edi-gateway/internal/core/ports"
	"fleet-edi-gateway/internal/metrics"
	"fleet-edi-gateway/internal/service"
	"fleet-edi-gateway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Fleet EDI Gateway")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Metrics registry
	metrics.RegisterDefault()

	// Provider client
	providerClient := provider.New(cfg.Provider, logger.Component(log, "provider"))

	// Initialize repositories and Redis stores
	tokenRepo := pgStorage.NewTokenRepo(pool)
	walletStore := redisStorage.NewWalletStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Wallet read-through cache
	walletCache := cache.New(walletStore, providerClient, cfg.Cache.TTL, logger.Component(log, "wallet_cache"))

	// Business services
	tokenSvc := service.NewTokenService(tokenRepo, log)
	orderSvc := service.NewOrderService(providerClient, log)
	walletSvc := service.NewWalletService(walletCache, providerClient, log)
	adminVerifier := service.NewJWTAdminVerifier(cfg.Auth.AdminJWTSecret, cfg.Auth.AdminJWTIssuer)

	// Health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		TokenService:   tokenSvc,
		OrderService:   orderSvc,
		WalletService:  walletSvc,
		AdminVerifier:  adminVerifier,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
