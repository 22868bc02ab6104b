package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bloodlink/config"
	httpHandler "bloodlink/internal/adapter/http/handler"
	pgStorage "bloodlink/internal/adapter/storage/postgres"
	redisStorage "bloodlink/internal/adapter/storage/redis"
	"bloodlink/internal/core/ports"
	"bloodlink/internal/metrics"
	"bloodlink/internal/service"
	"bloodlink/pkg/logger"
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
		Dur("shelf_life", cfg.Registry.ShelfLife).
		Msg("Starting BloodLink registry")

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

	// Initialize repositories
	bankRepo := pgStorage.NewBankRepo(pool)
	hospitalRepo := pgStorage.NewHospitalRepo(pool)
	unitRepo := pgStorage.NewUnitRepo(pool)
	artifactStore := pgStorage.NewArtifactStore(pool)

	// Initialize Redis stores
	cursorStore := redisStorage.NewSweepCursorStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	m := metrics.New()

	// Initialize business services
	authSvc := service.NewAuthService(bankRepo, hospitalRepo, hashSvc, tokenSvc,
		logger.Component(log, "auth"))
	registrySvc := service.NewRegistryService(unitRepo, bankRepo, artifactStore,
		cfg.Registry.ShelfLife, cfg.Registry.StorageTimeout, m,
		logger.Component(log, "registry"))
	sweeperSvc := service.NewSweeperService(unitRepo, cursorStore,
		cfg.Registry.ShelfLife, m, logger.Component(log, "sweeper"))

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		RegistrySvc:    registrySvc,
		SweeperSvc:     sweeperSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		SweepBatchSize: cfg.Registry.SweepBatchSize,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// Background expiry sweep
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	if cfg.Registry.SweepInterval > 0 {
		go sweeperSvc.Run(sweepCtx, cfg.Registry.SweepInterval, cfg.Registry.SweepBatchSize)
		log.Info().
			Dur("interval", cfg.Registry.SweepInterval).
			Int("batch_size", cfg.Registry.SweepBatchSize).
			Msg("Expiry sweeper scheduled")
	} else {
		log.Warn().Msg("Expiry sweeper disabled (sweep_interval is 0)")
	}

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

	stopSweep()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
