package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"wallet-service/internal/config"
	"wallet-service/internal/database"
	"wallet-service/internal/handler"
	"wallet-service/internal/logger"
	"wallet-service/internal/repository/postgres"
	"wallet-service/internal/service"
	"wallet-service/internal/worker"

	_ "wallet-service/docs"

	"github.com/gin-gonic/gin"
)

// @title Wallet Service API
// @version 1.0
// @description API for creating wallets and applying deposits and withdrawals
// @host localhost:8080
// @BasePath /v1
func main() {
	// Load configuration from .env and the environment
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(true, "info")
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}

	log := logger.New(cfg.Log.Pretty, cfg.Log.Level)
	if !cfg.Log.Pretty {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(dbCtx, dbPool, log); err != nil {
			log.Fatal().Err(err).Msg("failed to apply migrations")
		}
	}

	// Repositories
	walletRepo := postgres.NewWalletRepository(cfg.Database.LockTimeout)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Services
	walletService := service.NewWalletService(walletRepo, txManager, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker exporting connection pool gauges
	statsWorker := worker.NewPoolStatsWorker(worker.NewPgxPoolCollector(dbPool), cfg.Worker.PoolStatsInterval, log)
	statsWorker.Start(ctx)
	defer statsWorker.Stop()

	// http handler
	h := handler.NewHandler(walletService, dbPool, log)
	router, err := h.SetupRoutes(cfg.Server.APIVersion)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up routes")
	}

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().
		Str("port", cfg.Server.Port).
		Str("api_version", cfg.Server.APIVersion).
		Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
