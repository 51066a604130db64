package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yanki-wallet-service/config"
	httpHandler "yanki-wallet-service/internal/adapter/http/handler"
	"yanki-wallet-service/internal/adapter/messaging/kafka"
	pgStorage "yanki-wallet-service/internal/adapter/storage/postgres"
	redisStorage "yanki-wallet-service/internal/adapter/storage/redis"
	"yanki-wallet-service/internal/core/ports"
	"yanki-wallet-service/internal/service"
	"yanki-wallet-service/pkg/logger"
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
		Msg("Starting Yanki Wallet Service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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

	// Initialize Kafka producer and consumer group
	producer, err := kafka.NewSyncProducer(cfg.Kafka, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect Kafka producer")
	}
	defer producer.Close()

	group, err := kafka.NewConsumerGroup(cfg.Kafka, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to join Kafka consumer group")
	}
	defer group.Close()

	// Initialize repositories
	walletRepo := pgStorage.NewWalletRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	balanceCache := redisStorage.NewBalanceCache(rdb)

	// Initialize core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	publisher := kafka.NewPublisher(producer, log)

	// Initialize business services
	walletSvc := service.NewWalletService(walletRepo, tokenSvc, log)
	transferSvc := service.NewTransferService(walletRepo, balanceCache, publisher, log)
	settlementSvc := service.NewSettlementService(walletRepo, txRepo, transactor, balanceCache, log)
	cardLinkSvc := service.NewCardLinkService(walletRepo, publisher, balanceCache, log)
	balanceSyncSvc := service.NewBalanceSyncService(walletRepo, balanceCache, log)
	peerSvc := service.NewPeerExchangeService(walletRepo, txRepo, transactor, balanceCache, publisher, log)

	// Wire the event consumer
	consumer := kafka.NewConsumer(log)
	kafka.RegisterEventHandlers(consumer, cardLinkSvc, settlementSvc, balanceSyncSvc, peerSvc)

	consumerDone := make(chan error, 1)
	go func() {
		consumerDone <- consumer.Run(ctx, group)
	}()

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		TransferSvc:    transferSvc,
		CardLinkSvc:    cardLinkSvc,
		TxRepo:         txRepo,
		TokenSvc:       tokenSvc,
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

	// Wait for shutdown signal or consumer failure
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server...")
	case err := <-consumerDone:
		if err != nil {
			log.Error().Err(err).Msg("Event consumer stopped")
		}
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
