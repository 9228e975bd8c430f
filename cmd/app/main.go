package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitclub/internal/config"
	"fitclub/internal/db"
	"fitclub/internal/kv"
	"fitclub/internal/logger"
	"fitclub/internal/notify"
	"fitclub/internal/seed"
	"fitclub/internal/server"
	"fitclub/internal/store"
)

func main() {

	logger.Init()
	logger.Info("Starting FitClub application")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	var blobs kv.Store
	switch cfg.StorageBackend {
	case "postgres":
		logger.Info("Connecting to database...")
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()
		logger.Info("Database connected")

		if err := db.RunMigrations(database, "migrations"); err != nil {
			logger.Fatalf("Failed to run migrations: %v", err)
		}
		logger.Info("Migrations completed")

		blobs = kv.NewPostgres(database)
	case "memory":
		logger.Info("Using in-memory storage")
		blobs = kv.NewMemory()
	default:
		logger.Info("Connecting to Redis", "addr", cfg.RedisAddr)
		redisStore := kv.NewRedis(cfg.RedisAddr)
		defer redisStore.Close()
		blobs = redisStore
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The notify queue lives in Redis. A memory-backed run has no Redis to
	// talk to, so events are dropped instead of logging a queue error on
	// every mutation.
	storeOpts := []store.Option{}
	if cfg.StorageBackend == "memory" {
		logger.Info("Notification service disabled for in-memory storage")
	} else {
		notifyService := notify.New(cfg.RedisAddr, cfg.NotifyQueueKey)
		defer notifyService.Close()
		logger.Info("Notification service initialized")

		go notifyService.Start(ctx)
		storeOpts = append(storeOpts, store.WithNotifier(notifyService))
	}

	userStore := store.New(blobs, seed.Default(), storeOpts...)

	loadCtx, loadCancel := context.WithTimeout(ctx, 30*time.Second)
	if err := userStore.Load(loadCtx); err != nil {
		loadCancel()
		logger.Fatalf("Failed to load user data store: %v", err)
	}
	loadCancel()
	logger.Info("User data store loaded")

	srv := server.New(userStore, blobs, cfg)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
