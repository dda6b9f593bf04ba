// Package main is the entry point for the LifeQuest API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/lifequest/backend/config"
	"github.com/lifequest/backend/internal/application/adapter"
	"github.com/lifequest/backend/internal/infra/db"
	"github.com/lifequest/backend/internal/infra/dependency"
	"github.com/lifequest/backend/internal/integration/notification"
	"github.com/lifequest/backend/internal/integration/persistence"
	"github.com/lifequest/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting LifeQuest API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Open the in-memory session store
	database, err := db.NewMemoryConnection(&cfg.Store)
	if err != nil {
		slog.Error("Failed to open session store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close session store", "error", err)
		}
	}()

	// Run store migrations
	if err := database.AutoMigrate(
		&model.TaskModel{},
		&model.TransactionModel{},
		&model.GoalModel{},
		&model.ProgressModel{},
	); err != nil {
		slog.Error("Failed to run store migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Store migrations completed successfully")

	// Seed the default profile and starter goals
	if err := persistence.Seed(context.Background(), database.DB(), cfg.Profile.Name); err != nil {
		slog.Error("Failed to seed session store", "error", err)
		os.Exit(1)
	}

	// Connect the notification feed. Redis is optional; when it is not
	// reachable the in-process feed takes over.
	var notifier adapter.Notifier
	var feed adapter.NotificationFeed

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	pingErr := redisClient.Ping(pingCtx).Err()
	cancelPing()

	if pingErr != nil {
		slog.Warn("Redis not reachable, using in-process notification feed",
			"addr", cfg.Redis.Addr,
			"error", pingErr,
		)
		memNotifier := notification.NewMemoryNotifier()
		notifier = memNotifier
		feed = memNotifier
	} else {
		redisNotifier := notification.NewRedisNotifier(redisClient)
		notifier = redisNotifier
		feed = redisNotifier
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close Redis client", "error", err)
			}
		}()
		slog.Info("Redis notification feed connected", "addr", cfg.Redis.Addr)
	}

	// Wire dependencies and setup router
	injector := dependency.NewInjector(cfg, database.DB(), notifier, feed)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
