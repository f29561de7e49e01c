// cmd/recipes-worker/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PHedro/recipes/internal/app"
	"github.com/PHedro/recipes/internal/domain/social"
	"github.com/PHedro/recipes/internal/infrastructure/persistence"
	"github.com/PHedro/recipes/internal/infrastructure/queue"
	"github.com/PHedro/recipes/internal/pkg/config"
	"github.com/PHedro/recipes/internal/pkg/logger"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/worker.yaml"
	}

	workerConfig, err := config.InitializeWorkerConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&workerConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize database
	db, err := persistence.NewDBConnection(workerConfig.Database)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			log.Warn("Failed to close database connection: ", err)
		}
	}()

	// The REST API owns migrations; the worker only needs the schema present.
	notificationService, err := initializeNotificationService(db, log)
	if err != nil {
		return fmt.Errorf("failed to initialize notification service: %w", err)
	}

	// Initialize the queue server and bind the event handler
	server, err := queue.NewAsynqServer(workerConfig.Queue, log)
	if err != nil {
		return fmt.Errorf("failed to create queue server: %w", err)
	}
	app.RegisterSocialEventTask(server, notificationService, log)

	// Run until a signal asks for shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Starting notification worker with concurrency ", workerConfig.Queue.Concurrency)
	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("worker stopped with error: %w", err)
	}

	log.Info("Worker stopped gracefully")
	return nil
}

// initializeNotificationService wires the repositories the materializer reads
// and writes through.
func initializeNotificationService(db *gorm.DB, log logger.Logger) (social.NotificationService, error) {
	notificationRepo, err := persistence.NewGormNotificationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification repository: %w", err)
	}

	commentRepo, err := persistence.NewGormCommentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment repository: %w", err)
	}

	likeRepo, err := persistence.NewGormLikeRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create like repository: %w", err)
	}

	recipeRepo, err := persistence.NewGormRecipeRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe repository: %w", err)
	}

	return app.NewNotificationService(notificationRepo, commentRepo, likeRepo, recipeRepo, log)
}
