// cmd/recipes-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/PHedro/recipes/internal/api/rest/v1"
	"github.com/PHedro/recipes/internal/app"
	"github.com/PHedro/recipes/internal/domain/accounts"
	"github.com/PHedro/recipes/internal/domain/recipes"
	"github.com/PHedro/recipes/internal/domain/social"
	"github.com/PHedro/recipes/internal/infrastructure/cache"
	"github.com/PHedro/recipes/internal/infrastructure/persistence"
	"github.com/PHedro/recipes/internal/infrastructure/queue"
	"github.com/PHedro/recipes/internal/infrastructure/realtime"
	"github.com/PHedro/recipes/internal/pkg/config"
	"github.com/PHedro/recipes/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
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
		configPath = "../../configs/rest-api.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db          *gorm.DB
	cache       cache.Cache
	queueClient queue.Client
	hub         *realtime.Hub
	services    *appServices
}

type appServices struct {
	auth         accounts.AuthService
	unit         recipes.UnitService
	ingredient   recipes.IngredientService
	recipe       recipes.RecipeService
	comment      social.CommentService
	like         social.LikeService
	notification social.NotificationService
}

// close releases every resource the dependencies hold, in reverse wiring order
func (d *appDependencies) close(log logger.Logger) {
	if d.hub != nil {
		d.hub.Close()
	}
	if d.queueClient != nil {
		if err := d.queueClient.Close(); err != nil {
			log.Warn("Failed to close queue client: ", err)
		}
	}
	if d.cache != nil {
		if err := d.cache.Close(); err != nil {
			log.Warn("Failed to close cache: ", err)
		}
	}
	if d.db != nil {
		if err := persistence.CloseDB(d.db); err != nil {
			log.Warn("Failed to close database connection: ", err)
		}
	}
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize the recipe cache
	recipeCache, err := initializeCache(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	// Initialize the background queue client
	queueClient, err := initializeQueueClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize queue client: %w", err)
	}

	// Initialize the feed hub
	hub := realtime.NewHub()

	// Initialize services
	services, err := initializeApplicationServices(cfg, db, recipeCache, queueClient, hub, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:          db,
		cache:       recipeCache,
		queueClient: queueClient,
		hub:         hub,
		services:    services,
	}, nil
}

// initializeCache sets up the recipe lookup cache. Redis backs it when
// enabled; otherwise an in-process cache keeps single-instance deployments
// working without extra infrastructure.
func initializeCache(cfg *config.RestConfig, log logger.Logger) (cache.Cache, error) {
	if !cfg.Cache.Enabled {
		log.Info("Cache disabled, using the in-process recipe cache")
		return cache.NewMemoryCache(), nil
	}

	redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis cache: %w", err)
	}

	log.Info("Redis recipe cache initialized successfully")
	return redisCache, nil
}

// initializeQueueClient sets up the client enqueueing social events for the
// notification worker. A disabled queue leaves notifications unmaterialized.
func initializeQueueClient(cfg *config.RestConfig, log logger.Logger) (queue.Client, error) {
	if !cfg.Queue.Enabled {
		log.Warn("Queue disabled, social events will not produce notifications")
		return nil, nil
	}

	queueClient, err := queue.NewAsynqClient(cfg.Queue.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create queue client: %w", err)
	}

	log.Info("Queue client initialized successfully")
	return queueClient, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	db *gorm.DB,
	recipeCache cache.Cache,
	queueClient queue.Client,
	hub *realtime.Hub,
	log logger.Logger,
) (*appServices, error) {
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	tokenRepo, err := persistence.NewGormTokenRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create token repository: %w", err)
	}

	unitRepo, err := persistence.NewGormUnitRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create unit repository: %w", err)
	}

	ingredientRepo, err := persistence.NewGormIngredientRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ingredient repository: %w", err)
	}

	recipeRepo, err := persistence.NewGormRecipeRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe repository: %w", err)
	}

	commentRepo, err := persistence.NewGormCommentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment repository: %w", err)
	}

	likeRepo, err := persistence.NewGormLikeRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create like repository: %w", err)
	}

	notificationRepo, err := persistence.NewGormNotificationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification repository: %w", err)
	}

	publisher, err := app.NewEventPublisher(queueClient, hub, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create event publisher: %w", err)
	}

	authService, err := app.NewAuthService(tokenRepo, userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	unitService, err := app.NewUnitService(unitRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create unit service: %w", err)
	}

	ingredientService, err := app.NewIngredientService(ingredientRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ingredient service: %w", err)
	}

	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	recipeService, err := app.NewRecipeService(recipeRepo, ingredientRepo, unitRepo, userRepo, recipeCache, cacheTTL, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe service: %w", err)
	}

	commentService, err := app.NewCommentService(commentRepo, publisher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %w", err)
	}

	likeService, err := app.NewLikeService(likeRepo, commentRepo, publisher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create like service: %w", err)
	}

	notificationService, err := app.NewNotificationService(notificationRepo, commentRepo, likeRepo, recipeRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		auth:         authService,
		unit:         unitService,
		ingredient:   ingredientService,
		recipe:       recipeService,
		comment:      commentService,
		like:         likeService,
		notification: notificationService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.db,
		deps.services.auth,
		deps.services.unit,
		deps.services.ingredient,
		deps.services.recipe,
		deps.services.comment,
		deps.services.like,
		deps.services.notification,
		deps.hub,
		log,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
