package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/roamly/tourguide-backend/internal/adapters/cache"
	"github.com/roamly/tourguide-backend/internal/adapters/catalog"
	"github.com/roamly/tourguide-backend/internal/adapters/events"
	"github.com/roamly/tourguide-backend/internal/adapters/providers/gps"
	"github.com/roamly/tourguide-backend/internal/adapters/providers/pricing"
	"github.com/roamly/tourguide-backend/internal/adapters/providers/rewards"
	"github.com/roamly/tourguide-backend/internal/adapters/store"
	"github.com/roamly/tourguide-backend/internal/api/handlers"
	"github.com/roamly/tourguide-backend/internal/api/routes"
	"github.com/roamly/tourguide-backend/internal/application/services"
	"github.com/roamly/tourguide-backend/internal/domain/providers"
	"github.com/roamly/tourguide-backend/internal/domain/repositories"
	"github.com/roamly/tourguide-backend/internal/infrastructure/clients/postgres"
	redisclient "github.com/roamly/tourguide-backend/internal/infrastructure/clients/redis"
	"github.com/roamly/tourguide-backend/internal/infrastructure/observability"
	"github.com/roamly/tourguide-backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}
	observability.InitLogger(cfg.OTEL.ServiceName, environment)
	logger := observability.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// OpenTelemetry is optional; the service runs without an exporter
	var otelShutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		otelShutdown, err = observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
			otelShutdown = nil
		} else {
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	// Redis is optional; without it the catalog cache and event bus are
	// disabled and everything else keeps working
	redisConn, err := redisclient.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, running without cache and event bus")
		redisConn = nil
	} else {
		defer redisConn.Close()
		logger.Info().Msg("Redis client initialized")
	}

	var userRepo repositories.UserRepository
	switch cfg.Store.Backend {
	case "postgres":
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
		}
		defer pgClient.Close()
		userRepo = store.NewPostgresUserStore(pgClient)
		logger.Info().Msg("Using PostgreSQL user store")
	default:
		memStore := store.NewMemoryUserStore()
		if cfg.Store.InternalUserCount > 0 {
			if err := store.SeedInternalUsers(ctx, memStore, cfg.Store.InternalUserCount); err != nil {
				logger.Fatal().Err(err).Msg("Failed to seed internal users")
			}
			logger.Info().Int("count", cfg.Store.InternalUserCount).Msg("Seeded internal users")
		}
		userRepo = memStore
	}

	var cacheProvider providers.CacheProvider
	var eventBus providers.EventBus
	if redisConn != nil {
		cacheProvider = cache.NewRedisAdapter(redisConn)
		eventBus = events.NewRedisEventBus(redisConn)
	}

	gpsProvider := gps.NewSimulatedProvider(cfg.GPS.MaxLatency)
	rewardProvider := rewards.NewSimulatedProvider(cfg.GPS.MaxLatency)
	pricingProvider := pricing.NewSimulatedProvider()

	var catalogProvider providers.CatalogProvider = gpsProvider
	if cacheProvider != nil {
		catalogProvider = catalog.NewCachedCatalog(gpsProvider, cacheProvider, metrics)
		logger.Info().Msg("Attraction catalog wrapped with caching layer")
	}

	rewardsService := services.NewRewardsService(userRepo, catalogProvider, rewardProvider, metrics)
	rewardsService.SetProximityBuffer(cfg.Rewards.ProximityBufferMiles)

	trackingPool := services.NewWorkerPool(cfg.Tracking.PoolSize)
	defer trackingPool.Shutdown()

	trackingService := services.NewTrackingService(userRepo, gpsProvider, rewardsService, eventBus, trackingPool, metrics)
	trackingService.SetBulkRewardWorkers(cfg.Tracking.BulkRewardWorkers)
	trackingService.SetBulkRewardTimeout(cfg.Tracking.BulkRewardTimeout)

	tourGuideService := services.NewTourGuideService(userRepo, catalogProvider, pricingProvider, trackingService, rewardsService)

	tracker := services.NewTracker(trackingService, userRepo, cfg.Tracker.Interval)
	if cfg.Tracker.Enabled {
		tracker.Start()
		logger.Info().Dur("interval", cfg.Tracker.Interval).Msg("Background tracker started")
	}

	userHandler := handlers.NewUserHandler(tourGuideService)
	locationHandler := handlers.NewLocationHandler(tourGuideService)
	trackingHandler := handlers.NewTrackingHandler(tourGuideService, trackingService)

	var streamHandler *handlers.StreamHandler
	if eventBus != nil {
		streamHandler = handlers.NewStreamHandler(eventBus)
	}

	router := routes.NewRouter(userHandler, locationHandler, trackingHandler, streamHandler, metrics)
	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", serverAddr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	tracker.StopTracking()
	trackingPool.Shutdown()

	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			logger.Error().Err(err).Msg("Error closing event bus")
		}
	}

	if otelShutdown != nil {
		otelCtx, otelCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer otelCancel()
		if err := otelShutdown(otelCtx); err != nil {
			logger.Error().Err(err).Msg("Error shutting down OpenTelemetry")
		}
	}

	logger.Info().Msg("Server stopped")
}
