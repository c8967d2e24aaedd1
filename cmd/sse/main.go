package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/roamly/tourguide-backend/internal/adapters/events"
	"github.com/roamly/tourguide-backend/internal/api/handlers"
	"github.com/roamly/tourguide-backend/internal/api/middleware"
	redisclient "github.com/roamly/tourguide-backend/internal/infrastructure/clients/redis"
	"github.com/roamly/tourguide-backend/internal/infrastructure/observability"
	"github.com/roamly/tourguide-backend/pkg/config"
)

// Standalone stream server: serves only the SSE location feeds so the main
// API can be scaled independently of long-lived streaming connections.
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
	observability.InitLogger("tourguide-sse", environment)
	logger := observability.GetLogger()

	redisConn, err := redisclient.NewClient(&cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("Redis is required for the stream server")
	}
	defer redisConn.Close()

	eventBus := events.NewRedisEventBus(redisConn)
	defer eventBus.Close()

	streamHandler := handlers.NewStreamHandler(eventBus)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("GET /api/stream/locations", streamHandler.StreamAllLocations)
	mux.HandleFunc("GET /api/stream/users/{userName}/locations", streamHandler.StreamUserLocations)

	handler := middleware.CORSMiddleware(middleware.LoggingMiddleware(mux))

	port := cfg.Server.Port + 1
	if v := os.Getenv("SSE_PORT"); v != "" {
		fmt.Sscanf(v, "%d", &port)
	}
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, port)

	server := &http.Server{
		Addr:        addr,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 120 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("Stream server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Stream server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Stream server shutting down")
	server.Close()
}
