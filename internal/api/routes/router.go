package routes

import (
	"net/http"

	"github.com/roamly/tourguide-backend/internal/api/handlers"
	"github.com/roamly/tourguide-backend/internal/api/middleware"
	"github.com/roamly/tourguide-backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	userHandler     *handlers.UserHandler
	locationHandler *handlers.LocationHandler
	trackingHandler *handlers.TrackingHandler
	streamHandler   *handlers.StreamHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	userHandler *handlers.UserHandler,
	locationHandler *handlers.LocationHandler,
	trackingHandler *handlers.TrackingHandler,
	streamHandler *handlers.StreamHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		userHandler:     userHandler,
		locationHandler: locationHandler,
		trackingHandler: trackingHandler,
		streamHandler:   streamHandler,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// User endpoints
	r.mux.HandleFunc("GET /api/users", r.userHandler.ListUsers)
	r.mux.HandleFunc("POST /api/users", r.userHandler.CreateUser)
	r.mux.HandleFunc("GET /api/users/{userName}", r.userHandler.GetUser)
	r.mux.HandleFunc("GET /api/users/{userName}/rewards", r.userHandler.GetUserRewards)
	r.mux.HandleFunc("GET /api/users/{userName}/trip-deals", r.userHandler.GetTripDeals)

	// Location endpoints
	r.mux.HandleFunc("GET /api/users/{userName}/location", r.locationHandler.GetUserLocation)
	r.mux.HandleFunc("GET /api/users/{userName}/nearby-attractions", r.locationHandler.GetNearbyAttractions)
	r.mux.HandleFunc("GET /api/locations", r.locationHandler.GetAllCurrentLocations)

	// Tracking endpoints
	r.mux.HandleFunc("POST /api/users/{userName}/track", r.trackingHandler.TrackUser)
	r.mux.HandleFunc("POST /api/tracking/track-all", r.trackingHandler.TrackAllUsers)
	r.mux.HandleFunc("POST /api/tracking/track-all-process", r.trackingHandler.TrackAllUsersAndProcess)
	r.mux.HandleFunc("POST /api/tracking/calculate-rewards", r.trackingHandler.CalculateRewardsBulk)

	// Live location streams
	if r.streamHandler != nil {
		r.mux.HandleFunc("GET /api/stream/locations", r.streamHandler.StreamAllLocations)
		r.mux.HandleFunc("GET /api/stream/users/{userName}/locations", r.streamHandler.StreamUserLocations)
	}

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so preflights never reach the handlers
	handler = middleware.CORSMiddleware(handler)

	return handler
}
