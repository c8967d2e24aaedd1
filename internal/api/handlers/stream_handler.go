package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/roamly/tourguide-backend/internal/domain/entities"
	"github.com/roamly/tourguide-backend/internal/domain/geo"
	"github.com/roamly/tourguide-backend/internal/domain/providers"
	"github.com/roamly/tourguide-backend/internal/infrastructure/observability"
)

// heartbeatInterval keeps idle SSE connections from being reaped by proxies
const heartbeatInterval = 30 * time.Second

// StreamHandler serves live location updates over Server-Sent Events
type StreamHandler struct {
	eventBus providers.EventBus
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(eventBus providers.EventBus) *StreamHandler {
	return &StreamHandler{eventBus: eventBus}
}

// StreamAllLocations handles GET /api/stream/locations. An optional
// lat/lon/radius query restricts the stream to events within radius miles.
func (h *StreamHandler) StreamAllLocations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filtered := false
	var lat, lon, radiusMiles float64
	if query.Get("lat") != "" || query.Get("lon") != "" {
		var err error
		lat, err = strconv.ParseFloat(query.Get("lat"), 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid latitude parameter")
			return
		}
		lon, err = strconv.ParseFloat(query.Get("lon"), 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid longitude parameter")
			return
		}
		radiusMiles = 50
		if v := query.Get("radius"); v != "" {
			radiusMiles, err = strconv.ParseFloat(v, 64)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "invalid radius parameter")
				return
			}
		}
		filtered = true
	}

	center := entities.Location{Latitude: lat, Longitude: lon}
	h.stream(w, r, providers.EventChannelLocationUpdates, func(event *entities.LocationEvent) bool {
		if !filtered {
			return true
		}
		return geo.Distance(center, event.Location) <= radiusMiles
	})
}

// StreamUserLocations handles GET /api/stream/users/{userName}/locations
func (h *StreamHandler) StreamUserLocations(w http.ResponseWriter, r *http.Request) {
	userName := r.PathValue("userName")
	if userName == "" {
		respondWithError(w, http.StatusBadRequest, "user name is required")
		return
	}

	h.stream(w, r, providers.GetUserChannel(userName), func(*entities.LocationEvent) bool {
		return true
	})
}

func (h *StreamHandler) stream(w http.ResponseWriter, r *http.Request, channel string, accept func(*entities.LocationEvent) bool) {
	if h.eventBus == nil {
		respondWithError(w, http.StatusServiceUnavailable, "location streaming is disabled")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	logger := observability.LoggerFromContext(r.Context())
	eventChan, err := h.eventBus.Subscribe(r.Context(), channel)
	if err != nil {
		logger.Error().Err(err).Str("channel", channel).Msg("Failed to subscribe to location channel")
		respondWithError(w, http.StatusInternalServerError, "failed to subscribe")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	h.sendEvent(w, "connected", map[string]interface{}{
		"channel":   channel,
		"timestamp": time.Now(),
	})
	flusher.Flush()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			logger.Debug().Str("channel", channel).Msg("Stream client disconnected")
			return
		case <-ticker.C:
			h.sendEvent(w, "heartbeat", map[string]interface{}{
				"timestamp": time.Now(),
			})
			flusher.Flush()
		case event, open := <-eventChan:
			if !open {
				return
			}
			if event == nil || !accept(event) {
				continue
			}
			h.sendEvent(w, string(event.Type), event)
			flusher.Flush()
		}
	}
}

func (h *StreamHandler) sendEvent(w http.ResponseWriter, eventType string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, payload)
}
